// Package commands defines the elevhtn CLI and wires dependencies for subcommands.
//
// Commands
//
//   - build        Build an elevator problem and store it
//   - list         List stored problems
//   - show         Print a summary of a stored problem
//   - export       Write a stored problem as JSON or YAML
//   - fingerprint  Print the content fingerprint of a stored problem
//   - methods      Show the methods applicable to a transport goal
//   - solve        Send a stored problem to an external planner
//   - plan         Print the last plan stored for a problem
//
// # Implementation
//
// The root command configures logging and builds the dependency graph
// (stores, services, planner client) before any subcommand runs.
package commands
