// Package app wires application dependencies for the CLI.
//
// It builds the file stores, the planner client and the services from
// Config, exposing them via the Wire struct for commands to use.
package app
