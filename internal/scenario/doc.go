// Package scenario reads builder inputs from YAML scenario files.
package scenario
