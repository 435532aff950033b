// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML, builds the zap logger, and constructs the CSV
// store and services, exposing them via the Wire struct for commands to use.
package app
