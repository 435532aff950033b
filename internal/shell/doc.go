// Package shell runs an interactive, line-oriented editing session over a
// single stackup: generate, edit, select a layer, set geometry and
// calculate, repeatedly.
//
// Input is read a line at a time so sessions can be scripted by piping
// commands on stdin.
package shell
