// Package app wires the store, crypto suite, and envelope codec into a
// ready-to-use dependency graph for the CLI.
package app
