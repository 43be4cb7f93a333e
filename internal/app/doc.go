// Package app wires application dependencies for the CLI.
//
// It builds the codec registry with every built-in algorithm and a
// logger from Config, exposing them via the App struct for commands to
// use.
package app
