// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, environment and an optional toolbox.yaml,
// builds the logger and the module registry, and exposes App.Run as the
// single boolean boundary every module is launched through.
package app
