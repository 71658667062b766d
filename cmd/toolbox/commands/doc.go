// Package commands defines the toolbox CLI.
//
// Commands
//
//   - list            Print the module catalogue
//   - run <module>    Run a module by name
//   - <module>        Shorthand for run <module>, one per catalogue entry
//   - export <file>   Re-encode a JSON result file as YAML or TOML
//
// # Implementation
//
// The root command resolves settings through viper (flags, TOOLBOX_*
// environment, <home>/toolbox.yaml) and builds the app before any subcommand
// runs. Modules report failure through a logged message and a non-zero exit.
package commands
