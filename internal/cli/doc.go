// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// merges flags over the settings file and environment into the
// application's configuration.
package cli
