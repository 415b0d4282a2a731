// Package cli turns the positional command-line arguments into
// app.Settings and owns the process exit codes.
package cli
