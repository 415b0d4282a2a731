// Package app holds the startup settings, the validated configuration and
// the App lifecycle, decoupled from the CLI that populates them.
package app
