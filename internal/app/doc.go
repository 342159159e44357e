// Package app contains the core application wiring. It selects the
// dictionary backend, builds the facade and the logger, and hands the
// result to an entrypoint like the CLI, decoupled from argument
// parsing and process concerns.
package app
