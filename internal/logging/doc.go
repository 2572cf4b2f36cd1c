// Package logging constructs the slog logger the CLI reports through.
// The library packages are pure functions and never log; everything
// here serves the command-line front end, which writes to stderr so
// formatted text on stdout stays clean.
package logging
