// Package logging provides structured slog loggers shared across locflow.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for machine consumption. Output goes to stdout
// and, when a log directory is configured, to an appended log file so past
// runs stay inspectable.
package logging
