// Package main hosts the locflow CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into export
// and import pipeline runs, run-history queries, and configuration
// scaffolding. It centralizes configuration resolution, logger setup, and
// the single-run lock so subcommands can focus on user experience instead
// of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
