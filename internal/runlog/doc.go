// Package runlog captures per-item outcomes for export and import runs.
//
// A Log collects entries as the pipeline works through records; a failed
// create or update becomes an error entry rather than aborting the batch.
// Summary rolls entries up into the per-type counts and detail lists the CLI
// renders after a run, and Store persists those summaries in SQLite so
// earlier runs stay inspectable.
package runlog
