// Package importer reconciles a translated document back into the
// repository. Reconciliation runs as an ordered pipeline over a shared
// patch set: direct field merge, create-candidate collection, modular-block
// attach, deduplicated record creation, and back-patching of created ids
// onto the parents that reference them. Every stage contributes field-level
// patches keyed by record id, so later stages can never discard data an
// earlier stage merged.
package importer
