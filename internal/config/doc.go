// Package config loads, normalizes, and validates locflow configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours environment fallbacks such as
// LOCFLOW_API_TOKEN. The Config type centralizes every knob the CLI needs,
// so data directories and repository credentials are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
