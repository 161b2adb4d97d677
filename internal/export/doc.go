// Package export flattens repository content into the portable translation
// format.
//
// The extraction engine walks top-level translatable records field by field,
// unwrapping each localized value at the source locale and classifying it.
// The resolver then follows the collected reference edges one hop down to
// pull in linked records and modular blocks, deduplicated against what the
// top-level pass already produced. The classifier is the single authority on
// which field types are translatable and how each one is shaped.
package export
