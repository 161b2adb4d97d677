package translation

import (
	"fmt"

	"locflow/internal/locales"
)

// ValidateForImport checks an uploaded document before the reconciliation
// pipeline is allowed to start. Errors carry the message shown to the
// operator; the pipeline never runs on an invalid file.
func ValidateForImport(doc *Document, sourceLocale string, known []string) error {
	if doc == nil {
		return fmt.Errorf("a translation file must be provided")
	}
	if doc.Lang == "" {
		return fmt.Errorf("could not read target locale from file")
	}
	if doc.Lang == sourceLocale {
		return fmt.Errorf("target locale (%s) and source locale (%s) cannot be the same", doc.Lang, sourceLocale)
	}
	if len(doc.Fields) == 0 {
		return fmt.Errorf("translation file is empty")
	}
	if len(known) > 0 && !locales.Contains(known, doc.Lang) {
		return fmt.Errorf("target locale (%s) is not configured in the repository; add it under repository settings first", doc.Lang)
	}
	return nil
}
