package export

import (
	"strings"

	"locflow/internal/content"
	"locflow/internal/translation"
)

// Classify decides whether and how a field value is representable in the
// portable format. It returns ok=false for values that carry nothing
// translatable: empty values, URL-shaped strings, enum-restricted strings,
// and every field type the engine does not handle.
//
// Reference-typed results carry child record ids only; the extraction engine
// collects those into the run's reference set instead of emitting them.
func Classify(field content.Field, value any) (translation.Field, bool) {
	if isEmptyValue(value) {
		return translation.Field{}, false
	}
	key := content.CamelKey(field.APIKey)

	switch field.FieldType {
	case content.FieldString:
		text, ok := value.(string)
		if !ok {
			return translation.Field{}, false
		}
		// URLs and enum values are configuration, not prose.
		if isLinkURL(text) || field.Validators.EnumRestricted() {
			return translation.Field{}, false
		}
		return translation.Simple(key, text, field.Hint), true

	case content.FieldText, content.FieldInteger, content.FieldFloat:
		return translation.Simple(key, value, field.Hint), true

	case content.FieldFile, content.FieldImage:
		// Only the alt/title metadata travels; binary content never does.
		return compositeField(key, field.Hint, value, translation.MediaAlt, translation.MediaTitle)

	case content.FieldSeo:
		// The image sub-field stays behind with the rest of the SEO object.
		return compositeField(key, field.Hint, value, translation.SeoTitle, translation.SeoDescription)

	case content.FieldLink, content.FieldLinks, content.FieldRichText:
		ids := content.ReferenceIDs(value)
		if len(ids) == 0 {
			return translation.Field{}, false
		}
		return translation.Reference(ids), true
	}

	return translation.Field{}, false
}

func compositeField(key, hint string, value any, subKeys ...string) (translation.Field, bool) {
	object, ok := value.(map[string]any)
	if !ok {
		return translation.Field{}, false
	}
	subs := make([]translation.Field, 0, len(subKeys))
	for _, subKey := range subKeys {
		if text, ok := object[subKey].(string); ok && text != "" {
			subs = append(subs, translation.Simple(subKey, text, ""))
		}
	}
	if len(subs) == 0 {
		return translation.Field{}, false
	}
	return translation.Composite(key, hint, subs), true
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

// isLinkURL reports whether a string field holds a path or URL rather than
// translatable copy.
func isLinkURL(value string) bool {
	return strings.HasPrefix(value, "/") || strings.HasPrefix(value, "http")
}
