package content

// Record is a raw repository record: an opaque mapping from camel-cased
// field key to value. Localized fields map locale codes to the field's
// native value; modular-block records store the native value directly.
type Record map[string]any

// Reserved keys present on every record.
const (
	KeyID       = "id"
	KeyItemType = "itemType"

	// KeyAssetMetadata holds the per-locale alt/title/custom metadata map on
	// asset records.
	KeyAssetMetadata = "defaultFieldMetadata"

	// ItemTypeMedia marks asset entries in the portable file. Assets have no
	// model id, so this literal stands in for one.
	ItemTypeMedia = "media"
)

// ID returns the record id, or empty when absent.
func (r Record) ID() string {
	return stringValue(r[KeyID])
}

// ItemType returns the id of the record's model, or empty when absent.
func (r Record) ItemType() string {
	return stringValue(r[KeyItemType])
}

// LocaleValue unwraps a localized field: it reads the field's per-locale map
// and returns the value stored under the given locale. Missing fields,
// non-map values, and absent locales all return nil.
func (r Record) LocaleValue(fieldKey, locale string) any {
	wrapper, ok := r[fieldKey].(map[string]any)
	if !ok {
		return nil
	}
	return wrapper[locale]
}

// LocaleMap returns a copy of a localized field's per-locale map so callers
// can merge a new locale without mutating the source record.
func (r Record) LocaleMap(fieldKey string) (map[string]any, bool) {
	wrapper, ok := r[fieldKey].(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]any, len(wrapper)+1)
	for locale, value := range wrapper {
		out[locale] = value
	}
	return out, true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// ReferenceIDs normalizes a link/links/rich_text field value into a list of
// record ids. A single string becomes a one-element list.
func ReferenceIDs(value any) []string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			if id, ok := item.(string); ok && id != "" {
				ids = append(ids, id)
			}
		}
		return ids
	}
	return nil
}
