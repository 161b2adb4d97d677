package export

import (
	"locflow/internal/content"
	"locflow/internal/translation"
)

// ExtractAssets flattens asset metadata for the source locale. Only the alt
// and title fields travel; the binary itself and untranslatable metadata
// (focal point and friends) stay in the repository. Assets with no metadata
// in the source locale are skipped.
func ExtractAssets(assets []content.Record, sourceLocale string) []translation.Record {
	var result []translation.Record
	for _, asset := range assets {
		meta, ok := asset.LocaleValue(content.KeyAssetMetadata, sourceLocale).(map[string]any)
		if !ok {
			continue
		}
		var fields []translation.Field
		for _, key := range []string{translation.MediaAlt, translation.MediaTitle} {
			if text, ok := meta[key].(string); ok && text != "" {
				fields = append(fields, translation.Simple(key, text, ""))
			}
		}
		if len(fields) == 0 {
			continue
		}
		result = append(result, translation.Record{
			ID:       asset.ID(),
			ItemType: content.ItemTypeMedia,
			Fields:   fields,
		})
	}
	return result
}

// BuildDocument assembles the final portable file: top-level records first,
// then resolved children, then assets.
func BuildDocument(sourceLocale string, records, children, assets []translation.Record) *translation.Document {
	fields := make([]translation.Record, 0, len(records)+len(children)+len(assets))
	fields = append(fields, records...)
	fields = append(fields, children...)
	fields = append(fields, assets...)
	return &translation.Document{Lang: sourceLocale, Fields: fields}
}
