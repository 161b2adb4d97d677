package importer

import (
	"locflow/internal/content"
	"locflow/internal/translation"
)

// AssetUpdate is one asset's merged metadata, ready for the update call.
type AssetUpdate struct {
	ID   string
	Data map[string]any
}

// MergeAssets applies translated alt/title metadata to assets. The merge is
// single-stage: the source locale's metadata object seeds the target
// locale's so untranslated keys like custom data and focal point carry
// over.
func MergeAssets(assets []content.Record, translated []translation.Record, sourceLocale, targetLocale string) []AssetUpdate {
	var updates []AssetUpdate
	for _, asset := range assets {
		trec, ok := translation.RecordByID(translated, asset.ID())
		if !ok {
			continue
		}
		metadata, ok := asset.LocaleMap(content.KeyAssetMetadata)
		if !ok {
			metadata = make(map[string]any, 1)
		}

		merged := make(map[string]any)
		if source, ok := metadata[sourceLocale].(map[string]any); ok {
			for k, v := range source {
				merged[k] = v
			}
		}
		for _, field := range trec.Fields {
			merged[field.Name] = field.Value
		}

		metadata[targetLocale] = merged
		updates = append(updates, AssetUpdate{
			ID:   asset.ID(),
			Data: map[string]any{content.KeyAssetMetadata: metadata},
		})
	}
	return updates
}
