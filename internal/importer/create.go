package importer

import (
	"locflow/internal/content"
	"locflow/internal/translation"
)

// TransitMeta reconnects a child translation record to the repository
// record it came from. ID is the child's source record id, the key used for
// deduplication and back-patching.
type TransitMeta struct {
	ID       string
	ItemType string
}

// TransitItem is one child record in flight between the candidate pass and
// the create call.
type TransitItem struct {
	Data translation.Record
	Meta TransitMeta
}

// CreateRef ties a set of child records to the parent field that references
// them. The parent snapshot carries the field's current per-locale map so
// back-patching can preserve untouched locales.
type CreateRef struct {
	Items     []TransitItem
	FieldKey  string
	FieldType content.FieldType
	Parent    content.Record
}

// Candidates is the create-candidate set split by attachment strategy.
// Blocks are written into their parent directly; records need a create call
// before the parent can reference them.
type Candidates struct {
	Blocks  []CreateRef
	Records []CreateRef
}

// BuildCreateRefs scans every reference-typed field on the translatable
// records and pairs the referenced ids with their translation records.
// References whose translations are absent from the file produce nothing.
func BuildCreateRefs(records []content.Record, models content.ModelSet, translated []translation.Record, sourceLocale string) Candidates {
	var out Candidates
	for _, record := range records {
		model, ok := models[record.ItemType()]
		if !ok || !model.Translatable() {
			continue
		}
		for _, field := range model.Fields {
			if !field.FieldType.IsReference() {
				continue
			}
			fieldKey := content.CamelKey(field.APIKey)
			ids := content.ReferenceIDs(record.LocaleValue(fieldKey, sourceLocale))

			var items []TransitItem
			for _, id := range ids {
				trec, ok := translation.RecordByID(translated, id)
				if !ok {
					continue
				}
				items = append(items, TransitItem{
					Data: trec,
					Meta: TransitMeta{ID: id, ItemType: trec.ItemType},
				})
			}
			if len(items) == 0 {
				continue
			}

			ref := CreateRef{
				Items:     items,
				FieldKey:  fieldKey,
				FieldType: field.FieldType,
				Parent:    record,
			}
			if field.FieldType == content.FieldRichText {
				out.Blocks = append(out.Blocks, ref)
			} else {
				out.Records = append(out.Records, ref)
			}
		}
	}
	return out
}

// fieldData flattens a translation record's fields into a field-key/value
// map, the shape both block attributes and record creation payloads use.
// Field names are already camel-cased on the wire.
func fieldData(trec translation.Record) map[string]any {
	data := make(map[string]any, len(trec.Fields))
	for _, field := range trec.Fields {
		if field.Kind() == translation.KindComposite {
			data[field.Name] = field.SubValues()
			continue
		}
		data[field.Name] = field.Value
	}
	return data
}
