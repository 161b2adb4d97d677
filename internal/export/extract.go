package export

import (
	"locflow/internal/content"
	"locflow/internal/translation"
)

// Result carries the top-level translation records produced by an extraction
// pass plus the ids of every child record referenced along the way. The
// reference set feeds the resolver; it never appears in the portable file.
type Result struct {
	Records    []translation.Record
	References []string
}

// Extract flattens the translatable surface of the given raw records for one
// source locale. Only records whose model requires all locales and is not a
// modular block are walked; each localized field is unwrapped at the source
// locale and classified. Records that gather no translatable fields are
// dropped rather than emitted as bare shells.
func Extract(records []content.Record, models content.ModelSet, sourceLocale string) Result {
	var result Result
	for _, record := range records {
		model, ok := models[record.ItemType()]
		if !ok || !model.Translatable() {
			continue
		}
		rec, refs := extractRecord(record, model, sourceLocale)
		if len(rec.Fields) > 0 {
			result.Records = append(result.Records, rec)
		}
		result.References = append(result.References, refs...)
	}
	return result
}

func extractRecord(record content.Record, model content.Model, sourceLocale string) (translation.Record, []string) {
	var (
		fields []translation.Field
		refs   []string
	)
	for _, fieldID := range model.FieldsReference {
		field, ok := model.FieldByID(fieldID)
		if !ok || !field.Localized {
			continue
		}
		value := record.LocaleValue(content.CamelKey(field.APIKey), sourceLocale)
		classified, ok := Classify(field, value)
		if !ok {
			continue
		}
		if classified.Kind() == translation.KindReference {
			refs = append(refs, classified.ReferenceIDs()...)
			continue
		}
		fields = append(fields, classified)
	}
	return newRecord(record, model, fields), refs
}

// newRecord shapes the portable record envelope for a raw record.
func newRecord(record content.Record, model content.Model, fields []translation.Field) translation.Record {
	return translation.Record{
		ID:        record.ID(),
		ItemType:  model.ID,
		ModelName: model.Name,
		Hint:      model.Hint,
		Fields:    fields,
	}
}
