package export

import (
	"locflow/internal/content"
	"locflow/internal/translation"
)

// Resolve pulls in the child records referenced by the extraction pass:
// linked records and modular blocks one hop below the top level. Reference
// ids are deduplicated first, ids that no longer resolve to a record are
// silently dropped, and records already present in the exported set are
// skipped so a record that is both independently translatable and linked
// from elsewhere is exported exactly once.
//
// Child records are walked without locale unwrapping: modular blocks store a
// single native value per field, not a per-locale map, so every field in the
// model is classified against the raw value directly. Reference results from
// this walk are discarded; the engine resolves exactly one hop.
func Resolve(exported []translation.Record, all []content.Record, models content.ModelSet, referenceIDs []string) []translation.Record {
	if len(referenceIDs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(exported))
	for _, rec := range exported {
		seen[rec.ID] = struct{}{}
	}

	byID := make(map[string]content.Record, len(all))
	for _, record := range all {
		byID[record.ID()] = record
	}

	var resolved []translation.Record
	for _, id := range dedupe(referenceIDs) {
		if _, ok := seen[id]; ok {
			continue
		}
		record, ok := byID[id]
		if !ok {
			// Stale reference; the child was removed after being linked.
			continue
		}
		model, ok := models[record.ItemType()]
		if !ok {
			continue
		}
		if rec, ok := extractChildRecord(record, model); ok {
			resolved = append(resolved, rec)
			seen[id] = struct{}{}
		}
	}
	return resolved
}

func extractChildRecord(record content.Record, model content.Model) (translation.Record, bool) {
	var fields []translation.Field
	for _, fieldID := range model.FieldsReference {
		field, ok := model.FieldByID(fieldID)
		if !ok {
			continue
		}
		classified, ok := Classify(field, record[content.CamelKey(field.APIKey)])
		if !ok || classified.Kind() == translation.KindReference {
			continue
		}
		fields = append(fields, classified)
	}
	if len(fields) == 0 {
		return translation.Record{}, false
	}
	return newRecord(record, model, fields), true
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
