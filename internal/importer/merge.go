package importer

import (
	"fmt"
	"regexp"
	"strconv"

	"locflow/internal/content"
	"locflow/internal/runlog"
	"locflow/internal/translation"
)

var integerLiteral = regexp.MustCompile(`^-?\d+$`)

// Merge runs the direct field merge: for every source record with a matching
// translation record it patches the translated value onto the field's
// per-locale map at the target locale, leaving every other locale untouched.
// Fields that no longer exist on the model are skipped without error, so an
// old translation file still imports after schema changes.
func Merge(set *PatchSet, records []content.Record, models content.ModelSet, translated []translation.Record, sourceLocale, targetLocale string, log *runlog.Log) {
	for _, record := range records {
		model, ok := models[record.ItemType()]
		if !ok || !model.Translatable() {
			continue
		}
		trec, ok := translation.RecordByID(translated, record.ID())
		if !ok {
			continue
		}
		mergeRecord(set, record, model, trec, sourceLocale, targetLocale, log)
	}
}

func mergeRecord(set *PatchSet, record content.Record, model content.Model, trec translation.Record, sourceLocale, targetLocale string, log *runlog.Log) {
	for _, tf := range trec.Fields {
		field, ok := model.FieldByAPIKey(content.SnakeKey(tf.Name))
		if !ok {
			continue
		}
		fieldKey := content.CamelKey(field.APIKey)

		switch field.FieldType {
		case content.FieldString, content.FieldText:
			localeMap, ok := record.LocaleMap(fieldKey)
			if !ok {
				continue
			}
			value := tf.Value
			if value == nil {
				value = ""
			}
			localeMap[targetLocale] = value
			set.SetField(record.ID(), fieldKey, localeMap)

		case content.FieldInteger, content.FieldFloat:
			number, ok := coerceNumeric(tf.Value, field.FieldType)
			if !ok {
				continue
			}
			localeMap, ok := record.LocaleMap(fieldKey)
			if !ok {
				localeMap = make(map[string]any, 1)
			}
			localeMap[targetLocale] = number
			set.SetField(record.ID(), fieldKey, localeMap)

		case content.FieldFile, content.FieldImage:
			mergeComposite(set, record, trec.ID, fieldKey, tf, field, targetLocale, sourceLocale, nil)

		case content.FieldSeo:
			mergeComposite(set, record, trec.ID, fieldKey, tf, field, targetLocale, sourceLocale, log)
		}
	}
}

// mergeComposite rebuilds a file or SEO object from its translated
// sub-fields and merges it over the source-locale object so untranslated
// keys (image reference, focal point, custom data) carry over. When log is
// set, over-length SEO values are truncated to the validator maximum and
// recorded as warnings.
func mergeComposite(set *PatchSet, record content.Record, recordID, fieldKey string, tf translation.Field, field content.Field, targetLocale, sourceLocale string, log *runlog.Log) {
	localeMap, ok := record.LocaleMap(fieldKey)
	if !ok {
		return
	}

	merged := make(map[string]any)
	if source, ok := localeMap[sourceLocale].(map[string]any); ok {
		for k, v := range source {
			merged[k] = v
		}
	}
	for _, sub := range tf.Fields {
		value := sub.Value
		if log != nil {
			value = capLength(log, recordID, sub.Name, value, seoMax(field, sub.Name))
		}
		merged[sub.Name] = value
	}

	localeMap[targetLocale] = merged
	set.SetField(recordID, fieldKey, localeMap)
}

func seoMax(field content.Field, subName string) int {
	switch subName {
	case translation.SeoTitle:
		return field.Validators.TitleLength
	case translation.SeoDescription:
		return field.Validators.DescriptionLength
	}
	return 0
}

func capLength(log *runlog.Log, recordID, subName string, value any, max int) any {
	text, ok := value.(string)
	if !ok || max <= 0 || len([]rune(text)) <= max {
		return value
	}
	log.Warn("merge", recordID, fmt.Sprintf("%s exceeded %d characters and was truncated", subName, max))
	return string([]rune(text)[:max])
}

// coerceNumeric accepts numeric values as-is and integer-literal strings by
// parsing them per field type. Anything else is rejected so a bad
// translation never zero-fills a numeric field.
func coerceNumeric(value any, fieldType content.FieldType) (any, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return v, true
	case int64:
		return v, true
	case string:
		if !integerLiteral.MatchString(v) {
			return nil, false
		}
		if fieldType == content.FieldFloat {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, false
			}
			return parsed, true
		}
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false
		}
		return parsed, true
	}
	return nil, false
}
