package translation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FieldKind discriminates the closed set of translation field variants.
type FieldKind int

const (
	// KindSimple is a plain translatable value (string or number).
	KindSimple FieldKind = iota
	// KindComposite groups predefined sub-fields that live directly on a
	// record, such as file alt/title or SEO title/description.
	KindComposite
	// KindReference carries record ids collected during extraction. It only
	// exists inside the engine; the resolver consumes it before anything is
	// written to the portable file.
	KindReference
)

// Field is one translatable unit on a portable record. The three variants
// share one type so field lists stay homogeneous, but the kind is fixed at
// construction and reference fields refuse to serialize.
type Field struct {
	Name   string
	Hint   string
	Value  any
	Fields []Field

	kind FieldKind
	refs []string
}

// Simple builds a plain value field.
func Simple(name string, value any, hint string) Field {
	return Field{Name: name, Value: value, Hint: hint, kind: KindSimple}
}

// Composite builds a sub-field group.
func Composite(name, hint string, fields []Field) Field {
	return Field{Name: name, Hint: hint, Fields: fields, kind: KindComposite}
}

// Reference builds a transient reference marker carrying child record ids.
func Reference(ids []string) Field {
	return Field{kind: KindReference, refs: ids}
}

// Kind returns the field variant.
func (f Field) Kind() FieldKind { return f.kind }

// ReferenceIDs returns the ids a reference field carries. Empty for the
// other variants.
func (f Field) ReferenceIDs() []string { return f.refs }

type simpleWire struct {
	Name  string `json:"fieldName"`
	Value any    `json:"value"`
	Hint  string `json:"hint"`
}

type compositeWire struct {
	Name   string  `json:"fieldName"`
	Hint   string  `json:"hint"`
	Fields []Field `json:"fields"`
}

// MarshalJSON encodes the two persistable variants structurally: composites
// carry a fields array, simples carry a value. Reference markers must never
// reach serialization; attempting it is a bug in the pipeline.
func (f Field) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case KindSimple:
		return json.Marshal(simpleWire{Name: f.Name, Value: f.Value, Hint: f.Hint})
	case KindComposite:
		return json.Marshal(compositeWire{Name: f.Name, Hint: f.Hint, Fields: f.Fields})
	default:
		return nil, errors.New("translation: reference field leaked past resolution")
	}
}

// UnmarshalJSON picks the variant by shape: a fields array means composite,
// anything else is a simple value field.
func (f *Field) UnmarshalJSON(data []byte) error {
	var probe struct {
		Name   string          `json:"fieldName"`
		Hint   string          `json:"hint"`
		Value  any             `json:"value"`
		Fields json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode translation field: %w", err)
	}
	if len(probe.Fields) > 0 && string(probe.Fields) != "null" {
		var fields []Field
		if err := json.Unmarshal(probe.Fields, &fields); err != nil {
			return fmt.Errorf("decode composite sub-fields: %w", err)
		}
		*f = Composite(probe.Name, probe.Hint, fields)
		return nil
	}
	*f = Simple(probe.Name, probe.Value, probe.Hint)
	return nil
}

// StringValue returns the field value as a string when it is one.
func (f Field) StringValue() (string, bool) {
	s, ok := f.Value.(string)
	return s, ok
}

// SubValues flattens a composite's sub-fields into a key/value map.
func (f Field) SubValues() map[string]any {
	if len(f.Fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(f.Fields))
	for _, sub := range f.Fields {
		out[sub.Name] = sub.Value
	}
	return out
}
