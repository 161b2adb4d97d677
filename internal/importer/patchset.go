package importer

// PatchSet accumulates per-record field patches across the reconciliation
// stages. Each stage contributes field-level data keyed by record id; no
// stage ever replaces another stage's entry wholesale, so data merged
// earlier cannot be lost by a later stage. First-seen record order is
// preserved for the sequential update pass.
type PatchSet struct {
	order []string
	data  map[string]map[string]any
}

// Update is one record's accumulated field data, ready to submit.
type Update struct {
	ID   string
	Data map[string]any
}

func NewPatchSet() *PatchSet {
	return &PatchSet{data: make(map[string]map[string]any)}
}

func (s *PatchSet) entry(id string) map[string]any {
	fields, ok := s.data[id]
	if !ok {
		fields = make(map[string]any)
		s.data[id] = fields
		s.order = append(s.order, id)
	}
	return fields
}

// SetField sets the full value for a field, typically a per-locale map
// assembled by the direct merge stage.
func (s *PatchSet) SetField(id, fieldKey string, value any) {
	s.entry(id)[fieldKey] = value
}

// SetLocale sets one locale's value inside a field's per-locale map,
// leaving any locales already patched for that field untouched. When the
// field has no patch yet, base seeds the map so unpatched locales from the
// source record survive the update.
func (s *PatchSet) SetLocale(id, fieldKey, locale string, value any, base map[string]any) {
	fields := s.entry(id)
	current, ok := fields[fieldKey].(map[string]any)
	if !ok {
		current = make(map[string]any, len(base)+1)
		for k, v := range base {
			current[k] = v
		}
	}
	current[locale] = value
	fields[fieldKey] = current
}

// Field returns the current patch value for a field, if any.
func (s *PatchSet) Field(id, fieldKey string) (any, bool) {
	fields, ok := s.data[id]
	if !ok {
		return nil, false
	}
	value, ok := fields[fieldKey]
	return value, ok
}

// Has reports whether any stage has patched the record.
func (s *PatchSet) Has(id string) bool {
	_, ok := s.data[id]
	return ok
}

func (s *PatchSet) Len() int {
	return len(s.order)
}

// Updates returns the accumulated patches in first-seen record order.
func (s *PatchSet) Updates() []Update {
	updates := make([]Update, 0, len(s.order))
	for _, id := range s.order {
		updates = append(updates, Update{ID: id, Data: s.data[id]})
	}
	return updates
}
