package importer

// Flatten expands multi-item create refs into single-item refs so a links
// field referencing N records yields N create candidates.
func Flatten(refs []CreateRef) []CreateRef {
	var flat []CreateRef
	for _, ref := range refs {
		for _, item := range ref.Items {
			flat = append(flat, CreateRef{
				Items:     []TransitItem{item},
				FieldKey:  ref.FieldKey,
				FieldType: ref.FieldType,
				Parent:    ref.Parent,
			})
		}
	}
	return flat
}

// Dedupe drops refs whose transit id was already seen, preserving first-seen
// order. A child referenced by several parents is created exactly once;
// back-patching still runs over the full flattened set so every parent gets
// the created id.
func Dedupe(refs []CreateRef) []CreateRef {
	seen := make(map[string]struct{}, len(refs))
	var unique []CreateRef
	for _, ref := range refs {
		id := ref.Items[0].Meta.ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, ref)
	}
	return unique
}
