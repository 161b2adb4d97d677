package importer

// AttachBlocks writes modular-block content into the parent record's patch.
// Blocks never get their own create call: the repository materializes them
// from the native item shape embedded in the parent's field value.
func AttachBlocks(set *PatchSet, blocks []CreateRef, targetLocale string) {
	for _, ref := range blocks {
		items := make([]any, 0, len(ref.Items))
		for _, item := range ref.Items {
			items = append(items, blockShape(item))
		}
		base, _ := ref.Parent.LocaleMap(ref.FieldKey)
		set.SetLocale(ref.Parent.ID(), ref.FieldKey, targetLocale, items, base)
	}
}

// blockShape builds the repository's native inline-item representation for
// one block.
func blockShape(item TransitItem) map[string]any {
	return map[string]any{
		"type":       "item",
		"attributes": fieldData(item.Data),
		"relationships": map[string]any{
			"item_type": map[string]any{
				"data": map[string]any{
					"id":   item.Meta.ItemType,
					"type": "item_type",
				},
			},
		},
	}
}
