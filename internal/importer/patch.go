package importer

import (
	"locflow/internal/content"
)

// PatchCreated writes newly created record ids back onto the parent fields
// that referenced them. createdIDs maps a child's transit id to the id the
// repository assigned; refs is the full flattened candidate set, so parents
// sharing a deduplicated child are all patched. Children whose create call
// failed are simply absent from createdIDs and leave the parent field alone.
func PatchCreated(set *PatchSet, refs []CreateRef, createdIDs map[string]string, targetLocale string) {
	type fieldSlot struct {
		parentID string
		fieldKey string
	}
	ordered := make([]fieldSlot, 0, len(refs))
	grouped := make(map[fieldSlot][]string)
	fieldTypes := make(map[fieldSlot]content.FieldType)
	parents := make(map[fieldSlot]content.Record)

	for _, ref := range refs {
		newID, ok := createdIDs[ref.Items[0].Meta.ID]
		if !ok {
			continue
		}
		slot := fieldSlot{parentID: ref.Parent.ID(), fieldKey: ref.FieldKey}
		if _, ok := grouped[slot]; !ok {
			ordered = append(ordered, slot)
			fieldTypes[slot] = ref.FieldType
			parents[slot] = ref.Parent
		}
		grouped[slot] = append(grouped[slot], newID)
	}

	for _, slot := range ordered {
		ids := grouped[slot]
		var value any
		if fieldTypes[slot] == content.FieldLink {
			value = ids[0]
		} else {
			value = ids
		}
		base, _ := parents[slot].LocaleMap(slot.fieldKey)
		set.SetLocale(slot.parentID, slot.fieldKey, targetLocale, value, base)
	}
}
