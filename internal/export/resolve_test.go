package export

import (
	"reflect"
	"testing"

	"locflow/internal/content"
	"locflow/internal/translation"
)

func blockRecord(id, quote string) content.Record {
	return content.Record{
		"id":        id,
		"itemType":  "model-quote",
		"quoteText": quote,
		"author":    "Someone",
		"more":      []any{"post-9"},
	}
}

func TestResolve(t *testing.T) {
	all := []content.Record{
		postRecord(),
		blockRecord("block-1", "First quote"),
		blockRecord("block-2", "Second quote"),
	}
	exported := []translation.Record{{ID: "post-1", ItemType: "model-post"}}

	refs := []string{"block-1", "block-1", "block-2", "post-1", "gone-1"}
	children := Resolve(exported, all, testModels(), refs)

	var ids []string
	for _, rec := range children {
		ids = append(ids, rec.ID)
	}
	if want := []string{"block-1", "block-2"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("resolved ids = %v, want %v", ids, want)
	}

	// Block fields are read natively, without locale unwrapping, and
	// reference fields one hop down are discarded.
	first := children[0]
	var names []string
	for _, f := range first.Fields {
		names = append(names, f.Name)
	}
	if want := []string{"quoteText", "author"}; !reflect.DeepEqual(names, want) {
		t.Errorf("child field names = %v, want %v", names, want)
	}
}

func TestResolveEmptyReferences(t *testing.T) {
	if got := Resolve(nil, []content.Record{postRecord()}, testModels(), nil); got != nil {
		t.Errorf("Resolve with no references = %v, want nil", got)
	}
}

func TestResolveSkipsAlreadyExported(t *testing.T) {
	all := []content.Record{blockRecord("block-1", "Quote")}
	exported := []translation.Record{{ID: "block-1"}}

	if got := Resolve(exported, all, testModels(), []string{"block-1"}); len(got) != 0 {
		t.Errorf("already exported record resolved again: %v", got)
	}
}

func TestExtractAssets(t *testing.T) {
	assets := []content.Record{
		{
			"id": "asset-1",
			"defaultFieldMetadata": map[string]any{
				"en": map[string]any{"alt": "A dog", "title": "Dog", "focalPoint": map[string]any{"x": 0.5}},
			},
		},
		{
			"id": "asset-2",
			"defaultFieldMetadata": map[string]any{
				"en": map[string]any{"alt": "", "title": ""},
			},
		},
		{
			"id": "asset-3",
		},
	}

	got := ExtractAssets(assets, "en")
	if len(got) != 1 {
		t.Fatalf("assets = %d, want 1", len(got))
	}
	if got[0].ID != "asset-1" || got[0].ItemType != content.ItemTypeMedia {
		t.Errorf("envelope = %+v", got[0])
	}
	if subs := len(got[0].Fields); subs != 2 {
		t.Errorf("fields = %d, want alt and title", subs)
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument("en",
		[]translation.Record{{ID: "r1"}},
		[]translation.Record{{ID: "c1"}},
		[]translation.Record{{ID: "a1", ItemType: content.ItemTypeMedia}},
	)
	if doc.Lang != "en" {
		t.Errorf("lang = %q", doc.Lang)
	}
	var ids []string
	for _, rec := range doc.Fields {
		ids = append(ids, rec.ID)
	}
	if want := []string{"r1", "c1", "a1"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}
