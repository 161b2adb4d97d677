package importer

import (
	"reflect"
	"testing"
)

func TestPatchSetOrder(t *testing.T) {
	set := NewPatchSet()
	set.SetField("b", "title", "one")
	set.SetField("a", "title", "two")
	set.SetField("b", "body", "three")

	updates := set.Updates()
	if len(updates) != 2 {
		t.Fatalf("updates = %d, want 2", len(updates))
	}
	if updates[0].ID != "b" || updates[1].ID != "a" {
		t.Errorf("order = [%s %s], want first-seen [b a]", updates[0].ID, updates[1].ID)
	}
	if len(updates[0].Data) != 2 {
		t.Errorf("record b fields = %d, want 2", len(updates[0].Data))
	}
}

func TestSetLocaleSeedsFromBase(t *testing.T) {
	set := NewPatchSet()
	base := map[string]any{"en": "Hello", "fr": "Bonjour"}

	set.SetLocale("r1", "title", "sv", "Hej", base)

	value, ok := set.Field("r1", "title")
	if !ok {
		t.Fatal("field not patched")
	}
	want := map[string]any{"en": "Hello", "fr": "Bonjour", "sv": "Hej"}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("patch = %v, want %v", value, want)
	}

	// The base must not be mutated.
	if _, ok := base["sv"]; ok {
		t.Error("SetLocale wrote into the caller's base map")
	}
}

func TestSetLocalePreservesEarlierPatch(t *testing.T) {
	set := NewPatchSet()
	set.SetLocale("r1", "title", "sv", "Hej", map[string]any{"en": "Hello"})

	// A later stage patches another locale; the stale base must not clobber
	// the earlier patch.
	set.SetLocale("r1", "title", "de", "Hallo", map[string]any{"en": "old"})

	value, _ := set.Field("r1", "title")
	want := map[string]any{"en": "Hello", "sv": "Hej", "de": "Hallo"}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("patch = %v, want %v", value, want)
	}
}

func TestHasAndLen(t *testing.T) {
	set := NewPatchSet()
	if set.Has("r1") || set.Len() != 0 {
		t.Error("empty set reports contents")
	}
	set.SetField("r1", "title", "x")
	if !set.Has("r1") || set.Len() != 1 {
		t.Error("set does not report its single record")
	}
}
