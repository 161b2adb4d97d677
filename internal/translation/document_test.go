package translation

import (
	"path/filepath"
	"testing"

	"locflow/internal/content"
)

func sampleDocument() *Document {
	return &Document{
		Lang: "en",
		Fields: []Record{
			{ID: "r1", ItemType: "m1", ModelName: "Blog post", Fields: []Field{
				Simple("title", "Hello", ""),
			}},
			{ID: "a1", ItemType: content.ItemTypeMedia, Fields: []Field{
				Simple("alt", "A photo", ""),
			}},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "export.json")

	if err := Save(sampleDocument(), path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Lang != "en" {
		t.Errorf("lang = %q, want en", loaded.Lang)
	}
	if len(loaded.Fields) != 2 {
		t.Fatalf("records = %d, want 2", len(loaded.Fields))
	}
	if loaded.Fields[0].Fields[0].Value != "Hello" {
		t.Errorf("value = %v, want Hello", loaded.Fields[0].Fields[0].Value)
	}
}

func TestSplit(t *testing.T) {
	records, assets := sampleDocument().Split()
	if len(records) != 1 || records[0].ID != "r1" {
		t.Errorf("records = %v", records)
	}
	if len(assets) != 1 || assets[0].ID != "a1" {
		t.Errorf("assets = %v", assets)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateForImport(t *testing.T) {
	valid := sampleDocument()
	valid.Lang = "sv"

	tests := []struct {
		name    string
		doc     *Document
		wantErr string
	}{
		{"nil document", nil, "must be provided"},
		{"missing lang", &Document{Fields: valid.Fields}, "target locale"},
		{"same as source", &Document{Lang: "en", Fields: valid.Fields}, "cannot be the same"},
		{"empty fields", &Document{Lang: "sv"}, "empty"},
		{"unknown locale", &Document{Lang: "de", Fields: valid.Fields}, "not configured"},
		{"valid", valid, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForImport(tt.doc, "en", []string{"en", "sv"})
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
