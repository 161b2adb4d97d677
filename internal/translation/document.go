package translation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"locflow/internal/content"
)

// Sub-field names shared by export and import. The portable file uses these
// exact keys, so both sides read them from one place.
const (
	MediaAlt       = "alt"
	MediaTitle     = "title"
	SeoTitle       = "title"
	SeoDescription = "description"
)

// Record is the portable, flattened unit of one content record's
// translatable surface.
type Record struct {
	ID        string  `json:"id"`
	ItemType  string  `json:"itemType"`
	ModelName string  `json:"modelName"`
	Hint      string  `json:"hint"`
	Fields    []Field `json:"fields"`
}

// IsAsset reports whether the record describes asset metadata rather than
// content. Assets have no model id, so the media marker stands in for one.
func (r Record) IsAsset() bool {
	return r.ItemType == content.ItemTypeMedia
}

// Document is the persisted wire format handed to translators: one source
// locale and the flat list of translation records.
type Document struct {
	Lang   string   `json:"lang"`
	Fields []Record `json:"fields"`
}

// Split separates content records from asset records so the import
// pipelines never scan translations that cannot apply to them.
func (d *Document) Split() (records, assets []Record) {
	for _, rec := range d.Fields {
		if rec.IsAsset() {
			assets = append(assets, rec)
		} else {
			records = append(records, rec)
		}
	}
	return records, assets
}

// RecordByID returns the record with the given id.
func RecordByID(records []Record, id string) (Record, bool) {
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Save writes the document as indented JSON, creating parent directories as
// needed.
func Save(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode translation document: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write translation document: %w", err)
	}
	return nil
}

// Load reads a document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translation document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse translation document: %w", err)
	}
	return &doc, nil
}
