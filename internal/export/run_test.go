package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"locflow/internal/content"
	"locflow/internal/repository"
)

type fakeClient struct {
	records []content.Record
	assets  []content.Record
	models  []content.Model
	locales []string
}

func (f *fakeClient) ListRecords(ctx context.Context, onlyPublished bool) ([]content.Record, error) {
	return f.records, nil
}

func (f *fakeClient) ListAssets(ctx context.Context) ([]content.Record, error) {
	return f.assets, nil
}

func (f *fakeClient) ListModels(ctx context.Context) ([]content.Model, error) {
	return f.models, nil
}

func (f *fakeClient) Locales(ctx context.Context) ([]string, error) {
	return f.locales, nil
}

func (f *fakeClient) CreateRecord(ctx context.Context, payload repository.CreatePayload) (string, error) {
	return "", nil
}

func (f *fakeClient) UpdateRecord(ctx context.Context, id string, data map[string]any) error {
	return nil
}

func (f *fakeClient) UpdateAsset(ctx context.Context, id string, data map[string]any) error {
	return nil
}

func (f *fakeClient) BulkPublish(ctx context.Context, ids []string) error {
	return nil
}

func exportModels() []content.Model {
	set := testModels()
	models := make([]content.Model, 0, len(set))
	for _, m := range set {
		models = append(models, m)
	}
	return models
}

func TestRunnerRun(t *testing.T) {
	client := &fakeClient{
		records: []content.Record{postRecord(), blockRecord("block-1", "Quote"), blockRecord("block-2", "Other")},
		assets: []content.Record{{
			"id": "asset-1",
			"defaultFieldMetadata": map[string]any{
				"en": map[string]any{"alt": "A dog", "title": "Dog"},
			},
		}},
		models:  exportModels(),
		locales: []string{"en", "sv"},
	}
	output := filepath.Join(t.TempDir(), "export.json")

	doc, log, err := NewRunner(client, nil).Run(context.Background(), Options{
		SourceLocale: "en",
		Content:      true,
		Assets:       true,
		OutputPath:   output,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Top-level post, two resolved blocks, one asset.
	if len(doc.Fields) != 4 {
		t.Fatalf("document records = %d, want 4", len(doc.Fields))
	}
	if got := log.Summary().Export.OK; got != 4 {
		t.Errorf("export count = %d, want 4", got)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var onDisk map[string]any
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if onDisk["lang"] != "en" {
		t.Errorf("lang on disk = %v", onDisk["lang"])
	}
}

func TestRunnerRejectsUnknownLocale(t *testing.T) {
	client := &fakeClient{locales: []string{"en"}}
	_, _, err := NewRunner(client, nil).Run(context.Background(), Options{SourceLocale: "de", Content: true})
	if err == nil {
		t.Fatal("expected error for unconfigured source locale")
	}
}

func TestRunnerRequiresSelection(t *testing.T) {
	_, _, err := NewRunner(&fakeClient{}, nil).Run(context.Background(), Options{SourceLocale: "en"})
	if err == nil {
		t.Fatal("expected error when neither content nor assets selected")
	}
}

func TestRunnerAssetsOnly(t *testing.T) {
	client := &fakeClient{
		records: []content.Record{postRecord()},
		assets: []content.Record{{
			"id": "asset-1",
			"defaultFieldMetadata": map[string]any{
				"en": map[string]any{"alt": "A dog"},
			},
		}},
		locales: []string{"en"},
	}

	doc, _, err := NewRunner(client, nil).Run(context.Background(), Options{SourceLocale: "en", Assets: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(doc.Fields) != 1 || !doc.Fields[0].IsAsset() {
		t.Errorf("document = %+v, want single asset record", doc.Fields)
	}
}
