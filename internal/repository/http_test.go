package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL, "test-token", "sandbox", WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestNewValidatesInputs(t *testing.T) {
	if _, err := New("", "token", ""); err == nil {
		t.Error("expected error for missing base url")
	}
	if _, err := New("https://example.com", "  ", ""); err == nil {
		t.Error("expected error for missing token")
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotEnv, gotAccept string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotEnv = r.Header.Get("X-Environment")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{"data":{"locales":["en"]}}`)
	}))

	if _, err := client.Locales(context.Background()); err != nil {
		t.Fatalf("locales: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotEnv != "sandbox" {
		t.Errorf("environment = %q", gotEnv)
	}
	if gotAccept != "application/json" {
		t.Errorf("accept = %q", gotAccept)
	}
}

func TestListRecordsPagination(t *testing.T) {
	total := 150
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("version"); got != "published" {
			t.Errorf("version = %q, want published", got)
		}
		offset, _ := strconv.Atoi(r.URL.Query().Get("page[offset]"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("page[limit]"))

		var data []map[string]any
		for i := offset; i < total && i < offset+limit; i++ {
			data = append(data, map[string]any{"id": fmt.Sprintf("rec-%d", i)})
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))

	records, err := client.ListRecords(context.Background(), true)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != total {
		t.Fatalf("records = %d, want %d", len(records), total)
	}
	if records[100].ID() != "rec-100" {
		t.Errorf("record across page boundary = %q", records[100].ID())
	}
}

func TestListModels(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/item-types":
			fmt.Fprint(w, `{"data":[{"id":"m1","name":"Page","apiKey":"page","allLocalesRequired":true,"fieldOrder":["f2","f1"]}]}`)
		case "/item-types/m1/fields":
			fmt.Fprint(w, `{"data":[
				{"id":"f1","apiKey":"title","fieldType":"string","localized":true,
				 "validators":{"enum":{"values":["a","b"]}}},
				{"id":"f2","apiKey":"seo","fieldType":"seo","localized":true,
				 "validators":{"titleLength":{"max":60},"descriptionLength":{"max":160}}}
			]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("list models: %v", err)
	}
	if len(models) != 1 {
		t.Fatalf("models = %d, want 1", len(models))
	}
	model := models[0]
	if !model.AllLocalesRequired || model.Name != "Page" {
		t.Errorf("model = %+v", model)
	}
	if len(model.FieldsReference) != 2 || model.FieldsReference[0] != "f2" {
		t.Errorf("field order = %v, want repository order preserved", model.FieldsReference)
	}

	title, ok := model.FieldByAPIKey("title")
	if !ok || !title.Validators.EnumRestricted() {
		t.Errorf("title field = %+v", title)
	}
	seo, _ := model.FieldByAPIKey("seo")
	if seo.Validators.TitleLength != 60 || seo.Validators.DescriptionLength != 160 {
		t.Errorf("seo validators = %+v", seo.Validators)
	}
}

func TestListModelsFallbackFieldOrder(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/item-types":
			fmt.Fprint(w, `{"data":[{"id":"m1","name":"Page","apiKey":"page"}]}`)
		default:
			fmt.Fprint(w, `{"data":[{"id":"f1","apiKey":"title","fieldType":"string"}]}`)
		}
	}))

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("list models: %v", err)
	}
	if got := models[0].FieldsReference; len(got) != 1 || got[0] != "f1" {
		t.Errorf("fallback field order = %v", got)
	}
}

func TestCreateRecord(t *testing.T) {
	var body map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/items" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		fmt.Fprint(w, `{"data":{"id":"new-1"}}`)
	}))

	id, err := client.CreateRecord(context.Background(), CreatePayload{
		ItemType: "m1",
		Data:     map[string]any{"title": "Hello"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "new-1" {
		t.Errorf("id = %q", id)
	}
	data := body["data"].(map[string]any)
	if data["itemType"] != "m1" {
		t.Errorf("payload = %v", body)
	}
}

func TestCreateRecordMissingID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{}}`)
	}))

	if _, err := client.CreateRecord(context.Background(), CreatePayload{ItemType: "m1"}); err == nil {
		t.Fatal("expected error for response without id")
	}
}

func TestUpdateRecord(t *testing.T) {
	var method, path string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.UpdateRecord(context.Background(), "rec-1", map[string]any{"title": "x"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if method != http.MethodPut || path != "/items/rec-1" {
		t.Errorf("%s %s", method, path)
	}
}

func TestBulkPublish(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/items/bulk/publish" {
			t.Errorf("path = %s", r.URL.Path)
		}
	}))

	if err := client.BulkPublish(context.Background(), []string{"a", "b"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := client.BulkPublish(context.Background(), nil); err != nil {
		t.Fatalf("empty publish: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want empty id list skipped", calls)
	}
}

func TestErrorStatusSurfaced(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))

	_, err := client.Locales(context.Background())
	if err == nil {
		t.Fatal("expected error for 401")
	}
}

func TestFetchAll(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/items":
			fmt.Fprint(w, `{"data":[{"id":"rec-1"}]}`)
		case "/uploads":
			fmt.Fprint(w, `{"data":[{"id":"asset-1"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))

	records, assets, err := FetchAll(context.Background(), client, false)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(records) != 1 || records[0].ID() != "rec-1" {
		t.Errorf("records = %v", records)
	}
	if len(assets) != 1 || assets[0].ID() != "asset-1" {
		t.Errorf("assets = %v", assets)
	}
}
