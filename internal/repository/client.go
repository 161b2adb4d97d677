package repository

import (
	"context"

	"locflow/internal/content"
)

// CreatePayload describes one record to create: the model it belongs to and
// the camel-keyed field data.
type CreatePayload struct {
	ItemType string
	Data     map[string]any
}

// Client is the repository surface the export and import pipelines consume.
// Every operation may fail with a transport- or validation-level error; the
// pipelines treat per-item failures as recoverable-and-logged, never fatal
// to the run.
type Client interface {
	// ListRecords returns every content record, either the latest versions
	// or only published ones.
	ListRecords(ctx context.Context, onlyPublished bool) ([]content.Record, error)
	// ListAssets returns every asset record.
	ListAssets(ctx context.Context) ([]content.Record, error)
	// ListModels returns every model with its field definitions attached.
	ListModels(ctx context.Context) ([]content.Model, error)
	// Locales returns the locale codes configured on the repository.
	Locales(ctx context.Context) ([]string, error)
	// CreateRecord creates a record and returns its assigned id.
	CreateRecord(ctx context.Context, payload CreatePayload) (string, error)
	// UpdateRecord patches field data onto an existing record.
	UpdateRecord(ctx context.Context, id string, data map[string]any) error
	// UpdateAsset patches metadata onto an existing asset.
	UpdateAsset(ctx context.Context, id string, data map[string]any) error
	// BulkPublish publishes the given record ids.
	BulkPublish(ctx context.Context, ids []string) error
}
