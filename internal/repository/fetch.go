package repository

import (
	"context"
	"fmt"

	"locflow/internal/content"
)

// FetchAll loads records and assets concurrently. The two reads are
// independent of each other; either failure aborts the caller's run before
// any pipeline stage executes.
func FetchAll(ctx context.Context, client Client, onlyPublished bool) (records, assets []content.Record, err error) {
	type fetched struct {
		records []content.Record
		err     error
	}
	recordCh := make(chan fetched, 1)
	assetCh := make(chan fetched, 1)

	go func() {
		records, err := client.ListRecords(ctx, onlyPublished)
		recordCh <- fetched{records: records, err: err}
	}()
	go func() {
		assets, err := client.ListAssets(ctx)
		assetCh <- fetched{records: assets, err: err}
	}()

	recordResult := <-recordCh
	assetResult := <-assetCh
	if recordResult.err != nil {
		return nil, nil, fmt.Errorf("fetch records: %w", recordResult.err)
	}
	if assetResult.err != nil {
		return nil, nil, fmt.Errorf("fetch assets: %w", assetResult.err)
	}
	return recordResult.records, assetResult.records, nil
}
