package export

import (
	"context"
	"fmt"
	"log/slog"

	"locflow/internal/content"
	"locflow/internal/locales"
	"locflow/internal/logging"
	"locflow/internal/repository"
	"locflow/internal/runlog"
	"locflow/internal/translation"
)

// Options controls one export run. The value is copied into Run and never
// mutated by the pipeline.
type Options struct {
	SourceLocale string
	// Content and Assets select what goes into the document. Both default
	// to off; the caller enables at least one.
	Content bool
	Assets  bool
	// OnlyPublished restricts the record fetch to published versions.
	OnlyPublished bool
	// OutputPath is where the document is written.
	OutputPath string
}

// Runner drives the export pipeline against a repository.
type Runner struct {
	client repository.Client
	logger *slog.Logger
}

func NewRunner(client repository.Client, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{client: client, logger: logger}
}

// Run extracts the translatable surface of the repository into a portable
// document and writes it to the output path.
func (r *Runner) Run(ctx context.Context, opts Options) (*translation.Document, *runlog.Log, error) {
	if !opts.Content && !opts.Assets {
		return nil, nil, fmt.Errorf("nothing to export: enable content, assets, or both")
	}

	known, err := r.client.Locales(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch repository locales: %w", err)
	}
	if opts.SourceLocale == "" || !locales.Contains(known, opts.SourceLocale) {
		return nil, nil, fmt.Errorf("source locale %q is not configured on the repository", opts.SourceLocale)
	}

	records, assets, err := repository.FetchAll(ctx, r.client, opts.OnlyPublished)
	if err != nil {
		return nil, nil, err
	}

	var exported, children, assetRecords []translation.Record
	models := content.ModelSet{}
	if opts.Content {
		rawModels, err := r.client.ListModels(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch models: %w", err)
		}
		models = content.NewModelSet(rawModels)

		result := Extract(records, models, opts.SourceLocale)
		exported = result.Records
		children = Resolve(result.Records, records, models, result.References)
	}
	if opts.Assets {
		assetRecords = ExtractAssets(assets, opts.SourceLocale)
	}

	doc := BuildDocument(opts.SourceLocale, exported, children, assetRecords)

	log := runlog.New(runlog.ModeExport, opts.SourceLocale, "", false)
	for _, rec := range doc.Fields {
		log.OK("export", runlog.TypeExport, rec.ID)
	}

	if opts.OutputPath != "" {
		if err := translation.Save(doc, opts.OutputPath); err != nil {
			return nil, nil, fmt.Errorf("write document: %w", err)
		}
		r.logger.Info("export written",
			logging.String("path", opts.OutputPath),
			logging.Int("records", len(exported)+len(children)),
			logging.Int("assets", len(assetRecords)))
	}
	return doc, log, nil
}
