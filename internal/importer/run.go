package importer

import (
	"context"
	"fmt"
	"log/slog"

	"locflow/internal/content"
	"locflow/internal/export"
	"locflow/internal/logging"
	"locflow/internal/repository"
	"locflow/internal/runlog"
	"locflow/internal/translation"
)

// Options controls one import run. The value is copied into Run and never
// mutated by the pipeline.
type Options struct {
	SourceLocale  string
	TargetLocale  string
	DryRun        bool
	CreateRecords bool
	// PublishUpdated bulk-publishes every successfully updated record after
	// the run.
	PublishUpdated bool
	// BackupPath, when set, writes an export of the repository's current
	// state before any write happens.
	BackupPath string
}

// Runner drives the import pipeline against a repository.
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

// Run validates the translation file, reconciles it against the repository
// and submits the resulting updates one at a time. Per-item failures are
// captured in the returned log and never abort the run; only validation and
// aggregate fetch failures return an error.
func (r *Runner) Run(ctx context.Context, doc *translation.Document, opts Options) (*runlog.Log, error) {
	known, err := r.client.Locales(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch repository locales: %w", err)
	}
	if err := translation.ValidateForImport(doc, opts.SourceLocale, known); err != nil {
		return nil, err
	}

	records, assets, err := repository.FetchAll(ctx, r.client, false)
	if err != nil {
		return nil, err
	}
	rawModels, err := r.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}
	models := content.NewModelSet(rawModels)

	if opts.BackupPath != "" {
		if err := r.writeBackup(records, assets, models, opts); err != nil {
			return nil, err
		}
	}

	log := runlog.New(runlog.ModeImport, opts.SourceLocale, opts.TargetLocale, opts.DryRun)
	translated, translatedAssets := doc.Split()

	set := NewPatchSet()
	Merge(set, records, models, translated, opts.SourceLocale, opts.TargetLocale, log)
	candidates := BuildCreateRefs(records, models, translated, opts.SourceLocale)
	AttachBlocks(set, candidates.Blocks, opts.TargetLocale)

	if opts.CreateRecords {
		flat := Flatten(candidates.Records)
		createdIDs := r.createRecords(ctx, Dedupe(flat), opts.DryRun, log)
		PatchCreated(set, flat, createdIDs, opts.TargetLocale)
	}

	r.logger.Info("reconciliation complete",
		logging.Int("updates", set.Len()),
		logging.Int("blocks", len(candidates.Blocks)),
		logging.Int("record_refs", len(candidates.Records)),
		logging.Bool("dry_run", opts.DryRun))

	updated := r.submitUpdates(ctx, set, opts.DryRun, log)
	r.submitAssetUpdates(ctx, MergeAssets(assets, translatedAssets, opts.SourceLocale, opts.TargetLocale), opts.DryRun, log)

	if opts.PublishUpdated && !opts.DryRun && len(updated) > 0 {
		if err := r.client.BulkPublish(ctx, updated); err != nil {
			log.Error("publish", runlog.TypeUpdate, "", err)
		}
	}
	return log, nil
}

func (r *Runner) writeBackup(records, assets []content.Record, models content.ModelSet, opts Options) error {
	result := export.Extract(records, models, opts.SourceLocale)
	children := export.Resolve(result.Records, records, models, result.References)
	assetRecords := export.ExtractAssets(assets, opts.SourceLocale)
	backup := export.BuildDocument(opts.SourceLocale, result.Records, children, assetRecords)
	if err := translation.Save(backup, opts.BackupPath); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	r.logger.Info("backup written", logging.String("path", opts.BackupPath))
	return nil
}

func (r *Runner) createRecords(ctx context.Context, refs []CreateRef, dryRun bool, log *runlog.Log) map[string]string {
	createdIDs := make(map[string]string, len(refs))
	for _, ref := range refs {
		item := ref.Items[0]
		if dryRun {
			log.OK("create", runlog.TypeCreate, item.Meta.ID)
			continue
		}
		newID, err := r.client.CreateRecord(ctx, repository.CreatePayload{
			ItemType: item.Meta.ItemType,
			Data:     fieldData(item.Data),
		})
		if err != nil {
			log.Error("create", runlog.TypeCreate, item.Meta.ID, err)
			continue
		}
		createdIDs[item.Meta.ID] = newID
		log.OK("create", runlog.TypeCreate, newID)
	}
	return createdIDs
}

func (r *Runner) submitUpdates(ctx context.Context, set *PatchSet, dryRun bool, log *runlog.Log) []string {
	var updated []string
	for _, update := range set.Updates() {
		if dryRun {
			log.OK("update", runlog.TypeUpdate, update.ID)
			continue
		}
		if err := r.client.UpdateRecord(ctx, update.ID, update.Data); err != nil {
			log.Error("update", runlog.TypeUpdate, update.ID, err)
			continue
		}
		updated = append(updated, update.ID)
		log.OK("update", runlog.TypeUpdate, update.ID)
	}
	return updated
}

func (r *Runner) submitAssetUpdates(ctx context.Context, updates []AssetUpdate, dryRun bool, log *runlog.Log) {
	for _, update := range updates {
		if dryRun {
			log.OK("update asset", runlog.TypeUpdateAsset, update.ID)
			continue
		}
		if err := r.client.UpdateAsset(ctx, update.ID, update.Data); err != nil {
			log.Error("update asset", runlog.TypeUpdateAsset, update.ID, err)
			continue
		}
		log.OK("update asset", runlog.TypeUpdateAsset, update.ID)
	}
}
