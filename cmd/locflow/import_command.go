package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"locflow/internal/importer"
	"locflow/internal/locales"
	"locflow/internal/logging"
	"locflow/internal/translation"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var (
		targetFlag  string
		sourceFlag  string
		dryRunFlag  bool
		createFlag  bool
		backupFlag  bool
		publishFlag bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a translated file back into the repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			release, err := ctx.acquireRunLock()
			if err != nil {
				return err
			}
			defer release()

			doc, err := translation.Load(args[0])
			if err != nil {
				return err
			}

			sourceLocale := sourceFlag
			if sourceLocale == "" {
				sourceLocale = cfg.Repository.SourceLocale
			}

			// The file's lang is the target locale; the flag overrides it
			// when a translator forgot to update the field.
			if targetFlag != "" {
				doc.Lang = locales.Normalize(targetFlag)
			}

			opts := importer.Options{
				SourceLocale:   locales.Normalize(sourceLocale),
				TargetLocale:   doc.Lang,
				DryRun:         dryRunFlag,
				CreateRecords:  createFlag,
				PublishUpdated: publishFlag,
			}
			if !cmd.Flags().Changed("dry-run") {
				opts.DryRun = cfg.Import.DryRun
			}
			if !cmd.Flags().Changed("create-records") {
				opts.CreateRecords = cfg.Import.CreateRecords
			}
			if !cmd.Flags().Changed("publish") {
				opts.PublishUpdated = cfg.Import.PublishUpdated
			}

			backup := backupFlag
			if !cmd.Flags().Changed("backup") {
				backup = cfg.Import.Backup
			}
			if backup && !opts.DryRun {
				name := fmt.Sprintf("backup-%s.json", time.Now().Format("2006-01-02-150405"))
				opts.BackupPath = filepath.Join(cfg.BackupDir(), name)
			}

			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			runner := importer.NewRunner(client, logger)
			log, err := runner.Run(cmd.Context(), doc, opts)
			if err != nil {
				return err
			}

			summary := log.Summary()
			if store, storeErr := ctx.openStore(); storeErr == nil {
				defer store.Close()
				if _, saveErr := store.Save(cmd.Context(), summary); saveErr != nil {
					logger.Warn("persist run history failed", logging.Error(saveErr))
				}
			} else {
				logger.Warn("open run history failed", logging.Error(storeErr))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(summary, out))
			if summary.TotalErrors() > 0 {
				return fmt.Errorf("%d items failed; see run history for details", summary.TotalErrors())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Target locale override (defaults to the file's lang)")
	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Source locale (defaults to repository.source_locale)")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Log every action without writing to the repository")
	cmd.Flags().BoolVar(&createFlag, "create-records", true, "Create linked records referenced by translations")
	cmd.Flags().BoolVar(&backupFlag, "backup", true, "Write a backup export before importing")
	cmd.Flags().BoolVar(&publishFlag, "publish", false, "Publish updated records after the import")
	return cmd
}
