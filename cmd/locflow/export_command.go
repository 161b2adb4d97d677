package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"locflow/internal/export"
	"locflow/internal/locales"
	"locflow/internal/logging"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag    string
		localeFlag    string
		contentFlag   bool
		assetsFlag    bool
		publishedFlag bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export translatable content to a portable file",
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

			sourceLocale := localeFlag
			if sourceLocale == "" {
				sourceLocale = cfg.Repository.SourceLocale
			}
			sourceLocale = locales.Normalize(sourceLocale)

			outputPath := outputFlag
			if outputPath == "" {
				name := fmt.Sprintf("export-%s-%s.json", sourceLocale, time.Now().Format("2006-01-02-150405"))
				outputPath = filepath.Join(cfg.Paths.ExportDir, name)
			}

			opts := export.Options{
				SourceLocale:  sourceLocale,
				Content:       contentFlag,
				Assets:        assetsFlag,
				OnlyPublished: publishedFlag,
				OutputPath:    outputPath,
			}
			if !cmd.Flags().Changed("content") {
				opts.Content = cfg.Export.Content
			}
			if !cmd.Flags().Changed("assets") {
				opts.Assets = cfg.Export.Assets
			}
			if !cmd.Flags().Changed("only-published") {
				opts.OnlyPublished = cfg.Export.OnlyPublished
			}

			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			runner := export.NewRunner(client, logger)
			doc, log, err := runner.Run(cmd.Context(), opts)
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
			fmt.Fprintf(out, "Exported %d records (%s) to %s\n",
				len(doc.Fields), locales.DisplayName(sourceLocale), outputPath)
			fmt.Fprintln(out, renderSummary(summary, out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", "Source locale to export (defaults to repository.source_locale)")
	cmd.Flags().BoolVar(&contentFlag, "content", true, "Include content records")
	cmd.Flags().BoolVar(&assetsFlag, "assets", true, "Include asset metadata")
	cmd.Flags().BoolVar(&publishedFlag, "only-published", false, "Export only published record versions")
	return cmd
}
