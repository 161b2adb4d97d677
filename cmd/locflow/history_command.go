package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"locflow/internal/runlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past export and import runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			headers := []string{"ID", "Mode", "Locales", "Started", "Exported", "Created", "Updated", "Assets", "Errors", "Warnings"}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				localePair := run.SourceLocale
				if run.TargetLocale != "" {
					localePair += " → " + run.TargetLocale
				}
				mode := string(run.Mode)
				if run.DryRun {
					mode += " (dry)"
				}
				rows = append(rows, []string{
					run.ID,
					mode,
					localePair,
					run.StartedAt.Local().Format(time.DateTime),
					strconv.Itoa(run.Export.OK),
					countCell(run.Create),
					countCell(run.Update),
					countCell(run.UpdateAsset),
					strconv.Itoa(run.Create.Error + run.Update.Error + run.UpdateAsset.Error),
					strconv.Itoa(run.WarningCount),
				})
			}
			aligns := []columnAlignment{
				alignLeft, alignLeft, alignLeft, alignLeft,
				alignRight, alignRight, alignRight, alignRight, alignRight, alignRight,
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum runs to list (0 for all)")
	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func countCell(counts runlog.Counts) string {
	if counts.Error == 0 {
		return strconv.Itoa(counts.OK)
	}
	return fmt.Sprintf("%d (+%d failed)", counts.OK, counts.Error)
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run's error and warning details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("run %s not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (%s %s", run.ID, run.Mode, run.SourceLocale)
			if run.TargetLocale != "" {
				fmt.Fprintf(out, " → %s", run.TargetLocale)
			}
			fmt.Fprintf(out, ", started %s)\n", run.StartedAt.Local().Format(time.DateTime))

			if len(run.Details) == 0 {
				fmt.Fprintln(out, "No errors or warnings")
				return nil
			}
			headers := []string{"Status", "Type", "Item", "Detail"}
			rows := make([][]string, 0, len(run.Details))
			for _, entry := range run.Details {
				detail := entry.Description
				if entry.Error != "" {
					detail = entry.Error
				}
				rows = append(rows, []string{string(entry.Status), string(entry.Type), entry.ItemID, detail})
			}
			fmt.Fprintln(out, renderTable(headers, rows, nil))
			return nil
		},
	}
}
