package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"locflow/internal/runlog"
)

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

// renderSummary formats a run summary for the terminal: a headline, the
// per-type counts table, and any error or warning rows.
func renderSummary(summary runlog.Summary, writer io.Writer) string {
	var b strings.Builder

	headline := fmt.Sprintf("%s run", summary.Mode)
	if summary.DryRun {
		headline += " (dry run, nothing written)"
	}
	if shouldColorize(writer) {
		headline = ansiBlue + headline + ansiReset
	}
	b.WriteString(headline)
	b.WriteByte('\n')

	headers := []string{"Action", "OK", "Failed"}
	var rows [][]string
	appendCounts := func(label string, counts runlog.Counts) {
		if counts.OK == 0 && counts.Error == 0 {
			return
		}
		rows = append(rows, []string{label, strconv.Itoa(counts.OK), strconv.Itoa(counts.Error)})
	}
	appendCounts("Exported", summary.Export)
	appendCounts("Created", summary.Create)
	appendCounts("Updated", summary.Update)
	appendCounts("Updated assets", summary.UpdateAsset)
	if len(rows) == 0 {
		rows = append(rows, []string{"Nothing to do", "0", "0"})
	}
	b.WriteString(renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight}))

	for _, entry := range summary.Warnings {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "warning: %s %s", entry.ItemID, entry.Description)
	}
	for _, entry := range summary.Errors {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "error: %s %s: %s", entry.Type, entry.ItemID, entry.Error)
	}
	return b.String()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
