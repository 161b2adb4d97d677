package runlog

import (
	"sync"
	"time"
)

// Mode identifies the run a log belongs to.
type Mode string

const (
	ModeExport Mode = "export"
	ModeImport Mode = "import"
)

// Type classifies what a log entry was doing.
type Type string

const (
	TypeExport      Type = "export"
	TypeCreate      Type = "create"
	TypeUpdate      Type = "update"
	TypeUpdateAsset Type = "update asset"
	TypeOther       Type = "other"
)

// Status classifies how it went.
type Status string

const (
	StatusOK      Status = "ok"
	StatusError   Status = "error"
	StatusWarning Status = "warning"
)

// Entry is one per-item outcome captured during a run.
type Entry struct {
	Context     string `json:"context"`
	Type        Type   `json:"type"`
	Status      Status `json:"status"`
	ItemID      string `json:"itemId,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Log accumulates per-item outcomes for a single export or import run.
// Individual failures never abort the run, so the log is the only place the
// operator can see what actually happened.
type Log struct {
	mode         Mode
	sourceLocale string
	targetLocale string
	dryRun       bool
	started      time.Time

	mu      sync.Mutex
	entries []Entry
}

// New starts a log for one run.
func New(mode Mode, sourceLocale, targetLocale string, dryRun bool) *Log {
	return &Log{
		mode:         mode,
		sourceLocale: sourceLocale,
		targetLocale: targetLocale,
		dryRun:       dryRun,
		started:      time.Now().UTC(),
	}
}

// Add appends an entry.
func (l *Log) Add(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// OK records a successful item.
func (l *Log) OK(context string, typ Type, itemID string) {
	l.Add(Entry{Context: context, Type: typ, Status: StatusOK, ItemID: itemID})
}

// Error records a failed item. The run continues; the failure surfaces in
// the summary.
func (l *Log) Error(context string, typ Type, itemID string, err error) {
	entry := Entry{Context: context, Type: typ, Status: StatusError, ItemID: itemID}
	if err != nil {
		entry.Error = err.Error()
	}
	l.Add(entry)
}

// Warn records a repaired-but-suspect item, such as truncated SEO text.
func (l *Log) Warn(context, itemID, description string) {
	l.Add(Entry{Context: context, Type: TypeOther, Status: StatusWarning, ItemID: itemID, Description: description})
}

// Entries returns a copy of everything recorded so far.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Counts pairs successes with failures for one entry type.
type Counts struct {
	OK    int `json:"ok"`
	Error int `json:"error"`
}

// Summary aggregates a run for post-run inspection.
type Summary struct {
	Mode         Mode      `json:"mode"`
	SourceLocale string    `json:"sourceLocale"`
	TargetLocale string    `json:"targetLocale"`
	DryRun       bool      `json:"dryRun"`
	Started      time.Time `json:"started"`
	Export       Counts    `json:"export"`
	Create       Counts    `json:"create"`
	Update       Counts    `json:"update"`
	UpdateAsset  Counts    `json:"updateAsset"`
	Errors       []Entry   `json:"errors,omitempty"`
	Warnings     []Entry   `json:"warnings,omitempty"`
}

// Summary rolls the entries up into per-type counts plus the detailed error
// and warning lists.
func (l *Log) Summary() Summary {
	summary := Summary{
		Mode:         l.mode,
		SourceLocale: l.sourceLocale,
		TargetLocale: l.targetLocale,
		DryRun:       l.dryRun,
		Started:      l.started,
	}
	for _, entry := range l.Entries() {
		switch entry.Status {
		case StatusOK:
			if counts := summary.countsFor(entry.Type); counts != nil {
				counts.OK++
			}
		case StatusError:
			if counts := summary.countsFor(entry.Type); counts != nil {
				counts.Error++
			}
			summary.Errors = append(summary.Errors, entry)
		case StatusWarning:
			summary.Warnings = append(summary.Warnings, entry)
		}
	}
	return summary
}

func (s *Summary) countsFor(typ Type) *Counts {
	switch typ {
	case TypeExport:
		return &s.Export
	case TypeCreate:
		return &s.Create
	case TypeUpdate:
		return &s.Update
	case TypeUpdateAsset:
		return &s.UpdateAsset
	}
	return nil
}

// TotalOK sums successful items across entry types.
func (s Summary) TotalOK() int {
	return s.Export.OK + s.Create.OK + s.Update.OK + s.UpdateAsset.OK
}

// TotalErrors sums failed items across entry types.
func (s Summary) TotalErrors() int {
	return s.Export.Error + s.Create.Error + s.Update.Error + s.UpdateAsset.Error
}
