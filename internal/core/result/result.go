// Package result holds the append-only pass/fail/warn log every
// validation layer writes into. Entries are never removed or rewritten
// once appended, so a run's report is deterministic for a given tree.
package result

import "github.com/google/uuid"

// Status classifies a single check outcome.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusWarn Status = "WARN"
)

// Entry is one recorded check outcome. Detail is optional diagnostic
// text surfaced in the failure/warning blocks of the report.
type Entry struct {
	Status Status
	Label  string
	Detail string
}

// Log accumulates entries across all layers of a run. It is not safe
// for concurrent writers; the pipeline is single-threaded and a
// parallel pipeline would funnel writes through one collector.
type Log struct {
	runID    string
	entries  []Entry
	sections []section
}

type section struct {
	title string
	start int
}

// New creates an empty log stamped with a fresh run ID.
func New() *Log {
	return &Log{runID: uuid.NewString()}
}

// RunID identifies this validation run in report output.
func (l *Log) RunID() string {
	return l.runID
}

// Section opens a named report section; subsequent entries belong to it
// until the next Section call.
func (l *Log) Section(title string) {
	l.sections = append(l.sections, section{title: title, start: len(l.entries)})
}

// Pass records a successful check.
func (l *Log) Pass(label string) {
	l.entries = append(l.entries, Entry{Status: StatusPass, Label: label})
}

// Fail records a failed check with optional diagnostic detail.
func (l *Log) Fail(label, detail string) {
	l.entries = append(l.entries, Entry{Status: StatusFail, Label: label, Detail: detail})
}

// Warn records an advisory finding with optional diagnostic detail.
// Warnings never affect the run's exit status.
func (l *Log) Warn(label, detail string) {
	l.entries = append(l.entries, Entry{Status: StatusWarn, Label: label, Detail: detail})
}

// Entries returns a copy of all entries in append order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// SectionView groups a section title with the entries recorded under it.
type SectionView struct {
	Title   string
	Entries []Entry
}

// Sections returns the log grouped by section, in append order. Entries
// recorded before the first Section call are grouped under an untitled
// leading section.
func (l *Log) Sections() []SectionView {
	var views []SectionView
	if len(l.sections) == 0 {
		if len(l.entries) == 0 {
			return nil
		}
		return []SectionView{{Entries: l.Entries()}}
	}
	if l.sections[0].start > 0 {
		views = append(views, SectionView{Entries: append([]Entry(nil), l.entries[:l.sections[0].start]...)})
	}
	for i, s := range l.sections {
		end := len(l.entries)
		if i+1 < len(l.sections) {
			end = l.sections[i+1].start
		}
		views = append(views, SectionView{
			Title:   s.title,
			Entries: append([]Entry(nil), l.entries[s.start:end]...),
		})
	}
	return views
}

func (l *Log) count(s Status) int {
	n := 0
	for _, e := range l.entries {
		if e.Status == s {
			n++
		}
	}
	return n
}

// Passed returns the number of PASS entries.
func (l *Log) Passed() int { return l.count(StatusPass) }

// Failed returns the number of FAIL entries.
func (l *Log) Failed() int { return l.count(StatusFail) }

// Warned returns the number of WARN entries.
func (l *Log) Warned() int { return l.count(StatusWarn) }

// Failures returns the FAIL entries that carry diagnostic detail.
func (l *Log) Failures() []Entry {
	return l.detailed(StatusFail)
}

// Warnings returns the WARN entries that carry diagnostic detail.
func (l *Log) Warnings() []Entry {
	return l.detailed(StatusWarn)
}

func (l *Log) detailed(s Status) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Status == s && e.Detail != "" {
			out = append(out, e)
		}
	}
	return out
}

// OK reports whether the run produced zero failures. Warnings do not
// count against it.
func (l *Log) OK() bool {
	return l.Failed() == 0
}
