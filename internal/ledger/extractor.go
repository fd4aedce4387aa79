package ledger

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/livp123/blockledger/internal/config"
	"github.com/livp123/blockledger/internal/metrics"
	apperrors "github.com/livp123/blockledger/pkg/errors"
)

const stageExtract = "extract"

// Extractor reads blocked-source events out of firewall log files.
type Extractor struct {
	dir    string
	fsys   fs.FS
	comma  rune
	filter *Filter
	env    Env
}

// NewExtractor creates an Extractor reading files from fsys. comma is the
// field delimiter; filter may be nil.
func NewExtractor(dir string, fsys fs.FS, comma rune, filter *Filter, env Env) *Extractor {
	if comma == 0 {
		comma = ','
	}
	return &Extractor{
		dir:    dir,
		fsys:   fsys,
		comma:  comma,
		filter: filter,
		env:    env.withDefaults(),
	}
}

// ExtractFile parses name as headerless delimited records and returns the
// distinct events that are blocked, dated strictly after now minus daysBack
// days, and accepted by the filter. Records that cannot be parsed are logged
// and skipped; only failing to open or read the file is an error.
func (e *Extractor) ExtractFile(name string, daysBack int) (*EntrySet, error) {
	display := filepath.Join(e.dir, name)

	f, err := e.fsys.Open(name)
	if err != nil {
		return nil, apperrors.NewSourceError(display, err)
	}
	defer f.Close()

	cutoff := naive(e.env.Now(), e.env.Location).Add(-time.Duration(daysBack) * config.Day)

	r := csv.NewReader(f)
	r.Comma = e.comma
	r.FieldsPerRecord = -1
	// A quote inside an unquoted field is kept as a literal character.
	r.LazyQuotes = true

	m := e.env.Metrics
	set := NewEntrySet()
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, apperrors.NewSourceError(display, err)
			}
			e.env.Log.Warnf("Failed to read record: %v", err)
			m.RecordsSkipped.WithLabelValues(stageExtract, metrics.ReasonMalformed).Inc()
			continue
		}
		m.RecordsRead.WithLabelValues(stageExtract).Inc()

		ev, ok := e.parseRecord(record, cutoff)
		if ok {
			set.Add(ev)
		}
	}

	m.EntriesExtracted.Add(float64(set.Len()))
	return set, nil
}

// parseRecord applies the inclusion rules to one record.
func (e *Extractor) parseRecord(record []string, cutoff time.Time) (LogEvent, bool) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	raw := field(config.ColTimestamp)
	ts, err := ParseTimestamp(raw)
	if err != nil {
		e.env.Log.Warnf("Skipping record with invalid date: %s", raw)
		e.env.Metrics.RecordsSkipped.WithLabelValues(stageExtract, metrics.ReasonBadDate).Inc()
		return LogEvent{}, false
	}
	if !ts.After(cutoff) || field(config.ColBlocked) != config.BlockedFlag {
		return LogEvent{}, false
	}

	ev := LogEvent{
		Timestamp:     ts,
		RawTimestamp:  raw,
		SourceIP:      field(config.ColSourceIP),
		DestinationIP: field(config.ColDestinationIP),
		Description:   CleanDescription(field(config.ColDescription)),
		Priority:      field(config.ColPriority),
	}

	matched, err := e.filter.Match(ev)
	if err != nil {
		e.env.Log.Warnf("Filter failed for record at %s: %v", raw, err)
		return LogEvent{}, false
	}
	return ev, matched
}
