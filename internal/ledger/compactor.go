package ledger

import (
	"io"
	"slices"
	"time"

	"github.com/livp123/blockledger/internal/config"
	"github.com/livp123/blockledger/internal/utils/fileutil"
	apperrors "github.com/livp123/blockledger/pkg/errors"
)

// CompactStats describes one compaction pass.
type CompactStats struct {
	Read       int // records parsed
	Skipped    int // records that could not be parsed
	Expired    int // records at or before the retention cutoff
	Duplicates int
	Kept       int
}

// Compact rewrites the ledger so that it holds only distinct records dated
// strictly after now minus retentionDays days, newest first. Records with equal
// timestamps keep the order in which they were first seen.
//
// The new content is written to a temporary file and renamed over the ledger,
// so an interrupted compaction leaves the previous ledger intact.
func (l *Ledger) Compact(retentionDays int) (CompactStats, error) {
	var stats CompactStats

	cutoff := naive(l.env.Now(), l.env.Location).Add(-time.Duration(retentionDays) * config.Day)

	events, skipped, err := l.Read()
	stats.Skipped = skipped
	if err != nil {
		return stats, err
	}
	stats.Read = len(events)

	kept := NewEntrySet()
	for _, ev := range events {
		if !ev.Timestamp.After(cutoff) {
			stats.Expired++
			continue
		}
		if !kept.Add(ev) {
			stats.Duplicates++
		}
	}

	sorted := slices.Clone(kept.Events())
	slices.SortStableFunc(sorted, func(a, b LogEvent) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	stats.Kept = len(sorted)

	perm := fileutil.FileMode(l.path, ledgerPerm)
	err = fileutil.AtomicWrite(l.path, perm, func(w io.Writer) error {
		return writeEvents(w, sorted)
	})
	if err != nil {
		return stats, apperrors.NewLedgerWriteError(l.path, err)
	}

	m := l.env.Metrics
	m.RecordsExpired.Add(float64(stats.Expired))
	m.RecordsDuplicate.Add(float64(stats.Duplicates))
	m.LedgerRecords.Set(float64(stats.Kept))
	return stats, nil
}
