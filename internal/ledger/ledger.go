package ledger

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/livp123/blockledger/internal/config"
	"github.com/livp123/blockledger/internal/metrics"
	"github.com/livp123/blockledger/internal/utils/fileutil"
	apperrors "github.com/livp123/blockledger/pkg/errors"
)

const (
	stageCompact = "compact"

	ledgerColumns = 5
	ledgerPerm    = 0644
)

// Ledger is the CSV file of blocked-source events kept across runs.
// Columns: timestamp, source IP, destination IP, description, priority. No header.
type Ledger struct {
	path string
	env  Env
}

// NewLedger returns a Ledger stored at path.
func NewLedger(path string, env Env) *Ledger {
	return &Ledger{path: path, env: env.withDefaults()}
}

func (l *Ledger) Path() string {
	return l.path
}

// Lock takes the ledger's exclusive advisory lock. Another run holding it
// makes Lock fail immediately with ErrLedgerLocked.
func (l *Ledger) Lock() (*fileutil.FileLock, error) {
	lockPath := l.path + config.LockSuffix
	lk, err := fileutil.TryLock(lockPath)
	if err != nil {
		return nil, apperrors.NewLockError(lockPath, err)
	}
	return lk, nil
}

// Read parses every ledger record. Records that are too short or whose
// timestamp does not parse are logged and skipped.
func (l *Ledger) Read() ([]LogEvent, int, error) {
	f, err := os.Open(filepath.Clean(l.path)) // #nosec G304 // ledger path comes from configuration
	if err != nil {
		return nil, 0, apperrors.NewLedgerReadError(l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	m := l.env.Metrics
	var events []LogEvent
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, skipped, apperrors.NewLedgerReadError(l.path, err)
			}
			l.env.Log.Warnf("Failed to read ledger record: %v", err)
			m.RecordsSkipped.WithLabelValues(stageCompact, metrics.ReasonMalformed).Inc()
			skipped++
			continue
		}
		m.RecordsRead.WithLabelValues(stageCompact).Inc()

		if len(record) < ledgerColumns {
			l.env.Log.Warnf("Skipping short ledger record: %q", strings.Join(record, ","))
			m.RecordsSkipped.WithLabelValues(stageCompact, metrics.ReasonShort).Inc()
			skipped++
			continue
		}
		ev, err := eventFromLedger(record)
		if err != nil {
			l.env.Log.Warnf("Skipping ledger record with invalid date: %s", strings.TrimSpace(record[0]))
			m.RecordsSkipped.WithLabelValues(stageCompact, metrics.ReasonBadDate).Inc()
			skipped++
			continue
		}
		events = append(events, ev)
	}
	return events, skipped, nil
}

func writeEvents(w io.Writer, events []LogEvent) error {
	cw := csv.NewWriter(w)
	for _, ev := range events {
		if err := cw.Write(ev.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
