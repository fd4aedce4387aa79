package ledger

import (
	"os"
	"path/filepath"

	apperrors "github.com/livp123/blockledger/pkg/errors"
)

// Append writes every event of set to the end of the ledger, in set order,
// creating the file if needed. It returns the number of records written.
// A failure part way through leaves the records already written in place.
func (l *Ledger) Append(set *EntrySet) (int, error) {
	f, err := os.OpenFile(filepath.Clean(l.path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, ledgerPerm) // #nosec G304 // ledger path comes from configuration
	if err != nil {
		return 0, apperrors.NewLedgerWriteError(l.path, err)
	}

	events := set.Events()
	if err := writeEvents(f, events); err != nil {
		f.Close()
		return 0, apperrors.NewLedgerWriteError(l.path, err)
	}
	if err := f.Close(); err != nil {
		return 0, apperrors.NewLedgerWriteError(l.path, err)
	}

	l.env.Metrics.EntriesAppended.Add(float64(len(events)))
	return len(events), nil
}
