package ledger

import (
	"io/fs"
	"strings"
	"time"

	"github.com/livp123/blockledger/internal/config"
	apperrors "github.com/livp123/blockledger/pkg/errors"
)

// Selector picks rotated firewall log files from a directory.
type Selector struct {
	dir    string
	fsys   fs.FS
	prefix string
	env    Env
}

// NewSelector creates a Selector over the directory exposed by fsys.
// dir names that directory in errors and logs.
func NewSelector(dir string, fsys fs.FS, env Env) *Selector {
	return &Selector{
		dir:    dir,
		fsys:   fsys,
		prefix: config.SourceFilePrefix,
		env:    env.withDefaults(),
	}
}

// Select returns the names of regular entries starting with the source prefix
// whose modification time is strictly after now minus daysBack days, in
// directory order. Entries whose metadata cannot be read are left out.
func (s *Selector) Select(daysBack int) ([]string, error) {
	cutoff := s.env.Now().Add(-time.Duration(daysBack) * config.Day)

	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, apperrors.NewDirectoryError(s.dir, err)
	}

	var selected []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), s.prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.env.Log.Debugf("Ignoring %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().After(cutoff) {
			selected = append(selected, entry.Name())
		}
	}

	s.env.Metrics.FilesSelected.Add(float64(len(selected)))
	return selected, nil
}
