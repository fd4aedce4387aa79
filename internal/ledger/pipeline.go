package ledger

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/livp123/blockledger/internal/config"
	"github.com/livp123/blockledger/internal/utils/logger"
)

// Summary describes a pipeline run.
type Summary struct {
	RunID     string
	Files     []string
	Extracted int // distinct events across all selected files
	Appended  int
	Compact   CompactStats
	Duration  time.Duration
}

// Pipeline runs select, extract, append and compact, in that order. Each
// stage finishes before the next one starts.
type Pipeline struct {
	cfg    *config.Config
	comma  rune
	filter *Filter
	env    Env

	// DirFS opens the source directory. Defaults to os.DirFS.
	DirFS func(dir string) fs.FS
}

// NewPipeline validates cfg and compiles its filter.
func NewPipeline(cfg *config.Config, env Env) (*Pipeline, error) {
	comma, err := cfg.Source.Comma()
	if err != nil {
		return nil, err
	}
	filter, err := CompileFilter(cfg.Source.Filter)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:    cfg,
		comma:  comma,
		filter: filter,
		env:    env,
		DirFS:  os.DirFS,
	}, nil
}

// runEnv returns the stage environment for one run, with a logger tagged by run id.
func (p *Pipeline) runEnv(ctx context.Context, runID string) Env {
	env := p.env
	if env.Log == nil {
		env.Log = logger.Get(ctx)
	}
	env.Log = env.Log.With("run_id", runID)
	return env.withDefaults()
}

// Run ingests the log files under dir modified within daysBack days, appends
// the new events to the ledger and compacts it to the retention window.
func (p *Pipeline) Run(ctx context.Context, dir string, daysBack int) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString()}
	env := p.runEnv(ctx, summary.RunID)
	start := env.Now()

	err := p.run(env, dir, daysBack, summary)
	p.finish(env, start, summary, err)
	return summary, err
}

func (p *Pipeline) run(env Env, dir string, daysBack int, summary *Summary) error {
	fsys := p.DirFS(dir)

	files, err := NewSelector(dir, fsys, env).Select(daysBack)
	if err != nil {
		return err
	}
	summary.Files = files

	extractor := NewExtractor(dir, fsys, p.comma, p.filter, env)
	all := NewEntrySet()
	for _, name := range files {
		env.Log.Infof("Processing file: %s", filepath.Join(dir, name))
		set, err := extractor.ExtractFile(name, daysBack)
		if err != nil {
			return err
		}
		all.Merge(set)
	}
	summary.Extracted = all.Len()

	ledger := NewLedger(p.cfg.Ledger.Path, env)
	unlock, err := p.lock(ledger)
	if err != nil {
		return err
	}
	defer unlock()

	if summary.Appended, err = ledger.Append(all); err != nil {
		return err
	}
	summary.Compact, err = ledger.Compact(config.RetentionDays)
	return err
}

// Compact only compacts the ledger, without reading any source logs.
func (p *Pipeline) Compact(ctx context.Context) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString()}
	env := p.runEnv(ctx, summary.RunID)
	start := env.Now()

	err := func() error {
		ledger := NewLedger(p.cfg.Ledger.Path, env)
		unlock, err := p.lock(ledger)
		if err != nil {
			return err
		}
		defer unlock()

		summary.Compact, err = ledger.Compact(config.RetentionDays)
		return err
	}()

	p.finish(env, start, summary, err)
	return summary, err
}

func (p *Pipeline) lock(ledger *Ledger) (func(), error) {
	if !p.cfg.Ledger.Lock {
		return func() {}, nil
	}
	lk, err := ledger.Lock()
	if err != nil {
		return nil, err
	}
	return func() {
		if err := lk.Unlock(); err != nil {
			ledger.env.Log.Warnf("Failed to release ledger lock: %v", err)
		}
	}, nil
}

// finish records metrics and logs the run summary. Metrics export failures
// are logged and do not fail the run.
func (p *Pipeline) finish(env Env, start time.Time, summary *Summary, err error) {
	end := env.Now()
	summary.Duration = end.Sub(start)
	env.Metrics.Finish(start, end, err)

	if path := p.cfg.Metrics.Textfile; path != "" {
		if werr := env.Metrics.WriteTextfile(path); werr != nil {
			env.Log.Warnf("Failed to write metrics textfile %s: %v", path, werr)
		}
	}

	if err != nil {
		env.Log.Errorw("Run failed", "error", err, "files", len(summary.Files))
		return
	}
	c := summary.Compact
	env.Log.Infow("Run finished",
		"files", len(summary.Files),
		"extracted", summary.Extracted,
		"appended", summary.Appended,
		"read", c.Read,
		"skipped", c.Skipped,
		"expired", c.Expired,
		"duplicates", c.Duplicates,
		"kept", c.Kept,
		"duration", summary.Duration,
	)
}
