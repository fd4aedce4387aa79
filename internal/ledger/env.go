package ledger

import (
	"time"

	"github.com/livp123/blockledger/internal/metrics"
	"github.com/livp123/blockledger/internal/utils/logger"
	"go.uber.org/zap"
)

// Env carries the collaborators shared by the pipeline stages.
type Env struct {
	Log     *zap.SugaredLogger
	Metrics *metrics.Collector
	// Now is sampled once per operation; every comparison in that operation uses the same instant.
	Now func() time.Time
	// Location is the zone whose wall clock naive timestamps are read in.
	Location *time.Location
}

func (e Env) withDefaults() Env {
	if e.Log == nil {
		e.Log = logger.Get(nil)
	}
	if e.Metrics == nil {
		e.Metrics = metrics.NewCollector()
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Location == nil {
		e.Location = time.Local
	}
	return e
}
