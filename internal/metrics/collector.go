package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons used as the "reason" label of blockledger_records_skipped_total.
const (
	ReasonMalformed = "malformed"
	ReasonBadDate   = "bad_date"
	ReasonShort     = "short_record"
)

// Collector holds the metrics of a single batch run on a private registry,
// so that the run can be exported as a node_exporter textfile.
type Collector struct {
	registry *prometheus.Registry

	FilesSelected    prometheus.Counter
	RecordsRead      *prometheus.CounterVec
	RecordsSkipped   *prometheus.CounterVec
	EntriesExtracted prometheus.Counter
	EntriesAppended  prometheus.Counter
	RecordsExpired   prometheus.Counter
	RecordsDuplicate prometheus.Counter
	LedgerRecords    prometheus.Gauge
	LastRunSuccess   prometheus.Gauge
	LastRunTimestamp prometheus.Gauge
	RunDuration      prometheus.Gauge
}

// NewCollector creates a Collector with all metrics registered.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		FilesSelected: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockledger_files_selected_total",
			Help: "Source log files selected by name prefix and modification time",
		}),
		RecordsRead: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blockledger_records_read_total",
			Help: "Delimited records read",
		}, []string{"stage"}),
		RecordsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blockledger_records_skipped_total",
			Help: "Records skipped because they could not be parsed",
		}, []string{"stage", "reason"}),
		EntriesExtracted: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockledger_entries_extracted_total",
			Help: "Distinct blocked-source events extracted from source logs",
		}),
		EntriesAppended: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockledger_entries_appended_total",
			Help: "Entries appended to the ledger",
		}),
		RecordsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockledger_records_expired_total",
			Help: "Ledger records dropped by the retention window",
		}),
		RecordsDuplicate: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockledger_records_duplicate_total",
			Help: "Ledger records dropped as duplicates during compaction",
		}),
		LedgerRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blockledger_ledger_records",
			Help: "Records in the ledger after compaction",
		}),
		LastRunSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blockledger_last_run_success",
			Help: "1 if the last run completed, 0 otherwise",
		}),
		LastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blockledger_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
		RunDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blockledger_run_duration_seconds",
			Help: "Wall time of the last run",
		}),
	}
}

// Finish records the outcome of a run.
func (c *Collector) Finish(start, end time.Time, err error) {
	if err == nil {
		c.LastRunSuccess.Set(1)
	} else {
		c.LastRunSuccess.Set(0)
	}
	c.LastRunTimestamp.Set(float64(end.Unix()))
	c.RunDuration.Set(end.Sub(start).Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the collected metrics to path in the text exposition format.
// The file is written atomically, as node_exporter expects.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
