package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/livp123/blockledger/internal/config"
	"github.com/livp123/blockledger/internal/metrics"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixedNow is the clock used throughout the package tests.
var fixedNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func testEnv(now time.Time) Env {
	return Env{
		Log:      zap.NewNop().Sugar(),
		Metrics:  metrics.NewCollector(),
		Now:      func() time.Time { return now },
		Location: time.UTC,
	}
}

// sourceRecord builds one 13-column firewall log record with the interesting
// fields at their fixed positions and filler everywhere else.
func sourceRecord(ts, blocked, src, dst, desc, prio string) []string {
	cols := make([]string, 13)
	for i := range cols {
		cols[i] = fmt.Sprintf("col%d", i)
	}
	cols[config.ColTimestamp] = ts
	cols[config.ColBlocked] = blocked
	cols[config.ColSourceIP] = src
	cols[config.ColDestinationIP] = dst
	cols[config.ColDescription] = desc
	cols[config.ColPriority] = prio
	return cols
}

// csvText renders records with encoding/csv using the given delimiter.
func csvText(t testing.TB, comma rune, records ...[]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = comma
	require.NoError(t, w.WriteAll(records))
	return buf.String()
}

func event(ts, src, dst, desc, prio string) LogEvent {
	parsed, err := ParseTimestamp(ts)
	if err != nil {
		panic(err)
	}
	return LogEvent{
		Timestamp:     parsed,
		RawTimestamp:  ts,
		SourceIP:      src,
		DestinationIP: dst,
		Description:   desc,
		Priority:      prio,
	}
}

func writeFile(t testing.TB, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func keys(events []LogEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Key()
	}
	return out
}
