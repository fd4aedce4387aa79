package ledger

import (
	"strings"
	"time"

	"github.com/livp123/blockledger/internal/config"
)

// LogEvent is one blocked-source event as stored in the ledger.
type LogEvent struct {
	Timestamp     time.Time // naive, see ParseTimestamp
	RawTimestamp  string    // timestamp text exactly as read
	SourceIP      string
	DestinationIP string
	Description   string
	Priority      string
}

// ParseTimestamp parses the fixed "YYYY/MM/DD HH:MM:SS" layout.
// The result carries no zone: it is expressed in UTC and must only be
// compared with other naive times.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(config.TimestampLayout, s)
}

// naive returns the wall clock reading of t in loc as a zone-less time,
// comparable with values returned by ParseTimestamp.
func naive(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Fields returns the ledger columns in order:
// timestamp, source IP, destination IP, description, priority.
func (e LogEvent) Fields() []string {
	return []string{e.RawTimestamp, e.SourceIP, e.DestinationIP, e.Description, e.Priority}
}

// Key is the canonical record string, the fields joined with commas and no
// escaping. Two events are the same iff their keys are equal.
func (e LogEvent) Key() string {
	return strings.Join(e.Fields(), ",")
}

// eventFromLedger rebuilds an event from a ledger record. Records wider than
// five columns come from descriptions that were written without quoting; the
// surplus middle columns are folded back into the description.
func eventFromLedger(fields []string) (LogEvent, error) {
	raw := strings.TrimSpace(fields[0])
	ts, err := ParseTimestamp(raw)
	if err != nil {
		return LogEvent{}, err
	}
	last := len(fields) - 1
	return LogEvent{
		Timestamp:     ts,
		RawTimestamp:  raw,
		SourceIP:      strings.TrimSpace(fields[1]),
		DestinationIP: strings.TrimSpace(fields[2]),
		Description:   strings.TrimSpace(strings.Join(fields[3:last], ",")),
		Priority:      strings.TrimSpace(fields[last]),
	}, nil
}
