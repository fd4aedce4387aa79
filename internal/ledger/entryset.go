package ledger

// EntrySet is an insertion-ordered set of events keyed by LogEvent.Key.
// The zero value is not usable; use NewEntrySet.
type EntrySet struct {
	index  map[string]struct{}
	events []LogEvent
}

func NewEntrySet() *EntrySet {
	return &EntrySet{index: make(map[string]struct{})}
}

// Add inserts ev unless an event with the same key is present.
// It reports whether ev was added.
func (s *EntrySet) Add(ev LogEvent) bool {
	key := ev.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.events = append(s.events, ev)
	return true
}

// Merge adds every event of other, in other's order, and returns how many were new.
func (s *EntrySet) Merge(other *EntrySet) int {
	added := 0
	for _, ev := range other.events {
		if s.Add(ev) {
			added++
		}
	}
	return added
}

func (s *EntrySet) Contains(key string) bool {
	_, ok := s.index[key]
	return ok
}

func (s *EntrySet) Len() int {
	return len(s.events)
}

// Events returns the events in insertion order. The slice must not be modified.
func (s *EntrySet) Events() []LogEvent {
	return s.events
}
