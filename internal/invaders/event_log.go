package invaders

import (
	"fmt"
	"strings"
)

// Event categories.
const (
	CatShip      = "ship"
	CatAlien     = "alien"
	CatBolt      = "bolt"
	CatFormation = "formation"
	CatWave      = "wave"
	CatState     = "state"
)

// Event is one recorded gameplay event.
type Event struct {
	Tick     int
	Category string
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric payload
}

// String formats the event as a fixed-width log line.
//
//	[T=0042] alien     destroyed        r0c3 (variant 0)
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-9s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog collects structured events from a wave. It is unbounded and
// machine-readable; reports and tests query it after the fact.
type EventLog struct {
	entries []Event
	verbose bool
}

// NewEventLog creates an EventLog. In verbose mode routine per-step events
// (every formation step) are recorded as well.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new event.
func (l *EventLog) Add(tick int, category, key, value string, numVal float64) {
	l.entries = append(l.entries, Event{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an event only when verbose mode is on.
func (l *EventLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded events.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Filter returns events matching category and/or key. An empty string
// matches anything.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many events match category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// FirstTick returns the tick of the first matching event, or -1.
func (l *EventLog) FirstTick(category, key string) int {
	for _, e := range l.entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// LastOf returns the most recent event matching category and key.
func (l *EventLog) LastOf(category, key string) (Event, bool) {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return Event{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether an event matches category, key and value substring.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the whole log, one event per line.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
