package model

// EventKind identifies a raw lifecycle transition reported by the
// usage-tracking service.
type EventKind string

const (
	KindResumed EventKind = "resumed"
	KindPaused  EventKind = "paused"
	KindStopped EventKind = "stopped"
)

// IsClose reports whether the event kind ends a foreground session.
func (k EventKind) IsClose() bool {
	return k == KindPaused || k == KindStopped
}

// Valid reports whether the kind is one of the known lifecycle transitions.
func (k EventKind) Valid() bool {
	switch k {
	case KindResumed, KindPaused, KindStopped:
		return true
	}
	return false
}

// RawEvent is a single foreground/background lifecycle event as captured
// from the device. Events are input only: the engine never creates or
// mutates them. Timestamp is Unix milliseconds on the same clock as every
// query window.
type RawEvent struct {
	PackageName string    `json:"packageName"`
	Timestamp   int64     `json:"timestamp"`
	Kind        EventKind `json:"kind"`
}

// FileEvent describes a change to an event log file, delivered by the
// directory watcher.
type FileEvent struct {
	Path      string
	Operation string
}
