package manager

import "github.com/rs/zerolog"

// Event represents a manager lifecycle event.
// Minimal and stable: name + artifact location and optional fields.
type Event struct {
	Name     string
	Artifact string
	Fields   map[string]any
}

// Event names.
const (
	EventLoadStart      = "load_start"
	EventArtifactLoaded = "artifact_loaded"
	EventReady          = "ready"
	EventLoadFailed     = "load_failed"
)

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// LogPublisher writes events to a zerolog logger.
type LogPublisher struct {
	Logger zerolog.Logger
}

func (p LogPublisher) Publish(e Event) {
	ev := p.Logger.Info()
	if e.Name == EventLoadFailed {
		ev = p.Logger.Error()
	}
	if e.Artifact != "" {
		ev = ev.Str("artifact", e.Artifact)
	}
	ev.Fields(e.Fields).Msg(e.Name)
}
