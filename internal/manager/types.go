package manager

import "time"

// State represents lifecycle state of the manager.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State    State
	Err      string
	LoadedAt time.Time
}

// Image is the dashboard background, already base64-encoded for a data: URI.
type Image struct {
	MIME   string
	Base64 string
}

// DataURI returns the image as a data: URI, or "" when unset.
func (i *Image) DataURI() string {
	if i == nil || i.Base64 == "" {
		return ""
	}
	return "data:" + i.MIME + ";base64," + i.Base64
}
