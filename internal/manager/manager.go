package manager

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"houseprice/internal/dataset"
	"houseprice/internal/estimator"
)

// timeNow is swapped in tests.
var timeNow = time.Now

type Manager struct {
	cfg ManagerConfig
	log zerolog.Logger

	mu         sync.RWMutex
	state      State
	err        string
	loadedAt   time.Time
	est        *estimator.Estimator
	data       *dataset.Summary
	background *Image

	startTime      time.Time
	estimatesTotal atomic.Uint64
	unmatchedTotal atomic.Uint64
}

// Ready reports whether artifacts are loaded and estimates can be served.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady && m.est != nil
}

// Snapshot returns a read-only view of the manager state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Err: m.err, LoadedAt: m.loadedAt}
}

// Background returns the dashboard background image, or nil.
func (m *Manager) Background() *Image {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.background
}

// BackgroundURI returns the background as a data: URI, or "".
func (m *Manager) BackgroundURI() string { return m.Background().DataURI() }

// Unit is the display unit for prices.
func (m *Manager) Unit() string { return m.cfg.UI.UnitLabel }

func (m *Manager) boundEstimator() (*estimator.Estimator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateReady || m.est == nil {
		return nil, notReadyError{state: m.state}
	}
	return m.est, nil
}
