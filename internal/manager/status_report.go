package manager

import (
	"houseprice/pkg/types"
)

// Status builds the response for /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := timeNow()
	resp := types.StatusResponse{
		State:            string(m.state),
		Error:            m.err,
		ManifestSource:   m.cfg.Manifest,
		ModelSource:      m.cfg.Model,
		DatasetSource:    m.cfg.Dataset,
		BackgroundSource: m.cfg.Background,
		UptimeSeconds:    int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix:   now.Unix(),
		EstimatesTotal:   m.estimatesTotal.Load(),
		UnmatchedTotal:   m.unmatchedTotal.Load(),
	}
	if m.est != nil {
		resp.Features = m.est.Manifest().Len()
		resp.Locations = len(m.est.Manifest().Locations())
	}
	if m.data != nil {
		resp.DatasetRows = m.data.Rows
	}
	if !m.loadedAt.IsZero() {
		resp.LoadedAtUnix = m.loadedAt.Unix()
	}
	return resp
}
