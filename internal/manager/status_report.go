package manager

import (
	"context"
	"time"

	"ollamaapi/pkg/types"
)

// Health reports whether the daemon answers a list request. The error is
// the raw daemon or transport error; no answer within the probe timeout is
// an error too.
func (m *Manager) Health(ctx context.Context) error {
	if m.daemon != nil {
		return m.daemon.Check(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()
	_, err := m.client.List(ctx)
	return err
}

// Status builds a detailed status response for /status.
func (m *Manager) Status(ctx context.Context) types.StatusResponse {
	resp := types.StatusResponse{
		Service:       ServiceName,
		Version:       ServiceVersion,
		DefaultModel:  m.defaultModel,
		UptimeSeconds: int64(time.Since(m.startTime) / time.Second),
	}
	if m.daemon != nil {
		resp.Daemon = m.daemon.Status(ctx)
	}
	return resp
}
