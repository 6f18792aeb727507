package manager

import (
	"context"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"ollamaapi/pkg/types"
)

// ListModels returns the models installed in the daemon. Nothing is cached.
func (m *Manager) ListModels(ctx context.Context) ([]types.ModelInfo, error) {
	start := time.Now()
	resp, err := m.client.List(ctx)
	observe("list", start, err)
	if err != nil {
		return nil, m.upstream("list", "", err)
	}
	out := make([]types.ModelInfo, 0, len(resp.Models))
	for _, mdl := range resp.Models {
		name := mdl.Model
		if name == "" {
			name = mdl.Name
		}
		out = append(out, types.ModelInfo{Name: name})
	}
	return out, nil
}

// Pull asks the daemon to download a model and blocks until it is done.
func (m *Manager) Pull(ctx context.Context, name string) error {
	if name == "" {
		return ErrValidation("Model name is required")
	}
	m.log.Info().Str("model", name).Msg("Pulling model")
	stream := false
	start := time.Now()
	err := m.client.Pull(ctx, &api.PullRequest{Model: name, Stream: &stream}, func(p api.ProgressResponse) error {
		m.log.Debug().Str("model", name).Str("status", p.Status).Int64("completed", p.Completed).Int64("total", p.Total).Msg("pull progress")
		return nil
	})
	observe("pull", start, err)
	if err != nil {
		return m.upstream("pull", name, err)
	}
	m.log.Info().Str("model", name).Msg("Model pulled successfully")
	return nil
}

// PullModel is Pull reduced to success or failure; errors are logged.
func (m *Manager) PullModel(ctx context.Context, name string) bool {
	return m.Pull(ctx, name) == nil
}

// EnsureModel pulls name unless the daemon already has it.
func (m *Manager) EnsureModel(ctx context.Context, name string) bool {
	models, err := m.ListModels(ctx)
	if err == nil && hasModel(models, name) {
		m.log.Info().Str("model", name).Msg("model already present")
		return true
	}
	return m.PullModel(ctx, name)
}

// hasModel matches names the way the daemon does: a missing tag means latest.
func hasModel(models []types.ModelInfo, name string) bool {
	want := withTag(name)
	for _, mdl := range models {
		if withTag(mdl.Name) == want {
			return true
		}
	}
	return false
}

func withTag(name string) string {
	if i := strings.LastIndex(name, ":"); i >= 0 && !strings.Contains(name[i:], "/") {
		return name
	}
	return name + ":latest"
}
