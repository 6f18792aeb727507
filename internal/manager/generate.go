package manager

import (
	"context"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"ollamaapi/pkg/types"
)

// Generate forwards a single-prompt completion to the daemon and maps the
// result back. Metrics absent from the daemon reply are reported as zero.
func (m *Manager) Generate(ctx context.Context, req types.GenerateRequest) (types.GenerateResponse, error) {
	if req.Prompt == "" {
		return types.GenerateResponse{}, ErrValidation("Prompt is required")
	}
	model := m.modelOrDefault(req.Model)
	stream := false
	greq := &api.GenerateRequest{
		Model:  model,
		Prompt: req.Prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": floatOr(req.Temperature, DefaultTemperature),
			"top_k":       intOr(req.TopK, DefaultTopK),
			"top_p":       floatOr(req.TopP, DefaultTopP),
			"num_predict": intOr(req.NumPredict, DefaultNumPredict),
		},
	}

	var (
		text  strings.Builder
		final api.GenerateResponse
	)
	start := time.Now()
	err := m.client.Generate(ctx, greq, func(r api.GenerateResponse) error {
		text.WriteString(r.Response)
		final = r
		return nil
	})
	observe("generate", start, err)
	if err != nil {
		return types.GenerateResponse{}, m.upstream("generate", model, err)
	}
	m.log.Debug().Str("model", model).Dur("total", final.TotalDuration).Int("eval_count", final.EvalCount).Msg("generate done")

	return types.GenerateResponse{
		Model:              model,
		Prompt:             req.Prompt,
		Response:           text.String(),
		Done:               final.Done,
		TotalDuration:      int64(final.TotalDuration),
		LoadDuration:       int64(final.LoadDuration),
		PromptEvalCount:    final.PromptEvalCount,
		PromptEvalDuration: int64(final.PromptEvalDuration),
		EvalCount:          final.EvalCount,
		EvalDuration:       int64(final.EvalDuration),
	}, nil
}
