package manager

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"ollamaapi/pkg/types"
)

// Chat forwards a conversation to the daemon and returns the assistant's
// reply alongside the original messages.
func (m *Manager) Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return types.ChatResponse{}, ErrValidation("Messages are required")
	}
	model := m.modelOrDefault(req.Model)
	msgs, err := toAPIMessages(req.Messages)
	if err != nil {
		return types.ChatResponse{}, err
	}
	stream := false
	creq := &api.ChatRequest{
		Model:    model,
		Messages: msgs,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": floatOr(req.Temperature, DefaultTemperature),
			"num_predict": intOr(req.NumPredict, DefaultNumPredict),
		},
	}

	var (
		text  strings.Builder
		final api.ChatResponse
	)
	start := time.Now()
	err = m.client.Chat(ctx, creq, func(r api.ChatResponse) error {
		text.WriteString(r.Message.Content)
		final = r
		return nil
	})
	observe("chat", start, err)
	if err != nil {
		return types.ChatResponse{}, m.upstream("chat", model, err)
	}

	return types.ChatResponse{
		Model:         model,
		Messages:      req.Messages,
		Response:      text.String(),
		TotalDuration: int64(final.TotalDuration),
	}, nil
}

// toAPIMessages converts request messages, decoding their base64 images.
func toAPIMessages(in []types.Message) ([]api.Message, error) {
	out := make([]api.Message, 0, len(in))
	for i, msg := range in {
		am := api.Message{Role: msg.Role, Content: msg.Content}
		for _, img := range msg.Images {
			b, err := base64.StdEncoding.DecodeString(img)
			if err != nil {
				return nil, ErrValidation(fmt.Sprintf("Invalid image data in message %d", i))
			}
			am.Images = append(am.Images, api.ImageData(b))
		}
		out = append(out, am)
	}
	return out, nil
}
