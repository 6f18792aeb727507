package manager

import (
	"context"

	"github.com/ollama/ollama/api"

	"ollamaapi/pkg/types"
)

// Client is the subset of the daemon API the manager forwards to.
// *api.Client satisfies it.
type Client interface {
	Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
	Pull(ctx context.Context, req *api.PullRequest, fn api.PullProgressFunc) error
	List(ctx context.Context) (*api.ListResponse, error)
}

// Daemon is the supervisor view used for health and status reporting.
type Daemon interface {
	Check(ctx context.Context) error
	Status(ctx context.Context) types.DaemonStatus
}
