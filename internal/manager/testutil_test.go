package manager

import (
	"context"
	"errors"
	"sync"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"

	"ollamaapi/pkg/types"
)

// fakeClient records requests and replays canned daemon responses.
type fakeClient struct {
	mu sync.Mutex

	genReqs  []*api.GenerateRequest
	chatReqs []*api.ChatRequest
	pulls    []string

	genResp  api.GenerateResponse
	chatResp api.ChatResponse
	list     *api.ListResponse
	err      error
	pullErr  error
}

func (f *fakeClient) Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error {
	f.mu.Lock()
	f.genReqs = append(f.genReqs, req)
	resp, err := f.genResp, f.err
	f.mu.Unlock()
	if err != nil {
		return err
	}
	if resp.Response == "" && !resp.Done {
		resp = api.GenerateResponse{Model: req.Model, Response: "echo: " + req.Prompt, Done: true}
	}
	return fn(resp)
}

func (f *fakeClient) Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error {
	f.mu.Lock()
	f.chatReqs = append(f.chatReqs, req)
	resp, err := f.chatResp, f.err
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(resp)
}

func (f *fakeClient) Pull(ctx context.Context, req *api.PullRequest, fn api.PullProgressFunc) error {
	f.mu.Lock()
	f.pulls = append(f.pulls, req.Model)
	err := f.pullErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(api.ProgressResponse{Status: "success"})
}

func (f *fakeClient) List(ctx context.Context) (*api.ListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.list == nil {
		return &api.ListResponse{}, nil
	}
	return f.list, nil
}

type fakeDaemon struct {
	err    error
	status types.DaemonStatus
}

func (d *fakeDaemon) Check(context.Context) error                { return d.err }
func (d *fakeDaemon) Status(context.Context) types.DaemonStatus { return d.status }

var errRefused = errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")

func newTestManager(c *fakeClient) *Manager {
	return NewWithConfig(ManagerConfig{Client: c, DefaultModel: "default-model", Logger: zerolog.Nop()})
}

func ptrF(v float64) *types.Number { return types.Num(v) }
func ptrI(v int) *types.Number     { return types.Num(float64(v)) }
