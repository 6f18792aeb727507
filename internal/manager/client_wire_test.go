package manager

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ollamaapi/pkg/types"
)

// newFakeDaemon serves the subset of the daemon HTTP API the manager uses.
func newFakeDaemon(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var req api.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Model == "missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"model 'missing' not found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":          req.Model,
			"response":       "echo: " + req.Prompt,
			"done":           true,
			"total_duration": 1500,
			"eval_count":     3,
		})
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req api.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":          req.Model,
			"message":        map[string]any{"role": "assistant", "content": "you said " + req.Messages[len(req.Messages)-1].Content},
			"done":           true,
			"total_duration": 900,
		})
	})
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest","model":"llama3.2:latest"}]}`))
	})
	mux.HandleFunc("/api/pull", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success"}` + "\n"))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newWireManager(t *testing.T) *Manager {
	t.Helper()
	ts := newFakeDaemon(t)
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	client := api.NewClient(u, ts.Client())
	return NewWithConfig(ManagerConfig{Client: client, DefaultModel: "llama3.2", Logger: zerolog.Nop()})
}

func TestWire_Generate(t *testing.T) {
	m := newWireManager(t)
	resp, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: "hello"})
	require.NoError(t, err)
	require.Equal(t, "llama3.2", resp.Model)
	require.Equal(t, "echo: hello", resp.Response)
	require.True(t, resp.Done)
	require.Equal(t, int64(1500), resp.TotalDuration)
	require.Equal(t, 3, resp.EvalCount)
	require.Zero(t, resp.LoadDuration)
}

func TestWire_GenerateDaemonError(t *testing.T) {
	m := newWireManager(t)
	_, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: "hello", Model: "missing"})
	require.True(t, IsUpstream(err))
	require.Contains(t, err.Error(), "model 'missing' not found")
	if code := UpstreamStatus(err); code != 0 {
		require.Equal(t, http.StatusNotFound, code)
	}
}

func TestWire_Chat(t *testing.T) {
	m := newWireManager(t)
	resp, err := m.Chat(context.Background(), types.ChatRequest{Messages: []types.Message{{Role: "user", Content: "ping"}}})
	require.NoError(t, err)
	require.Equal(t, "you said ping", resp.Response)
	require.Equal(t, int64(900), resp.TotalDuration)
}

func TestWire_ListAndPull(t *testing.T) {
	m := newWireManager(t)
	models, err := m.ListModels(context.Background())
	require.NoError(t, err)
	require.Equal(t, []types.ModelInfo{{Name: "llama3.2:latest"}}, models)
	require.True(t, m.PullModel(context.Background(), "qwen2.5"))
	require.NoError(t, m.Health(context.Background()))
}

func TestWire_DaemonDown(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	u, _ := url.Parse(ts.URL)
	ts.Close()
	m := NewWithConfig(ManagerConfig{Client: api.NewClient(u, http.DefaultClient), DefaultModel: "m", Logger: zerolog.Nop()})
	require.Error(t, m.Health(context.Background()))
	_, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: "x"})
	require.True(t, IsUpstream(err))
}
