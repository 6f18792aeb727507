package manager

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/require"

	"ollamaapi/pkg/types"
)

func TestGenerate_RequiresPrompt(t *testing.T) {
	c := &fakeClient{}
	m := newTestManager(c)
	_, err := m.Generate(context.Background(), types.GenerateRequest{Model: "x"})
	require.Error(t, err)
	require.True(t, IsValidation(err))
	require.Contains(t, err.Error(), "Prompt")
	require.Empty(t, c.genReqs, "daemon must not be called")
}

func TestGenerate_AppliesDefaults(t *testing.T) {
	c := &fakeClient{}
	m := newTestManager(c)
	resp, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	require.Equal(t, "default-model", resp.Model)
	require.Equal(t, "hi", resp.Prompt)
	require.Equal(t, "echo: hi", resp.Response)
	require.True(t, resp.Done)
	require.Zero(t, resp.TotalDuration)
	require.Zero(t, resp.EvalCount)

	require.Len(t, c.genReqs, 1)
	req := c.genReqs[0]
	require.Equal(t, "default-model", req.Model)
	require.NotNil(t, req.Stream)
	require.False(t, *req.Stream)
	require.Equal(t, map[string]any{
		"temperature": DefaultTemperature,
		"top_k":       DefaultTopK,
		"top_p":       DefaultTopP,
		"num_predict": DefaultNumPredict,
	}, req.Options)
}

func TestGenerate_ForwardsOptionsAndMetrics(t *testing.T) {
	c := &fakeClient{genResp: api.GenerateResponse{
		Response: "ok",
		Done:     true,
		Metrics: api.Metrics{
			TotalDuration:      3 * time.Second,
			LoadDuration:       10 * time.Millisecond,
			PromptEvalCount:    7,
			PromptEvalDuration: 20 * time.Millisecond,
			EvalCount:          42,
			EvalDuration:       2 * time.Second,
		},
	}}
	m := newTestManager(c)
	resp, err := m.Generate(context.Background(), types.GenerateRequest{
		Prompt: "hi", Model: "llama3.2", Temperature: ptrF(0.1), TopK: ptrI(5), TopP: ptrF(0.5), NumPredict: ptrI(16),
	})
	require.NoError(t, err)
	require.Equal(t, "llama3.2", resp.Model)
	require.Equal(t, int64(3*time.Second), resp.TotalDuration)
	require.Equal(t, int64(10*time.Millisecond), resp.LoadDuration)
	require.Equal(t, 7, resp.PromptEvalCount)
	require.Equal(t, int64(20*time.Millisecond), resp.PromptEvalDuration)
	require.Equal(t, 42, resp.EvalCount)
	require.Equal(t, int64(2*time.Second), resp.EvalDuration)

	opts := c.genReqs[0].Options
	require.Equal(t, 0.1, opts["temperature"])
	require.Equal(t, 5, opts["top_k"])
	require.Equal(t, 0.5, opts["top_p"])
	require.Equal(t, 16, opts["num_predict"])
}

func TestGenerate_ZeroTemperatureIsKept(t *testing.T) {
	c := &fakeClient{}
	m := newTestManager(c)
	_, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: "hi", Temperature: ptrF(0)})
	require.NoError(t, err)
	require.Equal(t, 0.0, c.genReqs[0].Options["temperature"])
}

func TestGenerate_UpstreamError(t *testing.T) {
	c := &fakeClient{err: api.StatusError{StatusCode: 404, ErrorMessage: "model \"nope\" not found, try pulling it first"}}
	m := newTestManager(c)
	_, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: "hi", Model: "nope"})
	require.Error(t, err)
	require.True(t, IsUpstream(err))
	require.False(t, IsValidation(err))
	require.Equal(t, "model \"nope\" not found, try pulling it first", err.Error())
	require.Equal(t, 404, UpstreamStatus(err))
}

func TestChat_RequiresMessages(t *testing.T) {
	c := &fakeClient{}
	m := newTestManager(c)
	_, err := m.Chat(context.Background(), types.ChatRequest{})
	require.True(t, IsValidation(err))
	require.Contains(t, err.Error(), "Messages")
	_, err = m.Chat(context.Background(), types.ChatRequest{Messages: []types.Message{}})
	require.True(t, IsValidation(err))
	require.Empty(t, c.chatReqs)
}

func TestChat_ForwardsAndEchoes(t *testing.T) {
	c := &fakeClient{chatResp: api.ChatResponse{
		Message: api.Message{Role: "assistant", Content: "Rayleigh scattering."},
		Done:    true,
		Metrics: api.Metrics{TotalDuration: time.Second},
	}}
	m := newTestManager(c)
	msgs := []types.Message{{Role: "system", Content: "be brief"}, {Role: "user", Content: "Why is the sky blue?"}}
	resp, err := m.Chat(context.Background(), types.ChatRequest{Messages: msgs, NumPredict: ptrI(64)})
	require.NoError(t, err)
	require.Equal(t, "default-model", resp.Model)
	require.Equal(t, msgs, resp.Messages)
	require.Equal(t, "Rayleigh scattering.", resp.Response)
	require.Equal(t, int64(time.Second), resp.TotalDuration)

	req := c.chatReqs[0]
	require.Len(t, req.Messages, 2)
	require.Equal(t, "user", req.Messages[1].Role)
	require.Equal(t, DefaultTemperature, req.Options["temperature"])
	require.Equal(t, 64, req.Options["num_predict"])
	require.NotContains(t, req.Options, "top_k")
}

func TestChat_MissingContentIsEmpty(t *testing.T) {
	c := &fakeClient{chatResp: api.ChatResponse{Done: true}}
	m := newTestManager(c)
	resp, err := m.Chat(context.Background(), types.ChatRequest{Messages: []types.Message{{Role: "user", Content: "hi"}}})
	require.NoError(t, err)
	require.Equal(t, "", resp.Response)
}

func TestChat_UpstreamError(t *testing.T) {
	c := &fakeClient{err: errRefused}
	m := newTestManager(c)
	_, err := m.Chat(context.Background(), types.ChatRequest{Messages: []types.Message{{Role: "user", Content: "hi"}}})
	require.True(t, IsUpstream(err))
	require.Equal(t, errRefused.Error(), err.Error())
	require.Zero(t, UpstreamStatus(err))
}

func TestGenerate_ConcurrentRequestsDoNotInterfere(t *testing.T) {
	c := &fakeClient{}
	m := newTestManager(c)
	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prompt := fmt.Sprintf("prompt-%d", i)
			resp, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: prompt})
			if err != nil {
				errs <- err
				return
			}
			if resp.Prompt != prompt || resp.Response != "echo: "+prompt {
				errs <- fmt.Errorf("cross-talk: sent %q got %+v", prompt, resp)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestGenerate_RoundsIntegerOptions(t *testing.T) {
	c := &fakeClient{}
	m := newTestManager(c)
	_, err := m.Generate(context.Background(), types.GenerateRequest{Prompt: "hi", TopK: ptrF(40.5), NumPredict: ptrF(511.6)})
	require.NoError(t, err)
	opts := c.genReqs[0].Options
	require.Equal(t, 41, opts["top_k"])
	require.Equal(t, 512, opts["num_predict"])
}

func TestChat_ForwardsImages(t *testing.T) {
	c := &fakeClient{chatResp: api.ChatResponse{Message: api.Message{Role: "assistant", Content: "a cat"}, Done: true}}
	m := newTestManager(c)
	msgs := []types.Message{{Role: "user", Content: "what is this?", Images: []string{"aGVsbG8="}}}
	resp, err := m.Chat(context.Background(), types.ChatRequest{Messages: msgs})
	require.NoError(t, err)
	require.Equal(t, msgs, resp.Messages)
	require.Len(t, c.chatReqs[0].Messages[0].Images, 1)
	require.Equal(t, api.ImageData("hello"), c.chatReqs[0].Messages[0].Images[0])
}

func TestChat_InvalidImageIsValidationError(t *testing.T) {
	c := &fakeClient{}
	m := newTestManager(c)
	_, err := m.Chat(context.Background(), types.ChatRequest{Messages: []types.Message{{Role: "user", Content: "x", Images: []string{"%%%"}}}})
	require.True(t, IsValidation(err))
	require.Empty(t, c.chatReqs)
}
