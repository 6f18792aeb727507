package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"ollamaapi/internal/manager"
	"ollamaapi/pkg/types"
)

// handleIndex godoc
// @Summary      Describe the API
// @Tags         meta
// @Produce      json
// @Success      200  {object}  types.IndexResponse
// @Router       / [get]
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	model := s.svc.DefaultModel()
	writeJSON(w, http.StatusOK, types.IndexResponse{
		Name:    manager.ServiceName,
		Version: manager.ServiceVersion,
		Model:   model,
		Endpoints: map[string]string{
			"GET /":              "This help message",
			"GET /health":        "Health check",
			"GET /status":        "Service and daemon status",
			"GET /metrics":       "Prometheus metrics",
			"GET /api/models":    "List available models",
			"POST /api/generate": "Generate text from prompt",
			"POST /api/chat":     "Chat with conversation history",
			"POST /api/pull":     "Pull a model from Ollama",
		},
		ExampleGenerate: types.Example{
			Endpoint: "/api/generate",
			Method:   http.MethodPost,
			Body: map[string]any{
				"prompt":      "What is machine learning?",
				"model":       model,
				"temperature": manager.DefaultTemperature,
				"num_predict": manager.DefaultNumPredict,
			},
		},
		ExampleChat: types.Example{
			Endpoint: "/api/chat",
			Method:   http.MethodPost,
			Body: map[string]any{
				"messages": []types.Message{
					{Role: "user", Content: "Hello!"},
					{Role: "assistant", Content: "Hi there! How can I help?"},
					{Role: "user", Content: "What's 2+2?"},
				},
				"model":       model,
				"temperature": manager.DefaultTemperature,
				"num_predict": manager.DefaultNumPredict,
			},
		},
	})
}

// handleHealth godoc
// @Summary      Daemon connectivity check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Failure      503  {object}  types.HealthResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.upstreamContext(r)
	defer cancel()
	if err := s.svc.Health(ctx); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, types.HealthResponse{Status: "unhealthy", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, types.HealthResponse{Status: "healthy", Ollama: "connected"})
}

// handleStatus godoc
// @Summary      Service and daemon status
// @Tags         meta
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Status(r.Context()))
}

// handleModels godoc
// @Summary      List installed models
// @Tags         models
// @Produce      json
// @Success      200  {object}  types.ModelsResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/models [get]
func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.upstreamContext(r)
	defer cancel()
	models, err := s.svc.ListModels(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ModelsResponse{Models: models})
}

// handleGenerate godoc
// @Summary      Generate text from a prompt
// @Tags         inference
// @Accept       json
// @Produce      json
// @Param        request  body      types.GenerateRequest  true  "Generation request"
// @Success      200      {object}  types.GenerateResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Router       /api/generate [post]
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[types.GenerateRequest](s, w, r)
	if !ok {
		return
	}
	ctx, cancel := s.upstreamContext(r)
	defer cancel()
	resp, err := s.svc.Generate(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleChat godoc
// @Summary      Chat with conversation history
// @Tags         inference
// @Accept       json
// @Produce      json
// @Param        request  body      types.ChatRequest  true  "Chat request"
// @Success      200      {object}  types.ChatResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Router       /api/chat [post]
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[types.ChatRequest](s, w, r)
	if !ok {
		return
	}
	ctx, cancel := s.upstreamContext(r)
	defer cancel()
	resp, err := s.svc.Chat(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handlePull godoc
// @Summary      Pull a model into the daemon
// @Tags         models
// @Accept       json
// @Produce      json
// @Param        request  body      types.PullRequest  true  "Model to pull"
// @Success      200      {object}  types.PullResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Router       /api/pull [post]
func (s *Server) handlePull(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[types.PullRequest](s, w, r)
	if !ok {
		return
	}
	ctx, cancel := s.upstreamContext(r)
	defer cancel()
	if err := s.svc.Pull(ctx, req.Model); err != nil {
		if manager.IsValidation(err) {
			writeServiceError(w, r, err)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Str("model", req.Model).Msg("pull failed")
		writeJSONError(w, http.StatusInternalServerError, msgPullFailed)
		return
	}
	writeJSON(w, http.StatusOK, types.PullResponse{
		Status:  "success",
		Message: fmt.Sprintf("Model %s pulled successfully", req.Model),
	})
}

// decodeBody reads a JSON body into a fresh T. A missing body or one that is
// not a JSON object yields the zero T, so the service reports which field is
// required. Fields are decoded one at a time: a field of the wrong type is
// dropped on its own and the rest of the request is kept. Only an oversized
// body is answered here, with 413; ok is false in that case.
func decodeBody[T any](s *Server, w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return v, false
		}
		hlog.FromRequest(r).Debug().Err(err).Msg("reading body failed")
		return v, true
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return v, true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("ignoring undecodable body")
		return v, true
	}
	for name, raw := range fields {
		if err := json.Unmarshal(fieldObject(name, raw), &v); err != nil {
			hlog.FromRequest(r).Debug().Err(err).Str("field", name).Msg("ignoring invalid field")
			// A failed decode can leave a partial value behind; clear it.
			_ = json.Unmarshal(fieldObject(name, json.RawMessage("null")), &v)
		}
	}
	return v, true
}

// fieldObject renders {"name":raw}.
func fieldObject(name string, raw json.RawMessage) []byte {
	key, _ := json.Marshal(name)
	out := make([]byte, 0, len(key)+len(raw)+2)
	out = append(out, '{')
	out = append(out, key...)
	out = append(out, ':')
	out = append(out, raw...)
	return append(out, '}')
}
