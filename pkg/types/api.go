package types

// GenerateRequest is the payload accepted by POST /api/generate.
type GenerateRequest struct {
	// Required prompt text to generate a completion for.
	// example: Write a haiku about the ocean.
	Prompt string `json:"prompt" example:"Write a haiku about the ocean."`
	// Optional model name. If empty, the server default is used.
	// example: ministral-3:8b-cloud
	Model string `json:"model,omitempty" example:"ministral-3:8b-cloud"`
	// Sampling temperature (higher = more random). Defaults to 0.7.
	// example: 0.7
	Temperature *Number `json:"temperature,omitempty" example:"0.7"`
	// Top-K sampling: limit candidates to top K tokens. Defaults to 40.
	// example: 40
	TopK *Number `json:"top_k,omitempty" example:"40"`
	// Nucleus sampling probability. Defaults to 0.9.
	// example: 0.9
	TopP *Number `json:"top_p,omitempty" example:"0.9"`
	// Maximum number of tokens to generate. Defaults to 512. Fractional
	// values are rounded, as is top_k.
	// example: 512
	NumPredict *Number `json:"num_predict,omitempty" example:"512"`
}

// GenerateResponse is returned by POST /api/generate. Durations are nanoseconds.
type GenerateResponse struct {
	Model              string `json:"model" example:"ministral-3:8b-cloud"`
	Prompt             string `json:"prompt" example:"Write a haiku about the ocean."`
	Response           string `json:"response" example:"Waves fold into foam..."`
	Done               bool   `json:"done" example:"true"`
	TotalDuration      int64  `json:"total_duration" example:"5043500667"`
	LoadDuration       int64  `json:"load_duration" example:"5025959"`
	PromptEvalCount    int    `json:"prompt_eval_count" example:"26"`
	PromptEvalDuration int64  `json:"prompt_eval_duration" example:"325953000"`
	EvalCount          int    `json:"eval_count" example:"290"`
	EvalDuration       int64  `json:"eval_duration" example:"4709213000"`
}

// ChatRequest is the payload accepted by POST /api/chat.
type ChatRequest struct {
	// Ordered conversation history; must not be empty.
	Messages []Message `json:"messages"`
	// Optional model name. If empty, the server default is used.
	// example: ministral-3:8b-cloud
	Model string `json:"model,omitempty" example:"ministral-3:8b-cloud"`
	// Sampling temperature. Defaults to 0.7.
	// example: 0.7
	Temperature *Number `json:"temperature,omitempty" example:"0.7"`
	// Maximum number of tokens to generate. Defaults to 512.
	// example: 512
	NumPredict *Number `json:"num_predict,omitempty" example:"512"`
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	Model         string    `json:"model" example:"ministral-3:8b-cloud"`
	Messages      []Message `json:"messages"`
	Response      string    `json:"response" example:"The sky appears blue because..."`
	TotalDuration int64     `json:"total_duration" example:"5043500667"`
}

// PullRequest is the payload accepted by POST /api/pull.
type PullRequest struct {
	// Name of the model to download.
	// example: llama3.2
	Model string `json:"model" example:"llama3.2"`
}

// PullResponse is returned by POST /api/pull on success.
type PullResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Model llama3.2 pulled successfully"`
}

// ModelsResponse wraps the list of installed models returned by GET /api/models.
type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// healthy or unhealthy
	Status string `json:"status" example:"healthy"`
	// Present when healthy.
	Ollama string `json:"ollama,omitempty" example:"connected"`
	// Present when unhealthy: the daemon error text.
	Message string `json:"message,omitempty" example:"connection refused"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: Prompt is required
	Error string `json:"error" example:"Prompt is required"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Service       string       `json:"service" example:"Ollama LLM API"`
	Version       string       `json:"version" example:"1.0.0"`
	DefaultModel  string       `json:"default_model" example:"ministral-3:8b-cloud"`
	UptimeSeconds int64        `json:"uptime_seconds" example:"42"`
	Daemon        DaemonStatus `json:"daemon"`
}

// IndexResponse describes the API on GET /.
type IndexResponse struct {
	Name            string            `json:"name" example:"Ollama LLM API"`
	Version         string            `json:"version" example:"1.0.0"`
	Model           string            `json:"model" example:"ministral-3:8b-cloud"`
	Endpoints       map[string]string `json:"endpoints"`
	ExampleGenerate Example           `json:"example_generate"`
	ExampleChat     Example           `json:"example_chat"`
}

// Example is a sample request shown on GET /.
type Example struct {
	Endpoint string `json:"endpoint" example:"/api/generate"`
	Method   string `json:"method" example:"POST"`
	Body     any    `json:"body"`
}
