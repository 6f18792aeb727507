package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/ollamaapi/docs.go -o internal/httpapi/docs`.
//
// @title           Ollama LLM API
// @version         1.0.0
// @description     HTTP API for text generation, chat and model management on a local Ollama daemon.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
