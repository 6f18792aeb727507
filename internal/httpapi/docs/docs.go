// Package docs holds the OpenAPI description served under /swagger when the
// binary is built with -tags=swagger. Regenerate with `swag init -g cmd/ollamaapi/docs.go -o internal/httpapi/docs`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Describe the API",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.IndexResponse"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Daemon connectivity check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.HealthResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Service and daemon status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}
            }
        },
        "/api/models": {
            "get": {
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "List installed models",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModelsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inference"],
                "summary": "Generate text from a prompt",
                "parameters": [{"description": "Generation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.GenerateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.GenerateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inference"],
                "summary": "Chat with conversation history",
                "parameters": [{"description": "Chat request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ChatRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/pull": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "Pull a model into the daemon",
                "parameters": [{"description": "Model to pull", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.PullRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PullResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.Message": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "example": "user"},
                "content": {"type": "string", "example": "Why is the sky blue?"},
                "images": {"type": "array", "items": {"type": "string", "format": "byte"}}
            }
        },
        "types.ModelInfo": {
            "type": "object",
            "properties": {"name": {"type": "string", "example": "llama3.2:latest"}}
        },
        "types.GenerateRequest": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string", "example": "Write a haiku about the ocean."},
                "model": {"type": "string", "example": "ministral-3:8b-cloud"},
                "temperature": {"type": "number", "example": 0.7},
                "top_k": {"type": "integer", "example": 40},
                "top_p": {"type": "number", "example": 0.9},
                "num_predict": {"type": "integer", "example": 512}
            }
        },
        "types.GenerateResponse": {
            "type": "object",
            "properties": {
                "model": {"type": "string"},
                "prompt": {"type": "string"},
                "response": {"type": "string"},
                "done": {"type": "boolean"},
                "total_duration": {"type": "integer"},
                "load_duration": {"type": "integer"},
                "prompt_eval_count": {"type": "integer"},
                "prompt_eval_duration": {"type": "integer"},
                "eval_count": {"type": "integer"},
                "eval_duration": {"type": "integer"}
            }
        },
        "types.ChatRequest": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"$ref": "#/definitions/types.Message"}},
                "model": {"type": "string", "example": "ministral-3:8b-cloud"},
                "temperature": {"type": "number", "example": 0.7},
                "num_predict": {"type": "integer", "example": 512}
            }
        },
        "types.ChatResponse": {
            "type": "object",
            "properties": {
                "model": {"type": "string"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/types.Message"}},
                "response": {"type": "string"},
                "total_duration": {"type": "integer"}
            }
        },
        "types.PullRequest": {
            "type": "object",
            "properties": {"model": {"type": "string", "example": "llama3.2"}}
        },
        "types.PullResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "message": {"type": "string", "example": "Model llama3.2 pulled successfully"}
            }
        },
        "types.ModelsResponse": {
            "type": "object",
            "properties": {"models": {"type": "array", "items": {"$ref": "#/definitions/types.ModelInfo"}}}
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "ollama": {"type": "string", "example": "connected"},
                "message": {"type": "string"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "Prompt is required"}}
        },
        "types.DaemonStatus": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "example": "ready"},
                "installed": {"type": "boolean"},
                "binary": {"type": "string"},
                "managed": {"type": "boolean"},
                "pid": {"type": "integer"},
                "started_at": {"type": "integer"},
                "rss_bytes": {"type": "integer"},
                "host": {"type": "string"}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "version": {"type": "string"},
                "default_model": {"type": "string"},
                "uptime_seconds": {"type": "integer"},
                "daemon": {"$ref": "#/definitions/types.DaemonStatus"}
            }
        },
        "types.IndexResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "version": {"type": "string"},
                "model": {"type": "string"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "example_generate": {"type": "object"},
                "example_chat": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Ollama LLM API",
	Description:      "HTTP façade over a local Ollama daemon: generation, chat and model management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
