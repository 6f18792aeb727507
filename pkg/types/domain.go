package types

// Message is one turn of a chat conversation.
type Message struct {
	// Speaker role: system, user or assistant.
	// example: user
	Role string `json:"role" example:"user"`
	// Text content of the turn.
	// example: Why is the sky blue?
	Content string `json:"content" example:"Why is the sky blue?"`
	// Base64-encoded images for multimodal models.
	Images []string `json:"images,omitempty"`
}

// ModelInfo is a model installed in the daemon.
type ModelInfo struct {
	// Model name including tag.
	// example: llama3.2:latest
	Name string `json:"name" example:"llama3.2:latest"`
}

// DaemonStatus is a snapshot of the supervised inference daemon.
type DaemonStatus struct {
	// Lifecycle state: not-running, starting or ready.
	// example: ready
	State string `json:"state" example:"ready"`
	// Whether the executable was found on this host.
	Installed bool `json:"installed" example:"true"`
	// Resolved path of the daemon executable.
	// example: /usr/local/bin/ollama
	Binary string `json:"binary,omitempty" example:"/usr/local/bin/ollama"`
	// True when this service launched the daemon process itself.
	Managed bool `json:"managed" example:"true"`
	// PID of the launched daemon, when managed.
	PID int `json:"pid,omitempty" example:"4242"`
	// Unix time at which the managed daemon was launched.
	StartedAt int64 `json:"started_at,omitempty" example:"1718000000"`
	// Resident set size of the managed daemon in bytes.
	RSSBytes uint64 `json:"rss_bytes,omitempty" example:"104857600"`
	// Base URL of the daemon API.
	// example: http://127.0.0.1:11434
	Host string `json:"host" example:"http://127.0.0.1:11434"`
}
