package manager

import (
	"time"

	"github.com/rs/zerolog"
)

// Sampling defaults applied when a request omits the field.
const (
	DefaultTemperature = 0.7
	DefaultTopK        = 40
	DefaultTopP        = 0.9
	DefaultNumPredict  = 512
)

const defaultProbeTimeout = 3 * time.Second

// ServiceName and ServiceVersion identify the API in / and /status.
const (
	ServiceName    = "Ollama LLM API"
	ServiceVersion = "1.0.0"
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	DefaultModel string
	Client       Client
	// Daemon is optional; without it health falls back to a list call.
	Daemon Daemon
	// ProbeTimeout bounds the health probe when no Daemon is set; <= 0 means 3s.
	ProbeTimeout time.Duration
	Logger       zerolog.Logger
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	probe := cfg.ProbeTimeout
	if probe <= 0 {
		probe = defaultProbeTimeout
	}
	return &Manager{
		client:       cfg.Client,
		daemon:       cfg.Daemon,
		defaultModel: cfg.DefaultModel,
		log:          cfg.Logger.With().Str("component", "manager").Logger(),
		startTime:    timeNow(),
		probeTimeout: probe,
	}
}
