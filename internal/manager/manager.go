package manager

import (
	"time"

	"github.com/rs/zerolog"

	"ollamaapi/pkg/types"
)

var timeNow = time.Now

// Manager is stateless apart from its collaborators, so one value serves
// concurrent requests.
type Manager struct {
	client       Client
	daemon       Daemon
	defaultModel string
	log          zerolog.Logger
	startTime    time.Time
	probeTimeout time.Duration
}

// New constructs a Manager with no supervisor attached.
func New(client Client, defaultModel string, log zerolog.Logger) *Manager {
	return NewWithConfig(ManagerConfig{Client: client, DefaultModel: defaultModel, Logger: log})
}

// DefaultModel returns the model used when a request omits one.
func (m *Manager) DefaultModel() string { return m.defaultModel }

func (m *Manager) modelOrDefault(model string) string {
	if model == "" {
		return m.defaultModel
	}
	return model
}

func floatOr(v *types.Number, def float64) float64 {
	if v == nil {
		return def
	}
	return v.Float()
}

func intOr(v *types.Number, def int) int {
	if v == nil {
		return def
	}
	return v.Int()
}
