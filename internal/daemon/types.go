package daemon

import (
	"context"
	"time"

	"github.com/ollama/ollama/api"
)

// State is the lifecycle state of the daemon as seen by this service.
type State string

const (
	StateNotRunning State = "not-running"
	StateStarting   State = "starting"
	StateReady      State = "ready"
)

// Lister is the daemon API call used as a liveness probe.
type Lister interface {
	List(ctx context.Context) (*api.ListResponse, error)
}

// Options configure a Supervisor.
type Options struct {
	// Bin is the daemon executable name or path.
	Bin string
	// Host is the daemon API base URL, reported in Status and exported to a
	// launched daemon as OLLAMA_HOST.
	Host string
	// InstallURL is the install script fetched by Install.
	InstallURL string
	// AutoInstall lets EnsureReady run Install when the binary is missing.
	AutoInstall bool
	// GracePeriod is how long StartBackground waits after launching.
	GracePeriod time.Duration
	// StopTimeout bounds the wait between SIGTERM and kill.
	StopTimeout time.Duration
	// ProbeTimeout bounds one liveness probe; no answer in time means not running.
	ProbeTimeout time.Duration
}

const (
	defaultBin          = "ollama"
	defaultGracePeriod  = 5 * time.Second
	defaultStopTimeout  = 5 * time.Second
	defaultProbeTimeout = 3 * time.Second
)

func (o Options) withDefaults() Options {
	if o.Bin == "" {
		o.Bin = defaultBin
	}
	if o.GracePeriod < 0 {
		o.GracePeriod = defaultGracePeriod
	}
	if o.StopTimeout <= 0 {
		o.StopTimeout = defaultStopTimeout
	}
	if o.ProbeTimeout <= 0 {
		o.ProbeTimeout = defaultProbeTimeout
	}
	return o
}
