package main

import (
	"io"
	"net/http"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"
	"go.uber.org/dig"

	"ollamaapi/internal/config"
	"ollamaapi/internal/daemon"
	"ollamaapi/internal/manager"
)

// app is everything a command needs once the container is built.
type app struct {
	dig.In

	Config     *config.Config
	Log        zerolog.Logger
	Supervisor *daemon.Supervisor
	Manager    *manager.Manager
}

// buildContainer registers the constructors for one process.
func buildContainer(cfg config.Config, out io.Writer) (*dig.Container, error) {
	c := dig.New()
	providers := []any{
		func() *config.Config { return &cfg },
		config.Provide,
		func(lc *config.LogConfig) zerolog.Logger { return newLogger(lc, out) },
		newDaemonClient,
		newSupervisor,
		newManager,
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// invoke builds the container for cfg and runs fn with the resolved app.
func invoke(cfg config.Config, out io.Writer, fn func(app) error) error {
	c, err := buildContainer(cfg, out)
	if err != nil {
		return err
	}
	var runErr error
	if err := c.Invoke(func(a app) { runErr = fn(a) }); err != nil {
		return err
	}
	return runErr
}

// newDaemonClient returns the Ollama API client. Generation can take minutes,
// so the HTTP client carries no overall timeout.
func newDaemonClient(dc *config.DaemonConfig) (*api.Client, error) {
	base, err := dc.BaseURL()
	if err != nil {
		return nil, err
	}
	return api.NewClient(base, &http.Client{}), nil
}

func newSupervisor(dc *config.DaemonConfig, client *api.Client, log zerolog.Logger) (*daemon.Supervisor, error) {
	base, err := dc.BaseURL()
	if err != nil {
		return nil, err
	}
	sup := daemon.New(daemon.Options{
		Bin:          dc.Bin,
		Host:         base.String(),
		InstallURL:   dc.InstallURL,
		AutoInstall:  dc.AutoInstall,
		GracePeriod:  dc.StartGracePeriod.Std(),
		StopTimeout:  dc.StopTimeout.Std(),
		ProbeTimeout: dc.ProbeTimeout.Std(),
	}, client, log)
	sup.SetPublisher(daemon.LogPublisher{Log: log.With().Str("component", "daemon-events").Logger()})
	return sup, nil
}

func newManager(mc *config.ModelConfig, dc *config.DaemonConfig, client *api.Client, sup *daemon.Supervisor, log zerolog.Logger) *manager.Manager {
	return manager.NewWithConfig(manager.ManagerConfig{
		DefaultModel: mc.Default,
		Client:       client,
		Daemon:       sup,
		ProbeTimeout: dc.ProbeTimeout.Std(),
		Logger:       log,
	})
}
