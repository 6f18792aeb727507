package daemon

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Supervisor owns the daemon lifecycle and its State. At most one daemon
// process is launched per Supervisor.
type Supervisor struct {
	opts      Options
	client    Lister
	log       zerolog.Logger
	publisher EventPublisher

	// Seams for tests.
	lookPath   func(string) (string, error)
	newCommand func(name string, args ...string) *exec.Cmd
	runCmd     func(ctx context.Context, c Cmd) error

	// ensureMu serializes EnsureReady so concurrent callers never launch twice.
	ensureMu sync.Mutex

	mu    sync.Mutex
	state State
	proc  *procInfo
}

// New constructs a Supervisor probing the daemon through client.
func New(opts Options, client Lister, log zerolog.Logger) *Supervisor {
	s := &Supervisor{
		opts:       opts.withDefaults(),
		client:     client,
		log:        log.With().Str("component", "daemon").Logger(),
		publisher:  noopPublisher{},
		lookPath:   exec.LookPath,
		newCommand: exec.Command,
		state:      StateNotRunning,
	}
	s.runCmd = func(ctx context.Context, c Cmd) error { return RunCmd(ctx, s.log, c) }
	recordState(StateNotRunning)
	return s
}

// SetPublisher installs an EventPublisher for lifecycle events.
func (s *Supervisor) SetPublisher(p EventPublisher) {
	if p == nil {
		p = noopPublisher{}
	}
	s.mu.Lock()
	s.publisher = p
	s.mu.Unlock()
}

func (s *Supervisor) publish(e Event) {
	s.mu.Lock()
	p := s.publisher
	s.mu.Unlock()
	p.Publish(e)
}

// State returns the current daemon state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Supervisor) setState(st State) {
	s.mu.Lock()
	s.setStateLocked(st)
	s.mu.Unlock()
}

func (s *Supervisor) setStateLocked(st State) {
	if s.state == st {
		return
	}
	s.log.Debug().Str("from", string(s.state)).Str("to", string(st)).Msg("state change")
	s.state = st
	recordState(st)
}

// Installed reports whether the daemon executable is present on this host.
func (s *Supervisor) Installed() bool {
	_, err := s.lookPath(s.opts.Bin)
	return err == nil
}

// Check calls the daemon list API and updates the state from the outcome.
// The returned error is the raw daemon or transport error. A daemon that
// does not answer within ProbeTimeout counts as not running.
func (s *Supervisor) Check(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, s.opts.ProbeTimeout)
	_, err := s.client.List(probeCtx)
	cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		daemonProbesTotal.WithLabelValues("down").Inc()
		// A launched process that has not answered yet is still starting.
		if s.state != StateStarting || s.proc == nil {
			s.setStateLocked(StateNotRunning)
		}
		return err
	}
	daemonProbesTotal.WithLabelValues("up").Inc()
	s.setStateLocked(StateReady)
	return nil
}

// Running reports whether the daemon answers a list request. Failures of any
// kind mean not running.
func (s *Supervisor) Running(ctx context.Context) bool {
	return s.Check(ctx) == nil
}

// EnsureReady makes the daemon reachable if it can: probe, optionally
// install, launch once and probe again. It never retries in a loop and is
// safe to call repeatedly.
func (s *Supervisor) EnsureReady(ctx context.Context) bool {
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()

	if s.Running(ctx) {
		s.log.Info().Msg("Ollama is already running")
		return true
	}
	if !s.Installed() {
		if !s.opts.AutoInstall {
			s.publish(Event{Name: EventNotInstalled, Fields: map[string]any{"bin": s.opts.Bin}})
			s.log.Warn().Str("bin", s.opts.Bin).Msg("Ollama is not installed! Install from: https://ollama.com")
			return false
		}
		if err := s.Install(ctx); err != nil {
			s.log.Warn().Err(err).Msg("Ollama install failed")
			return false
		}
		if !s.Installed() {
			s.log.Warn().Str("bin", s.opts.Bin).Msg("Ollama still not found after install")
			return false
		}
	}

	if pid, alive := s.managedPID(); alive {
		// Launched earlier and not answering yet: give it another grace period
		// instead of spawning a second daemon.
		s.log.Info().Int("pid", pid).Msg("waiting for previously launched Ollama")
		_ = sleepCtx(ctx, s.opts.GracePeriod)
	} else if !s.StartBackground(ctx) {
		return false
	}

	if !s.Running(ctx) {
		s.log.Warn().Msg("Ollama did not become ready after start")
		return false
	}
	s.publish(Event{Name: EventReady, PID: s.pid()})
	s.log.Info().Msg("Ollama is ready")
	return true
}

func (s *Supervisor) pid() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.proc == nil {
		return 0
	}
	return s.proc.pid
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
