package daemon

import (
	"context"
	"errors"
	"net/url"
	"os"
	"os/exec"
	"time"
)

type procInfo struct {
	cmd       *exec.Cmd
	pid       int
	startedAt time.Time
	done      chan struct{}
	waitErr   error
}

func (p *procInfo) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// managedPID returns the pid of a daemon launched by this supervisor that
// has not exited.
func (s *Supervisor) managedPID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.proc == nil || s.proc.exited() {
		return 0, false
	}
	return s.proc.pid, true
}

// StartBackground launches `ollama serve` detached from this process, with
// its output discarded, then waits for the grace period. It reports whether
// the launch itself succeeded; readiness is not checked.
func (s *Supervisor) StartBackground(ctx context.Context) bool {
	bin, err := s.lookPath(s.opts.Bin)
	if err != nil {
		bin = s.opts.Bin
	}
	s.setState(StateStarting)

	cmd := s.newCommand(bin, "serve")
	// nil Stdin/Stdout/Stderr are connected to the null device.
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	env := cmd.Env
	if env == nil {
		env = os.Environ()
	}
	cmd.Env = append(env, s.daemonEnv()...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		s.setState(StateNotRunning)
		daemonStartsTotal.WithLabelValues("failed").Inc()
		s.publish(Event{Name: EventStartFailed, Fields: map[string]any{"bin": bin, "error": err.Error()}})
		s.log.Warn().Err(err).Str("bin", bin).Msg("failed to start Ollama")
		return false
	}

	p := &procInfo{cmd: cmd, pid: cmd.Process.Pid, startedAt: time.Now(), done: make(chan struct{})}
	s.mu.Lock()
	s.proc = p
	s.mu.Unlock()
	go s.wait(p)

	daemonStartsTotal.WithLabelValues("launched").Inc()
	s.publish(Event{Name: EventStart, PID: p.pid, Fields: map[string]any{"bin": bin}})
	s.log.Info().Int("pid", p.pid).Dur("grace", s.opts.GracePeriod).Msg("Ollama started in background")

	if err := sleepCtx(ctx, s.opts.GracePeriod); err != nil {
		s.log.Debug().Err(err).Msg("grace period interrupted")
	}
	return true
}

// daemonEnv points a launched daemon at the address this service probes.
func (s *Supervisor) daemonEnv() []string {
	if s.opts.Host == "" {
		return nil
	}
	u, err := url.Parse(s.opts.Host)
	if err != nil || u.Host == "" {
		return nil
	}
	return []string{"OLLAMA_HOST=" + u.Host}
}

// wait reaps the process and records its exit.
func (s *Supervisor) wait(p *procInfo) {
	err := p.cmd.Wait()
	s.mu.Lock()
	p.waitErr = err
	close(p.done)
	if s.proc == p {
		s.setStateLocked(StateNotRunning)
	}
	s.mu.Unlock()

	fields := map[string]any{}
	if err != nil {
		fields["error"] = err.Error()
	}
	s.publish(Event{Name: EventExit, PID: p.pid, Fields: fields})
	s.log.Info().Int("pid", p.pid).AnErr("exit", err).Msg("Ollama process exited")
}

// Stop terminates a daemon launched by this supervisor: SIGTERM to its
// process group, then kill once StopTimeout elapses or ctx is done. A daemon
// that was already running when the service started is left alone.
func (s *Supervisor) Stop(ctx context.Context) error {
	s.mu.Lock()
	p := s.proc
	s.mu.Unlock()
	if p == nil || p.exited() {
		return nil
	}

	if err := terminate(p.cmd); err != nil && !errors.Is(err, os.ErrProcessDone) {
		s.log.Debug().Err(err).Int("pid", p.pid).Msg("terminate failed; killing")
		_ = kill(p.cmd)
	}
	timer := time.NewTimer(s.opts.StopTimeout)
	defer timer.Stop()
	select {
	case <-p.done:
	case <-timer.C:
		s.log.Warn().Int("pid", p.pid).Msg("Ollama did not exit in time; killing")
		_ = kill(p.cmd)
		<-p.done
	case <-ctx.Done():
		_ = kill(p.cmd)
		<-p.done
	}

	s.mu.Lock()
	if s.proc == p {
		s.proc = nil
		s.setStateLocked(StateNotRunning)
	}
	s.mu.Unlock()
	s.publish(Event{Name: EventStop, PID: p.pid})
	return nil
}
