package daemon

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoInstallScript is returned by Install when no script URL is configured.
var ErrNoInstallScript = errors.New("no install script configured")

// Install fetches the configured install script and pipes it to sh. It is
// only ever invoked explicitly or through EnsureReady with AutoInstall set.
func (s *Supervisor) Install(ctx context.Context) error {
	url := strings.TrimSpace(s.opts.InstallURL)
	if url == "" {
		return ErrNoInstallScript
	}
	for _, tool := range []string{"curl", "sh"} {
		if _, err := s.lookPath(tool); err != nil {
			return fmt.Errorf("install requires %s: %w", tool, err)
		}
	}
	s.log.Info().Str("url", url).Msg("installing Ollama")
	s.publish(Event{Name: EventInstall, Fields: map[string]any{"url": url}})

	script := fmt.Sprintf("curl -fsSL %s | sh", shellQuote(url))
	if err := s.runCmd(ctx, Cmd{Path: "sh", Args: []string{"-c", script}}); err != nil {
		s.publish(Event{Name: EventInstallError, Fields: map[string]any{"url": url, "error": err.Error()}})
		return fmt.Errorf("run install script: %w", err)
	}
	s.log.Info().Msg("Ollama installed")
	return nil
}

// shellQuote wraps v in single quotes for sh.
func shellQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'"'"'`) + "'"
}
