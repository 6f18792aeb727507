package daemon

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// Cmd describes a foreground command run to completion.
type Cmd struct {
	Path string
	Args []string
	Env  map[string]string // additional env vars
	Dir  string            // working directory
}

// RunCmd runs c and forwards each stdout/stderr line to log.
func RunCmd(ctx context.Context, log zerolog.Logger, c Cmd) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	var wg sync.WaitGroup
	wg.Add(2)
	go stream(&wg, log, "stdout", stdout)
	go stream(&wg, log, "stderr", stderr)
	// Pipes must be drained before Wait closes them.
	wg.Wait()
	return cmd.Wait()
}

// maxLineBytes bounds one forwarded output line; longer lines are split.
const maxLineBytes = 256 << 10

func stream(wg *sync.WaitGroup, log zerolog.Logger, name string, r io.Reader) {
	defer wg.Done()
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	s.Split(scanLines)
	for s.Scan() {
		if len(s.Bytes()) == 0 {
			continue
		}
		log.Info().Str("stream", name).Msg(s.Text())
	}
	if err := s.Err(); err != nil {
		log.Debug().Err(err).Str("stream", name).Msg("output scan stopped")
	}
	// The child blocks on a full pipe unless the rest is read.
	_, _ = io.Copy(io.Discard, r)
}

// scanLines splits on \n or \r, so progress bars redrawn with carriage
// returns become lines. A line that fills the buffer is emitted as is.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF || len(data) >= maxLineBytes {
		return len(data), data, nil
	}
	return 0, nil, nil
}
