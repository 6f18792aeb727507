package manager

import (
	"errors"
	"net/http"

	"github.com/ollama/ollama/api"
)

// ValidationError signals a malformed request (400).
type ValidationError struct{ msg string }

func (e ValidationError) Error() string   { return e.msg }
func (e ValidationError) StatusCode() int { return http.StatusBadRequest }

// ErrValidation constructs a ValidationError with a client-facing message.
func ErrValidation(msg string) error { return ValidationError{msg: msg} }

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// UpstreamError wraps a daemon failure. Its message is the raw daemon error
// text so clients see what the daemon said.
type UpstreamError struct {
	Op    string
	Model string
	Err   error
}

func (e *UpstreamError) Error() string   { return e.Err.Error() }
func (e *UpstreamError) Unwrap() error   { return e.Err }
func (e *UpstreamError) StatusCode() int { return http.StatusInternalServerError }

// IsUpstream reports whether err came from the daemon or the transport to it.
func IsUpstream(err error) bool {
	var u *UpstreamError
	return errors.As(err, &u)
}

// UpstreamStatus returns the daemon's HTTP status for err, or 0 when the
// daemon did not answer with one.
func UpstreamStatus(err error) int {
	var se api.StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	var sep *api.StatusError
	if errors.As(err, &sep) && sep != nil {
		return sep.StatusCode
	}
	return 0
}

func (m *Manager) upstream(op, model string, err error) error {
	ev := m.log.Error().Err(err).Str("op", op)
	if model != "" {
		ev = ev.Str("model", model)
	}
	if code := UpstreamStatus(err); code != 0 {
		ev = ev.Int("upstream_status", code)
	}
	ev.Msg("daemon call failed")
	return &UpstreamError{Op: op, Model: model, Err: err}
}
