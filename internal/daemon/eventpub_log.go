package daemon

import "github.com/rs/zerolog"

// LogPublisher writes events to a zerolog logger.
type LogPublisher struct {
	Log zerolog.Logger
}

func (p LogPublisher) Publish(e Event) {
	ev := p.Log.Info()
	switch e.Name {
	case EventStartFailed, EventInstallError, EventNotInstalled:
		ev = p.Log.Warn()
	}
	ev = ev.Str("event", e.Name)
	if e.PID > 0 {
		ev = ev.Int("pid", e.PID)
	}
	if len(e.Fields) > 0 {
		ev = ev.Fields(e.Fields)
	}
	ev.Msg("daemon event")
}
