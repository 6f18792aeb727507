package daemon

// Event represents a daemon lifecycle event.
type Event struct {
	Name   string
	PID    int
	Fields map[string]any
}

// Event names.
const (
	EventStart        = "daemon_start"
	EventStartFailed  = "daemon_start_failed"
	EventReady        = "daemon_ready"
	EventExit         = "daemon_exit"
	EventStop         = "daemon_stop"
	EventInstall      = "daemon_install"
	EventInstallError = "daemon_install_failed"
	EventNotInstalled = "daemon_not_installed"
)

// EventPublisher receives events from the supervisor. Implementations should
// be lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
