// Package daemon supervises the local Ollama inference daemon. It is split
// into small files by concern:
//
//   - supervisor.go: Supervisor type, Installed/Running/EnsureReady.
//   - process.go: background launch, exit tracking and Stop.
//   - proc_unix.go / proc_other.go: process-group detach and signalling.
//   - install.go: the explicit, opt-in install step.
//   - status.go: Status snapshot enriched with process stats.
//   - events.go, eventpub_*.go: lifecycle events and publishers.
//   - metrics.go: Prometheus collectors.
//
// The supervisor never installs anything on its own: Install runs only when
// called directly or when AutoInstall is set.
package daemon
