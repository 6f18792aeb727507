// Package manager forwards generation, chat and model requests to the
// inference daemon and reports service status. It is structured into small
// files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and sampling defaults.
//   - types.go: the daemon client and supervisor interfaces it consumes.
//   - errors.go: error types and helpers (IsValidation, IsUpstream).
//   - generate.go / chat.go: request forwarding.
//   - models.go: list, pull and ensure-present for models.
//   - status_report.go: Health and Status reporting.
//   - metrics.go: upstream call metrics.
//
// Daemon calls are blocking and non-streaming: one request, one response.
package manager
