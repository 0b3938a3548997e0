// Package manager owns the artifacts loaded at startup and coordinates
// estimates over them. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: lifecycle state, snapshot and background image types.
//   - errors.go: error types and helpers (IsNotReady, IsInvalidInput).
//   - load.go: Load reads manifest, model, dataset and background concurrently.
//   - estimate.go: Estimate entry point with tracing and metrics.
//   - options.go: dashboard choices derived from the manifest and dataset.
//   - status_report.go: Status reporting.
//   - events.go: lifecycle events and publishers.
//
// After Load succeeds nothing reachable from an estimate is mutated, so
// Estimate takes only a read lock to fetch the bound estimator.
package manager
