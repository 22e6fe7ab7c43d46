// Package writers turns hits into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON, JSONL, SQLite).
//   - Pipeline stays orchestration-only and never imports writers.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   - Writers are synchronous; the scan is single-threaded.
package writers
