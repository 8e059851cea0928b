// Package writers turns batch results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV text, JSON, JSONL).
//   • batch stays orchestration-only; the core stays I/O-free.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
