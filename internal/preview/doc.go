// Package preview persists rendered document previews and manages the
// temp-file sessions host editors display. Storage is pluggable: a Bun-backed
// repository for durable stores and an in-memory repository for tests and
// ephemeral use.
package preview
