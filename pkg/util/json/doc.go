// ABOUTME: JSON manipulation utilities with schema support and streaming.
// ABOUTME: Enhanced JSON operations including merging, patching, and validation.
// Package json provides enhanced JSON manipulation utilities beyond the
// standard library. It includes schema-aware operations, streaming support,
// JSON merging and patching, and integration with the schema validation
// system for type-safe JSON handling.
//
// Utilities include:
//   - Schema-based JSON validation
//   - JSON merging and patching
//   - Streaming JSON processing
//   - Pretty printing and formatting
//   - JSON pointer operations
package json
