// Package healing resolves malformed structured-output payloads.
//
// The Orchestrator runs one healing session per Resolve call: a payload
// that already parses and validates returns immediately without touching
// the healer model; anything else gets a bounded number of repair rounds,
// each sending the original payload and the latest validation errors to a
// dedicated healer model. Terminal failure behavior follows the configured
// mode: strict surfaces a StructuredOutputError with full diagnostic
// context, gentle returns nil data so pipelines can degrade rather than
// crash.
package healing
