// Package diag defines the diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide stable numeric codes for every failure class the compiler can
//     report (metadata schema, registry resolution, selector analysis, io).
//   - Offer one error type that carries a code plus a human message, so the
//     CLI can render "[REG2001]: ..." lines and tests can assert on codes.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. The pipeline
// is fail-fast: producers return the first *Error they hit and the stage
// aborts, so there is no collection, severity, or fix-suggestion model here.
//
// # Code ranges
//
//   - 1000-1999 MET: metadata document schema errors
//   - 2000-2999 REG: type registry resolution errors
//   - 3000-3999 SEL: selector and interface analysis errors
//   - 4000-4999 IO: input/output failures
//
// Keep the code space deterministic: codes are part of the CLI contract and
// tests assert on them, so renumbering an existing code is a breaking change.
package diag
