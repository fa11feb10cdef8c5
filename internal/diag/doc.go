// Package diag defines the diagnostic model shared by every phase.
//
// Diagnostic is the central record: Severity (info/warning/error), a stable
// Code (tooling domain + case ID), a human message, the primary span, and
// optional notes. The (domain, id) pair is the contract with suppression and
// external tooling; message text may change between releases, the pair must
// not.
//
// Producers emit through the Reporter interface and stay decoupled from
// storage. BagReporter aggregates into a Bag, which supports a hard capacity,
// deterministic sorting, and severity filtering. Rendering lives in
// internal/diagfmt; this package performs no IO beyond the short single-line
// format used by golden tests.
package diag
