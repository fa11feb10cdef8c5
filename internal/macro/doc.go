// Package macro implements the @ViewAction attribute expansion.
//
// One expansion is a pure function of an annotated declaration and the
// attribute's argument list. It runs three steps:
//
//  1. Invariant check: the declaration's direct member list must contain a
//     stored property named 'store'. Failure emits one error diagnostic
//     anchored at the attribute and aborts the expansion.
//  2. Scan: every descendant node of the declaration is visited and each
//     direct 'store.send' / '<expr>.store.send' access point gets a warning
//     diagnostic. Scanning never aborts anything.
//  3. Synthesis: when the attribute carries exactly one argument of the
//     shape '<Type>.state', a forwarding 'send' method is generated.
//     Any other argument list is an accepted no-op.
//
// Diagnostics carry the stable 'ViewActionMacro' domain; message text lives
// in the case registry and may change, the (domain, id) pairs must not.
package macro
