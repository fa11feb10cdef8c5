// Package fuzztests houses Go fuzz harnesses that exercise the front half of
// the expansion pipeline (source -> lexer -> parser -> macro). Its goal is to
// smoke test robustness and guard against panics or hangs on arbitrary
// inputs.
package fuzztests
