package parser

import (
	"viewmacro/internal/diag"
	"viewmacro/internal/source"
)

// LexReporter adapts a diag.Reporter to the lexer's thin reporting
// interface, mapping the lexer's error kinds onto stable diagnostic codes.
type LexReporter struct {
	R diag.Reporter
}

func (lr LexReporter) Report(kind string, sp source.Span, msg string) {
	if lr.R == nil {
		return
	}
	code := diag.LexUnknownChar
	switch kind {
	case "unterminated-string":
		code = diag.LexUnterminatedString
	case "unterminated-block-comment":
		code = diag.LexUnterminatedBlockComment
	}
	lr.R.Report(code, diag.SevError, sp, msg, nil)
}
