package lexer

import (
	"viewmacro/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; formatting happens in the outer layer.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // nil means errors are dropped (lexing still continues)
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
