package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"viewmacro/internal/diag"
	"viewmacro/internal/source"
)

// Pretty writes diagnostics in a human-readable form. It walks bag.Items()
// in order, so callers that want positional order run bag.Sort() first.
// Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEVERITY> <code>: <message>
//	    <source line>
//	    ^~~~~~
//
// followed by its notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, fs, opts, d.Severity, d.Code, d.Primary, d.Message)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writePretty(w, fs, opts, diag.SevInfo, diag.Code{}, note.Span, "note: "+note.Msg)
			}
		}
	}
}

func writePretty(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev diag.Severity, code diag.Code, span source.Span, msg string) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	head := sev.String()
	if code != (diag.Code{}) {
		head += " " + code.String()
	}
	if opts.Color {
		head = sevColor(sev).Sprint(head)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		f.FormatPath(opts.PathMode.mode(), fs.BaseDir()),
		start.Line, start.Col, head, msg)

	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	marker := caretLine(line, start.Col, span.Len())
	if opts.Color {
		marker = sevColor(sev).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s\n", marker)
}

// caretLine builds the ^~~~ underline for a span starting at the 1-based
// column, clamped to the rendered line. Tabs in the prefix are preserved so
// the caret stays aligned.
func caretLine(line string, col uint32, spanLen uint32) string {
	if col == 0 {
		col = 1
	}
	prefixEnd := int(col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}

	var sb strings.Builder
	for _, b := range []byte(line[:prefixEnd]) {
		if b == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}

	width := int(spanLen)
	if rest := len(line) - prefixEnd; width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	sb.WriteByte('^')
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
