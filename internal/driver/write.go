package driver

import (
	"os"
	"strings"
)

// ExpandedExt is appended (replacing SourceExt) to expansion output files.
const ExpandedExt = ".expanded.vx"

// RenderExpansion prints the generated declarations of one file as source
// text. Empty when the file generated nothing.
func RenderExpansion(result *FileResult) string {
	if len(result.Generated) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, g := range result.Generated {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if g.DeclName != "" {
			sb.WriteString("// ")
			sb.WriteString(g.DeclName)
			sb.WriteByte('\n')
		}
		sb.WriteString(g.Method.Render())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteExpansion writes the generated declarations next to the source file
// and returns the output path. Files that generated nothing produce no
// output and return "".
func WriteExpansion(result *FileResult) (string, error) {
	text := RenderExpansion(result)
	if text == "" {
		return "", nil
	}
	outPath := strings.TrimSuffix(result.Path, SourceExt) + ExpandedExt
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}
