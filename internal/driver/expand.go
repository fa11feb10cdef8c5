package driver

import (
	"fortio.org/safecast"

	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
	"viewmacro/internal/lexer"
	"viewmacro/internal/macro"
	"viewmacro/internal/parser"
	"viewmacro/internal/source"
)

// ExpandedDecl pairs one annotated declaration with the method synthesized
// for it.
type ExpandedDecl struct {
	DeclName string // empty when the declaration kind has no name
	Method   macro.GeneratedDecl
}

// FileResult is the outcome of expanding one source file.
type FileResult struct {
	Path      string
	FileID    source.FileID
	ASTFile   ast.FileID
	Builder   *ast.Builder
	Bag       *diag.Bag
	Generated []ExpandedDecl
}

// ExpandFile loads, parses, and macro-expands a single file with its own
// FileSet. The command layer uses this for one-shot runs.
func ExpandFile(filePath string, maxDiagnostics int) (*source.FileSet, *FileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, nil, err
	}
	result, err := expandLoaded(fs, fileID, filePath, maxDiagnostics)
	if err != nil {
		return nil, nil, err
	}
	return fs, result, nil
}

// expandLoaded runs lexing, parsing, and expansion over an already loaded
// file. Safe to call concurrently for distinct files: each call builds its
// own arenas and bag, and only reads the shared FileSet.
func expandLoaded(fs *source.FileSet, fileID source.FileID, path string, maxDiagnostics int) (*FileResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	// Dedup at the file fan-in: when an annotated declaration nests another
	// annotated one, both expansions scan the inner body and would report the
	// same occurrence twice. Distinct occurrences keep distinct spans, so
	// per-occurrence scanner repetition survives.
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	lx := lexer.New(file, lexer.Options{Reporter: parser.LexReporter{R: reporter}})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	parsed := parser.ParseFile(lx, builder, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  reporter,
	})

	result := &FileResult{
		Path:    path,
		FileID:  fileID,
		ASTFile: parsed.File,
		Builder: builder,
		Bag:     bag,
	}
	result.Generated = expandDecls(builder, parsed.File, reporter)
	bag.Sort()
	return result, nil
}

// expandDecls walks every declaration in the file, nested ones included, and
// expands each one annotated with @ViewAction.
func expandDecls(b *ast.Builder, fileID ast.FileID, r diag.Reporter) []ExpandedDecl {
	file := b.Files.Get(fileID)
	if file == nil {
		return nil
	}

	var out []ExpandedDecl
	stack := make([]ast.DeclID, len(file.Decls))
	copy(stack, file.Decls)
	// The file lists declarations in source order; reverse the pops to keep
	// the output in that order too.
	reverse(stack)

	for len(stack) > 0 {
		declID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		decl := b.Decls.Get(declID)
		if decl == nil {
			continue
		}

		if attrID, ok := macro.FindAttr(b, decl); ok {
			for _, g := range macro.Expand(b, declID, attrID, r) {
				out = append(out, ExpandedDecl{
					DeclName: macro.DisplayName(b, decl),
					Method:   g,
				})
			}
		}

		nested := nestedDecls(b, decl)
		reverse(nested)
		stack = append(stack, nested...)
	}
	return out
}

func nestedDecls(b *ast.Builder, decl *ast.Decl) []ast.DeclID {
	var out []ast.DeclID
	for _, memberID := range decl.Members {
		if nestedID, ok := b.Members.NestedDecl(memberID); ok {
			out = append(out, nestedID)
		}
	}
	return out
}

func reverse(s []ast.DeclID) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
