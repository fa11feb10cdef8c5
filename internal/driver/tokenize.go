package driver

import (
	"viewmacro/internal/diag"
	"viewmacro/internal/lexer"
	"viewmacro/internal/parser"
	"viewmacro/internal/source"
	"viewmacro/internal/token"
)

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads and tokenizes a single file, EOF token included.
func Tokenize(filePath string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(fs.Get(fileID), lexer.Options{
		Reporter: parser.LexReporter{R: diag.BagReporter{Bag: bag}},
	})

	return &TokenizeResult{
		FileSet: fs,
		FileID:  fileID,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
