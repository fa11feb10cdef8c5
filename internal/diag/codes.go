package diag

// Code is the stable identifier of a diagnostic case: a tooling domain plus
// a case ID within it. The pair is what suppression and external tooling key
// on, so both parts must stay stable across releases.
type Code struct {
	Domain string
	ID     string
}

func (c Code) String() string {
	if c.Domain == "" && c.ID == "" {
		return "unknown"
	}
	return c.Domain + "." + c.ID
}

// Diagnostic domains.
const (
	DomainIO    = "ViewMacroIO"
	DomainLex   = "ViewMacroLex"
	DomainParse = "ViewMacroParse"
	// DomainMacro is the expansion domain; its case IDs are owned by the
	// macro message registry.
	DomainMacro = "ViewActionMacro"
)

// I/O cases.
var (
	IOLoadFile = Code{DomainIO, "loadFile"}
)

// Lexical cases.
var (
	LexUnknownChar              = Code{DomainLex, "unknownChar"}
	LexUnterminatedString       = Code{DomainLex, "unterminatedString"}
	LexUnterminatedBlockComment = Code{DomainLex, "unterminatedBlockComment"}
)

// Parser cases.
var (
	SynUnexpectedToken    = Code{DomainParse, "unexpectedToken"}
	SynUnexpectedTopLevel = Code{DomainParse, "unexpectedTopLevel"}
	SynExpectIdentifier   = Code{DomainParse, "expectIdentifier"}
	SynExpectColon        = Code{DomainParse, "expectColon"}
	SynExpectType         = Code{DomainParse, "expectType"}
	SynExpectExpression   = Code{DomainParse, "expectExpression"}
	SynUnclosedBrace      = Code{DomainParse, "unclosedBrace"}
	SynUnclosedParen      = Code{DomainParse, "unclosedParen"}
)
