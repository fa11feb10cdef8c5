package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwActor represents the 'actor' keyword.
	KwActor // actor
	// KwExtension represents the 'extension' keyword.
	KwExtension // extension
	// KwProtocol represents the 'protocol' keyword.
	KwProtocol // protocol
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwSelf represents the 'self' keyword.
	KwSelf // self

	// IntLit represents an integer literal token.
	IntLit
	// StringLit represents a string literal token.
	StringLit

	// At represents the '@' token introducing an attribute.
	At // @
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Dot represents the dot token.
	Dot // .
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Assign represents the '=' token.
	Assign // =
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwStruct:    "KwStruct",
	KwClass:     "KwClass",
	KwEnum:      "KwEnum",
	KwActor:     "KwActor",
	KwExtension: "KwExtension",
	KwProtocol:  "KwProtocol",
	KwVar:       "KwVar",
	KwLet:       "KwLet",
	KwFunc:      "KwFunc",
	KwCase:      "KwCase",
	KwSelf:      "KwSelf",
	IntLit:      "IntLit",
	StringLit:   "StringLit",
	At:          "At",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Dot:         "Dot",
	Comma:       "Comma",
	Colon:       "Colon",
	Assign:      "Assign",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
