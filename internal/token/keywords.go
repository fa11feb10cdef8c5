package token

var keywords = map[string]Kind{
	"struct":    KwStruct,
	"class":     KwClass,
	"enum":      KwEnum,
	"actor":     KwActor,
	"extension": KwExtension,
	"protocol":  KwProtocol,
	"var":       KwVar,
	"let":       KwLet,
	"func":      KwFunc,
	"case":      KwCase,
	"self":      KwSelf,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
