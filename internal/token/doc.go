// Package token defines lexical token kinds and trivia for viewmacro sources.
// Invariants:
//   - Token.Text is exactly the source text covered by Token.Span.
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute token kinds.
//   - Type names are identifiers; the lexer knows nothing about declarations.
package token
