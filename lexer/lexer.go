// File: lexer/lexer.go
package lexer

import (
	"unicode"

	"github.com/farcourt/lexis/cursor"
)

// Lexer tokenizes input text. It composes a rune cursor and drives it one
// lexeme at a time: Next advances onto the first unconsumed character,
// classifies it, consumes the rest of the lexeme and emits the token.
type Lexer struct {
	cur *cursor.Cursor[rune]
}

// New creates a new Lexer over input.
func New(input string) *Lexer {
	return &Lexer{cur: cursor.New([]rune(input))}
}

// Tokenize runs input through a fresh Lexer and returns every token in
// input order. This is the package's one-call boundary contract.
func Tokenize(input string) ([]Token, error) {
	return New(input).Tokenize()
}

// Tokenize drains the lexer, returning every token up to end of input.
// The EOF sentinel is not included, so concatenating the returned tokens'
// Text reproduces the input. The first lexical error terminates the
// stream; a consumer that wants to resume must start a fresh Lexer past
// the error offset.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token from the input. At end of input it returns
// a KindEOF token with empty text, repeatably.
func (l *Lexer) Next() (Token, error) {
	ch, ok := l.cur.AdvanceWithCurrent()
	if !ok {
		n := l.cur.Len()
		return Token{Kind: KindEOF, Start: n, End: n}, nil
	}
	start := l.cur.Position() - 1

	switch {
	case ch == ' ':
		return l.emit(KindWhitespace, l.cur.AdvanceWhile(isSpaceChar), start), nil
	case ch == '\t':
		return l.emit(KindTab, l.cur.AdvanceWhile(isTabChar), start), nil
	case ch == '\n' || ch == '\r':
		return l.emit(KindNewline, l.cur.AdvanceWhile(isLineBreak), start), nil
	case unicode.IsLetter(ch):
		tok := l.emit(KindIdentifier, l.cur.AdvanceWhile(isIdentPart), start)
		if kind, ok := Keywords[tok.Text]; ok {
			tok.Kind = kind
		}
		return tok, nil
	case unicode.IsDigit(ch):
		return l.emit(KindNumber, l.cur.AdvanceWhile(unicode.IsDigit), start), nil
	case ch == '"':
		return l.scanQuoted(ch, KindString, start)
	case ch == '\'':
		return l.scanQuoted(ch, KindChar, start)
	case ch == '+' || ch == '-' || ch == '*' || ch == '/':
		return l.scanOperator(ch, start), nil
	}

	if kind, ok := symbols[ch]; ok {
		return Token{Kind: kind, Text: string(ch), Start: start, End: start + 1}, nil
	}
	return Token{}, &LexError{Offset: start, Kind: KindIllegal, Err: ErrUnrecognizedCharacter}
}

// scanOperator applies maximal munch: the two-character operator table is
// consulted before falling back to the single-character kind.
func (l *Lexer) scanOperator(ch rune, start int) Token {
	if next, err := l.cur.Peek(1); err == nil {
		if kind, ok := operators[string([]rune{ch, next})]; ok {
			l.cur.Advance()
			return Token{Kind: kind, Text: string([]rune{ch, next}), Start: start, End: start + 2}
		}
	}
	return Token{Kind: symbols[ch], Text: string(ch), Start: start, End: start + 1}
}

// scanQuoted consumes a string or char literal, including both quotes.
// A backslash escapes the character after it, so an escaped quote does
// not close the literal. Reaching end of input first is an error at the
// opening quote's offset.
func (l *Lexer) scanQuoted(quote rune, kind TokenKind, start int) (Token, error) {
	text := []rune{quote}
	for {
		ch, ok := l.cur.AdvanceWithCurrent()
		if !ok {
			return Token{}, &LexError{Offset: start, Kind: kind, Err: ErrUnterminatedLiteral}
		}
		text = append(text, ch)
		if ch == '\\' {
			esc, ok := l.cur.AdvanceWithCurrent()
			if !ok {
				return Token{}, &LexError{Offset: start, Kind: kind, Err: ErrUnterminatedLiteral}
			}
			text = append(text, esc)
			continue
		}
		if ch == quote {
			return Token{Kind: kind, Text: string(text), Start: start, End: start + len(text)}, nil
		}
	}
}

func (l *Lexer) emit(kind TokenKind, run []rune, start int) Token {
	return Token{Kind: kind, Text: string(run), Start: start, End: start + len(run)}
}

func isSpaceChar(ch rune) bool {
	return ch == ' '
}

func isTabChar(ch rune) bool {
	return ch == '\t'
}

func isLineBreak(ch rune) bool {
	return ch == '\n' || ch == '\r'
}

// isIdentPart reports whether ch may continue an identifier. The first
// character must be a letter; continuations may be letters or digits.
func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
