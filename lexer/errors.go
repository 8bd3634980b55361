// File: lexer/errors.go
package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedLiteral reports a string or char literal whose opening
	// quote has no matching closing quote before the input ends.
	ErrUnterminatedLiteral = errors.New("unterminated literal")

	// ErrUnrecognizedCharacter reports a character that matches no token
	// kind and starts no multi-character construct.
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
)

// LexError is a classification failure. Offset is the rune offset of the
// offending character (for literals, of the opening quote) and Kind is the
// kind the lexer was attempting to scan.
type LexError struct {
	Offset int
	Kind   TokenKind
	Err    error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v at offset %d while scanning %s", e.Err, e.Offset, e.Kind)
}

func (e *LexError) Unwrap() error {
	return e.Err
}
