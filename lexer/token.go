// File: lexer/token.go
package lexer

import "encoding/json"

// Token represents one classified lexeme. Start and End are rune offsets
// into the original input; End is exclusive. Text is the exact substring
// consumed, so concatenating the Text of every token in a stream
// reproduces the input.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
}

// TokenKind represents the lexical category of a token.
type TokenKind int

// Token kinds
const (
	KindIllegal TokenKind = iota
	KindEOF

	// Whitespace, one kind per character class
	KindWhitespace // spaces
	KindTab
	KindNewline

	// Literals
	KindIdentifier
	KindNumber
	KindString
	KindChar

	// Brackets
	KindLParen   // (
	KindRParen   // )
	KindLBracket // [
	KindRBracket // ]
	KindLBrace   // {
	KindRBrace   // }

	// Arithmetic and comparison
	KindPlus    // +
	KindMinus   // -
	KindStar    // *
	KindSlash   // /
	KindPercent // %
	KindEquals  // =
	KindBang    // !
	KindLess    // < (also the left angle bracket)
	KindGreater // > (also the right angle bracket)

	// Bitwise, each with a keyword alias spelling
	KindBitAnd // & or "and"
	KindBitOr  // | or "or"
	KindBitXor // ^ or "xor"
	KindBitNot // ~ or "not"

	// Currency and typographic symbols
	KindDollar     // $
	KindHash       // #
	KindAt         // @
	KindUnderscore // _
	KindComma      // ,
	KindDot        // .
	KindColon      // :
	KindSemicolon  // ;
	KindQuestion   // ?
	KindBacktick   // `

	// Multi-character operators
	KindIncrement // ++
	KindDecrement // --
	KindPower     // **

	// Compound assignment operators
	KindPlusAssign  // +=
	KindMinusAssign // -=
	KindStarAssign  // *=
	KindSlashAssign // /=
)

// Keywords maps keyword-like operator spellings to the same kinds as
// their symbolic forms.
var Keywords = map[string]TokenKind{
	"and": KindBitAnd,
	"or":  KindBitOr,
	"xor": KindBitXor,
	"not": KindBitNot,
}

// symbols maps every recognized single-character lexeme to its kind.
// The quote characters are absent on purpose: they open literals instead
// of standing alone.
var symbols = map[rune]TokenKind{
	'(': KindLParen,
	')': KindRParen,
	'[': KindLBracket,
	']': KindRBracket,
	'{': KindLBrace,
	'}': KindRBrace,
	'+': KindPlus,
	'-': KindMinus,
	'*': KindStar,
	'/': KindSlash,
	'%': KindPercent,
	'=': KindEquals,
	'!': KindBang,
	'<': KindLess,
	'>': KindGreater,
	'&': KindBitAnd,
	'|': KindBitOr,
	'^': KindBitXor,
	'~': KindBitNot,
	'$': KindDollar,
	'#': KindHash,
	'@': KindAt,
	'_': KindUnderscore,
	',': KindComma,
	'.': KindDot,
	':': KindColon,
	';': KindSemicolon,
	'?': KindQuestion,
	'`': KindBacktick,
}

// operators maps the two-character operator lexemes. A match here always
// wins over the single-character kind of the first character.
var operators = map[string]TokenKind{
	"++": KindIncrement,
	"--": KindDecrement,
	"**": KindPower,
	"+=": KindPlusAssign,
	"-=": KindMinusAssign,
	"*=": KindStarAssign,
	"/=": KindSlashAssign,
}

var kindNames = map[TokenKind]string{
	KindIllegal:     "Illegal",
	KindEOF:         "EOF",
	KindWhitespace:  "Whitespace",
	KindTab:         "Tab",
	KindNewline:     "Newline",
	KindIdentifier:  "Identifier",
	KindNumber:      "Number",
	KindString:      "String",
	KindChar:        "Char",
	KindLParen:      "LParen",
	KindRParen:      "RParen",
	KindLBracket:    "LBracket",
	KindRBracket:    "RBracket",
	KindLBrace:      "LBrace",
	KindRBrace:      "RBrace",
	KindPlus:        "Plus",
	KindMinus:       "Minus",
	KindStar:        "Star",
	KindSlash:       "Slash",
	KindPercent:     "Percent",
	KindEquals:      "Equals",
	KindBang:        "Bang",
	KindLess:        "Less",
	KindGreater:     "Greater",
	KindBitAnd:      "BitAnd",
	KindBitOr:       "BitOr",
	KindBitXor:      "BitXor",
	KindBitNot:      "BitNot",
	KindDollar:      "Dollar",
	KindHash:        "Hash",
	KindAt:          "At",
	KindUnderscore:  "Underscore",
	KindComma:       "Comma",
	KindDot:         "Dot",
	KindColon:       "Colon",
	KindSemicolon:   "Semicolon",
	KindQuestion:    "Question",
	KindBacktick:    "Backtick",
	KindIncrement:   "Increment",
	KindDecrement:   "Decrement",
	KindPower:       "Power",
	KindPlusAssign:  "PlusAssign",
	KindMinusAssign: "MinusAssign",
	KindStarAssign:  "StarAssign",
	KindSlashAssign: "SlashAssign",
}

// String returns the kind's name for diagnostics and CLI output.
func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON serializes the kind as its name.
func (k TokenKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// MarshalJSON serializes a token as {kind, text, start, end}.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  TokenKind `json:"kind"`
		Text  string    `json:"text"`
		Start int       `json:"start"`
		End   int       `json:"end"`
	}{t.Kind, t.Text, t.Start, t.End})
}
