package lexer

import "github.com/cwbudde/golp/internal/lperr"

// TokenType identifies the kind of a raw token produced by the Lexer.
type TokenType int

const (
	STRING TokenType = iota
	NUMBER
	LESS
	GREATER
	EQUAL
	COLON
	LINE_END
	FILE_END
	BRACKET_OPEN
	BRACKET_CLOSE
	PLUS
	MINUS
	CARET
	SLASH
	ASTERISK
)

var tokenNames = map[TokenType]string{
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	LESS:          "LESS",
	GREATER:       "GREATER",
	EQUAL:         "EQUAL",
	COLON:         "COLON",
	LINE_END:      "LINE_END",
	FILE_END:      "FILE_END",
	BRACKET_OPEN:  "BRACKET_OPEN",
	BRACKET_CLOSE: "BRACKET_CLOSE",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	CARET:         "CARET",
	SLASH:         "SLASH",
	ASTERISK:      "ASTERISK",
}

func (t TokenType) String() string {
	if n, ok := tokenNames[t]; ok {
		return n
	}
	return "UNKNOWN"
}

// Token is a single raw token: a tag, its literal text (for STRING), its
// numeric value (for NUMBER), and the position of its first byte. Tokens
// are immutable after emission.
type Token struct {
	Type    TokenType
	Literal string
	Number  float64
	Pos     lperr.Position
}
