// Package lperr provides the single user-visible error type for the LP
// parser: a malformed-input error carrying a source position and, where
// available, the offending token text. Internally it distinguishes the
// four sub-kinds useful for tests (lex, classify, structure, semantic)
// through a Code, but callers of pkg/lpfile see only the one category.
package lperr

import (
	"fmt"
	"strings"
)

// Position identifies a location in the input: a 1-based line number and
// a 1-based column counted in bytes from the start of that line (LP files
// are ASCII, so byte and rune offsets coincide).
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Code names one of the four internal error sub-kinds from spec §7.
type Code string

const (
	// Lex errors: unrecognized leading byte with no viable number/identifier.
	ErrLexUnrecognizedByte Code = "E_LEX_UNRECOGNIZED_BYTE"

	// Classify errors: raw-token sequence matches no classifier pattern.
	ErrClassifyNoMatch     Code = "E_CLASSIFY_NO_MATCH"
	ErrClassifyBadSOSDigit Code = "E_CLASSIFY_BAD_SOS_DIGIT"

	// Structural errors.
	ErrStructDuplicateSection Code = "E_STRUCT_DUPLICATE_SECTION"
	ErrStructNonEmptyEnd      Code = "E_STRUCT_NONEMPTY_END"
	ErrStructBracketMismatch  Code = "E_STRUCT_BRACKET_MISMATCH"
	ErrStructMissingHalf      Code = "E_STRUCT_MISSING_HALF"
	ErrStructUnexpectedHalf   Code = "E_STRUCT_UNEXPECTED_HALF"
	ErrStructTrailingTokens   Code = "E_STRUCT_TRAILING_TOKENS"

	// Semantic errors.
	ErrSemanticRHSNotConstant Code = "E_SEMANTIC_RHS_NOT_CONSTANT"
	ErrSemanticStrictCompare  Code = "E_SEMANTIC_STRICT_COMPARE"
	ErrSemanticBadExponent    Code = "E_SEMANTIC_BAD_EXPONENT"
	ErrSemanticBadDivisor     Code = "E_SEMANTIC_BAD_DIVISOR"
)

// Error is the parse-error condition raised by pkg/lpfile.Read. It always
// aborts the parse; no partial model is ever returned alongside it.
type Error struct {
	Code    Code
	Message string
	Pos     Position
	Token   string // offending raw token text, when available
	Source  string // the full input, for caret rendering; may be empty
}

func New(code Code, pos Position, message string) *Error {
	return &Error{Code: code, Message: message, Pos: pos}
}

func (e *Error) WithToken(tok string) *Error {
	e.Token = tok
	return e
}

func (e *Error) WithSource(src string) *Error {
	e.Source = src
	return e
}

func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the error with source context and a caret indicator,
// matching the teacher's CompilerError.Format technique. If color is true,
// the caret is wrapped in ANSI red-bold escapes.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	if e.Token != "" {
		fmt.Fprintf(&sb, " (near %q)", e.Token)
	}

	line := e.sourceLine(e.Pos.Line)
	if line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func (e *Error) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[n-1], "\r")
}
