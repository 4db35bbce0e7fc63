// Package classifier rewrites the lexer's raw-token sequence into a
// processed-token sequence whose categories are meaningful to the LP
// grammar: section headers, objective sense, constraint labels, variable
// identifiers, signed constants, comparison operators, brackets,
// operators, SOS-type markers, and the free/infinity words.
package classifier

import "github.com/cwbudde/golp/internal/lperr"

// Kind identifies the category of a processed token.
type Kind int

const (
	SectionHeader Kind = iota
	ConstraintLabel
	VariableID
	Constant
	Comparison
	BracketOpen
	BracketClose
	Free
	Slash
	Asterisk
	Caret
	SOSType
)

// SectionKind identifies which section a SectionHeader token introduces.
type SectionKind int

const (
	SectionObjective SectionKind = iota
	SectionConstraints
	SectionBounds
	SectionGeneral
	SectionBinary
	SectionSemiContinuous
	SectionSOS
	SectionEnd
)

func (k SectionKind) String() string {
	switch k {
	case SectionObjective:
		return "objective"
	case SectionConstraints:
		return "constraints"
	case SectionBounds:
		return "bounds"
	case SectionGeneral:
		return "general"
	case SectionBinary:
		return "binary"
	case SectionSemiContinuous:
		return "semi-continuous"
	case SectionSOS:
		return "sos"
	case SectionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Sense is the objective direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// CompareOp is a comparison glyph as it appears in the source. Note that
// both the strict (<, >) and relaxed (<=, >=, =) forms survive to this
// layer; section processors reject the strict forms where the grammar
// requires relaxed ones.
type CompareOp int

const (
	OpLess CompareOp = iota
	OpLE
	OpEqual
	OpGE
	OpGreater
)

func (op CompareOp) String() string {
	switch op {
	case OpLess:
		return "<"
	case OpLE:
		return "<="
	case OpEqual:
		return "="
	case OpGE:
		return ">="
	case OpGreater:
		return ">"
	default:
		return "?"
	}
}

// Token is a single processed token. Only the fields relevant to Kind are
// meaningful; the rest are zero.
type Token struct {
	Kind    Kind
	Section SectionKind // SectionHeader
	Sense   Sense       // SectionHeader, when Section == SectionObjective
	Name    string      // ConstraintLabel, VariableID
	Value   float64     // Constant
	Op      CompareOp   // Comparison
	Digit   int         // SOSType: 1 or 2
	Pos     lperr.Position
}
