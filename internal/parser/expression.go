package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// parseExpression is the recursive-descent expression grammar shared by
// the objective and constraint processors (spec §4.4). It is a pure
// function over a token slice and a cursor: it returns the parsed
// Expression and the advanced index, never mutating toks. When no further
// pattern matches, it returns with i pointing at the first unconsumed
// token; the caller is responsible for validating what remains.
func parseExpression(toks []classifier.Token, i int, isObjective bool, b *lpmodel.Builder) (lpmodel.Expression, int, error) {
	var expr lpmodel.Expression

	if i < len(toks) && toks[i].Kind == classifier.ConstraintLabel {
		expr.Name = toks[i].Name
		i++
	}

	for i < len(toks) {
		tok := toks[i]

		switch tok.Kind {
		case classifier.Constant:
			if i+1 < len(toks) && toks[i+1].Kind == classifier.VariableID {
				ref := b.Intern(toks[i+1].Name)
				expr.Linear = append(expr.Linear, lpmodel.LinearTerm{Coefficient: tok.Value, Var: ref})
				i += 2
				continue
			}
			expr.Offset = tok.Value
			i++
			continue

		case classifier.VariableID:
			ref := b.Intern(tok.Name)
			expr.Linear = append(expr.Linear, lpmodel.LinearTerm{Coefficient: 1, Var: ref})
			i++
			continue

		case classifier.BracketOpen:
			quad, halved, next, err := parseQuadraticBlock(toks, i, isObjective, b)
			if err != nil {
				return expr, i, err
			}
			expr.Quad = append(expr.Quad, quad...)
			expr.HalvedQuadratic = expr.HalvedQuadratic || halved
			i = next
			continue
		}

		break
	}

	return expr, i, nil
}

// parseQuadraticBlock parses "[ ... ]" starting at toks[i] (which must be
// BracketOpen) and, when isObjective, the mandatory "/2" trailer that
// follows it. It returns the quadratic terms found, whether a halving
// trailer was consumed, and the advanced index.
func parseQuadraticBlock(toks []classifier.Token, i int, isObjective bool, b *lpmodel.Builder) ([]lpmodel.QuadraticTerm, bool, int, error) {
	open := toks[i].Pos
	i++ // consume BracketOpen

	var terms []lpmodel.QuadraticTerm

	for {
		if i >= len(toks) {
			return nil, false, i, lperr.New(lperr.ErrStructBracketMismatch, open, "unclosed '[' in quadratic block")
		}
		if toks[i].Kind == classifier.BracketClose {
			i++
			break
		}

		term, next, err := matchQuadraticTerm(toks, i, b)
		if err != nil {
			return nil, false, i, err
		}
		if next == i {
			return nil, false, i, lperr.New(lperr.ErrStructBracketMismatch, toks[i].Pos,
				"unexpected token inside quadratic block")
		}
		terms = append(terms, term)
		i = next
	}

	halved := false
	if isObjective {
		if i >= len(toks) || toks[i].Kind != classifier.Slash {
			return nil, false, i, lperr.New(lperr.ErrStructMissingHalf, open,
				"objective quadratic block must be followed by '/2'")
		}
		if i+1 >= len(toks) || toks[i+1].Kind != classifier.Constant {
			return nil, false, i, lperr.New(lperr.ErrStructMissingHalf, toks[i].Pos,
				"objective quadratic block must be followed by '/2'")
		}
		if toks[i+1].Value != 2 {
			return nil, false, i, lperr.New(lperr.ErrSemanticBadDivisor, toks[i+1].Pos,
				"objective quadratic divisor must be 2")
		}
		i += 2
		halved = true
	} else if i < len(toks) && toks[i].Kind == classifier.Slash {
		return nil, false, i, lperr.New(lperr.ErrStructUnexpectedHalf, toks[i].Pos,
			"'/2' trailer is not permitted after a constraint's quadratic block")
	}

	return terms, halved, i, nil
}

// matchQuadraticTerm tries, in priority order, the four patterns legal
// inside a quadratic block:
//
//	CONSTANT VARIABLE_ID CARET CONSTANT(=2)
//	VARIABLE_ID CARET CONSTANT(=2)
//	CONSTANT VARIABLE_ID ASTERISK VARIABLE_ID
//	VARIABLE_ID ASTERISK VARIABLE_ID
func matchQuadraticTerm(toks []classifier.Token, i int, b *lpmodel.Builder) (lpmodel.QuadraticTerm, int, error) {
	n := len(toks)

	if i+3 < n && toks[i].Kind == classifier.Constant && toks[i+1].Kind == classifier.VariableID &&
		toks[i+2].Kind == classifier.Caret && toks[i+3].Kind == classifier.Constant {
		if toks[i+3].Value != 2 {
			return lpmodel.QuadraticTerm{}, i, lperr.New(lperr.ErrSemanticBadExponent, toks[i+3].Pos,
				"quadratic term exponent must be 2")
		}
		ref := b.Intern(toks[i+1].Name)
		return lpmodel.QuadraticTerm{Coefficient: toks[i].Value, Var1: ref, Var2: ref}, i + 4, nil
	}

	if i+2 < n && toks[i].Kind == classifier.VariableID && toks[i+1].Kind == classifier.Caret &&
		toks[i+2].Kind == classifier.Constant {
		if toks[i+2].Value != 2 {
			return lpmodel.QuadraticTerm{}, i, lperr.New(lperr.ErrSemanticBadExponent, toks[i+2].Pos,
				"quadratic term exponent must be 2")
		}
		ref := b.Intern(toks[i].Name)
		return lpmodel.QuadraticTerm{Coefficient: 1, Var1: ref, Var2: ref}, i + 3, nil
	}

	if i+3 < n && toks[i].Kind == classifier.Constant && toks[i+1].Kind == classifier.VariableID &&
		toks[i+2].Kind == classifier.Asterisk && toks[i+3].Kind == classifier.VariableID {
		ref1 := b.Intern(toks[i+1].Name)
		ref2 := b.Intern(toks[i+3].Name)
		return lpmodel.QuadraticTerm{Coefficient: toks[i].Value, Var1: ref1, Var2: ref2}, i + 4, nil
	}

	if i+2 < n && toks[i].Kind == classifier.VariableID && toks[i+1].Kind == classifier.Asterisk &&
		toks[i+2].Kind == classifier.VariableID {
		ref1 := b.Intern(toks[i].Name)
		ref2 := b.Intern(toks[i+2].Name)
		return lpmodel.QuadraticTerm{Coefficient: 1, Var1: ref1, Var2: ref2}, i + 3, nil
	}

	return lpmodel.QuadraticTerm{}, i, nil
}
