package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// processConstraints repeatedly parses an expression followed by a
// mandatory comparison and constant right-hand side (spec §4.4
// Constraints), appending each finished constraint to the model in
// source order.
func processConstraints(toks []classifier.Token, b *lpmodel.Builder) error {
	i := 0
	for i < len(toks) {
		expr, next, err := parseExpression(toks, i, false, b)
		if err != nil {
			return err
		}
		i = next

		if i >= len(toks) || toks[i].Kind != classifier.Comparison {
			pos := endOfBucketPos(toks, i)
			return lperr.New(lperr.ErrSemanticRHSNotConstant, pos,
				"constraint is missing a comparison operator")
		}
		op := toks[i].Op
		opPos := toks[i].Pos
		i++

		if i >= len(toks) || toks[i].Kind != classifier.Constant {
			pos := endOfBucketPos(toks, i)
			return lperr.New(lperr.ErrSemanticRHSNotConstant, pos,
				"constraint right-hand side must be a constant")
		}
		rhs := toks[i].Value
		i++

		lower, upper, err := boundsFromComparison(op, rhs, opPos)
		if err != nil {
			return err
		}

		b.AddConstraint(lpmodel.Constraint{Expr: expr, Lower: lower, Upper: upper})
	}
	return nil
}

// boundsFromComparison turns a constraint's operator and right-hand-side
// value into its lower/upper bounds (spec §4.4 Constraints). Strict '<'
// and '>' are rejected in this context.
func boundsFromComparison(op classifier.CompareOp, v float64, pos lperr.Position) (lower, upper float64, err error) {
	switch op {
	case classifier.OpEqual:
		return v, v, nil
	case classifier.OpLE:
		return negInf, v, nil
	case classifier.OpGE:
		return v, posInf, nil
	default:
		return 0, 0, lperr.New(lperr.ErrSemanticStrictCompare, pos,
			"strict '<' or '>' is not allowed as a constraint comparison")
	}
}

// endOfBucketPos returns the position to blame when a bucket runs out of
// tokens mid-pattern: the last seen token's position if any, else a zero
// position.
func endOfBucketPos(toks []classifier.Token, i int) lperr.Position {
	if i < len(toks) {
		return toks[i].Pos
	}
	if len(toks) > 0 {
		return toks[len(toks)-1].Pos
	}
	return lperr.Position{}
}
