package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// processBounds parses the bounds bucket as a sequence of entries, each
// matching one of four forms (spec §4.4 Bounds), applying later entries
// over earlier ones in source order (last-writer-wins).
func processBounds(toks []classifier.Token, b *lpmodel.Builder) error {
	i := 0
	for i < len(toks) {
		next, err := matchBoundEntry(toks, i, b)
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}

func matchBoundEntry(toks []classifier.Token, i int, b *lpmodel.Builder) (int, error) {
	n := len(toks)

	// 1. VARIABLE_ID FREE
	if i+1 < n && toks[i].Kind == classifier.VariableID && toks[i+1].Kind == classifier.Free {
		ref := b.Intern(toks[i].Name)
		b.SetBounds(ref, negInf, posInf)
		return i + 2, nil
	}

	// 2. CONSTANT COMPARISON(<=) VARIABLE_ID COMPARISON(<=) CONSTANT
	if i+4 < n && toks[i].Kind == classifier.Constant &&
		toks[i+1].Kind == classifier.Comparison && toks[i+1].Op == classifier.OpLE &&
		toks[i+2].Kind == classifier.VariableID &&
		toks[i+3].Kind == classifier.Comparison && toks[i+3].Op == classifier.OpLE &&
		toks[i+4].Kind == classifier.Constant {
		ref := b.Intern(toks[i+2].Name)
		b.SetBounds(ref, toks[i].Value, toks[i+4].Value)
		return i + 5, nil
	}

	// 3. CONSTANT COMPARISON VARIABLE_ID
	if i+2 < n && toks[i].Kind == classifier.Constant &&
		toks[i+1].Kind == classifier.Comparison && toks[i+2].Kind == classifier.VariableID {
		op := toks[i+1].Op
		ref := b.Intern(toks[i+2].Name)
		v := toks[i].Value
		switch op {
		case classifier.OpLE:
			b.SetLower(ref, v)
		case classifier.OpGE:
			b.SetUpper(ref, v)
		case classifier.OpEqual:
			b.SetBounds(ref, v, v)
		default:
			return i, lperr.New(lperr.ErrSemanticStrictCompare, toks[i+1].Pos,
				"strict '<' or '>' is not allowed in bounds")
		}
		return i + 3, nil
	}

	// 4. VARIABLE_ID COMPARISON CONSTANT
	if i+2 < n && toks[i].Kind == classifier.VariableID &&
		toks[i+1].Kind == classifier.Comparison && toks[i+2].Kind == classifier.Constant {
		op := toks[i+1].Op
		ref := b.Intern(toks[i].Name)
		v := toks[i+2].Value
		switch op {
		case classifier.OpLE:
			b.SetUpper(ref, v)
		case classifier.OpGE:
			b.SetLower(ref, v)
		case classifier.OpEqual:
			b.SetBounds(ref, v, v)
		default:
			return i, lperr.New(lperr.ErrSemanticStrictCompare, toks[i+1].Pos,
				"strict '<' or '>' is not allowed in bounds")
		}
		return i + 3, nil
	}

	return i, lperr.New(lperr.ErrStructTrailingTokens, endOfBucketPos(toks, i),
		"unrecognized bounds entry")
}
