package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// processObjective parses the objective bucket as a single expression
// (spec §4.4 Objective). After parsing, every token must have been
// consumed.
func processObjective(toks []classifier.Token, b *lpmodel.Builder) error {
	expr, i, err := parseExpression(toks, 0, true, b)
	if err != nil {
		return err
	}
	if i != len(toks) {
		return lperr.New(lperr.ErrStructTrailingTokens, toks[i].Pos,
			"unexpected trailing token in objective")
	}
	b.SetObjective(expr)
	return nil
}
