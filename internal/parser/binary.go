package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// processBinary marks every variable named in the binary bucket as
// Binary with bounds [0, 1] (spec §4.4 Binary). Every token must be a
// VARIABLE_ID.
func processBinary(toks []classifier.Token, b *lpmodel.Builder) error {
	for _, tok := range toks {
		if tok.Kind != classifier.VariableID {
			return lperr.New(lperr.ErrStructTrailingTokens, tok.Pos,
				"binary section entries must be variable names")
		}
		ref := b.Intern(tok.Name)
		b.MarkBinary(ref)
	}
	return nil
}
