package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// processGeneral marks every named variable GeneralInteger, unless a
// later semi-continuous mention promotes it to SemiInteger (spec §4.4
// General / Semi-continuous). General is always processed before semi
// in the fixed section order, so this function runs first and never
// itself sees a prior semi mention.
func processGeneral(toks []classifier.Token, b *lpmodel.Builder) error {
	for _, tok := range toks {
		if tok.Kind != classifier.VariableID {
			return lperr.New(lperr.ErrStructTrailingTokens, tok.Pos,
				"general section entries must be variable names")
		}
		ref := b.Intern(tok.Name)
		b.SetType(ref, lpmodel.GeneralInteger)
	}
	return nil
}

// processSemi marks every named variable SemiContinuous, or SemiInteger
// if it was already GeneralInteger from an earlier general-section
// mention. This order-dependent promotion is the spec's documented
// general/semi interaction (spec §4.4, §9 Open Questions): appearance in
// both sections yields SemiInteger regardless of which section a reader
// might expect to "win".
func processSemi(toks []classifier.Token, b *lpmodel.Builder) error {
	for _, tok := range toks {
		if tok.Kind != classifier.VariableID {
			return lperr.New(lperr.ErrStructTrailingTokens, tok.Pos,
				"semi-continuous section entries must be variable names")
		}
		ref := b.Intern(tok.Name)
		if b.Type(ref) == lpmodel.GeneralInteger {
			b.SetType(ref, lpmodel.SemiInteger)
		} else {
			b.SetType(ref, lpmodel.SemiContinuous)
		}
	}
	return nil
}
