package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
)

// processEnd verifies the end bucket is empty (spec §4.4 End).
func processEnd(toks []classifier.Token) error {
	if len(toks) != 0 {
		return lperr.New(lperr.ErrStructNonEmptyEnd, toks[0].Pos, "'end' section must be empty")
	}
	return nil
}
