package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// processSOS parses the SOS bucket as a sequence of groups (spec §4.4
// SOS). Each group is a mandatory CONSTRAINT_LABEL (the group name), a
// mandatory SOS_TYPE, then zero or more CONSTRAINT_LABEL CONSTANT pairs
// reinterpreted as (variable, weight) — the classifier cannot tell an SOS
// entry from a constraint label, so this processor repurposes the label
// tokens as variable references, per the spec's two-pass design.
func processSOS(toks []classifier.Token, b *lpmodel.Builder) error {
	i := 0
	for i < len(toks) {
		if toks[i].Kind != classifier.ConstraintLabel {
			return lperr.New(lperr.ErrStructTrailingTokens, toks[i].Pos,
				"expected an SOS group name")
		}
		name := toks[i].Name
		i++

		if i >= len(toks) || toks[i].Kind != classifier.SOSType {
			return lperr.New(lperr.ErrStructTrailingTokens, endOfBucketPos(toks, i),
				"expected an SOS type marker after group name")
		}
		typ := toks[i].Digit
		i++

		var entries []lpmodel.SOSEntry
		for i+1 < len(toks) && toks[i].Kind == classifier.ConstraintLabel && toks[i+1].Kind == classifier.Constant {
			ref := b.Intern(toks[i].Name)
			entries = append(entries, lpmodel.SOSEntry{Var: ref, Weight: toks[i+1].Value})
			i += 2
		}

		b.AddSOS(lpmodel.SOSGroup{Name: name, Type: typ, Entries: entries})
	}
	return nil
}
