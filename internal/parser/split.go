// Package parser implements the section splitter and the section-driven
// recursive-descent processors that turn a processed-token sequence into
// a lpmodel.Model. It is the fourth and fifth stage of the pipeline
// described in spec.md §2.
package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lperr"
)

// sections holds the per-section-kind token buckets produced by Split, in
// the fixed processing order required by spec §4.4: none, objective,
// constraints, bounds, general, binary, semi, SOS, end.
type sections struct {
	objective    []classifier.Token
	objectiveSet bool
	constraints  []classifier.Token
	bounds       []classifier.Token
	general      []classifier.Token
	binary       []classifier.Token
	semi         []classifier.Token
	sos          []classifier.Token
	end          []classifier.Token

	seen map[classifier.SectionKind]bool
}

// Split partitions a processed-token sequence by section header,
// recording the objective sense and appending every other token to its
// section's bucket. A section kind appearing twice is a structural
// error. The bucket for tokens seen before any header ("none") must end
// up empty; any token there is also a structural error, since the LP
// grammar admits no top-level content outside a section.
func Split(tokens []classifier.Token) (*sections, classifier.Sense, error) {
	s := &sections{seen: make(map[classifier.SectionKind]bool)}
	sense := classifier.Minimize
	current := noSection

	for _, tok := range tokens {
		if tok.Kind == classifier.SectionHeader {
			if s.seen[tok.Section] {
				return nil, sense, lperr.New(lperr.ErrStructDuplicateSection, tok.Pos,
					"duplicate section: "+tok.Section.String())
			}
			s.seen[tok.Section] = true
			current = tok.Section
			if tok.Section == classifier.SectionObjective {
				sense = tok.Sense
				s.objectiveSet = true
			}
			continue
		}

		switch current {
		case noSection:
			return nil, sense, lperr.New(lperr.ErrStructTrailingTokens, tok.Pos,
				"token outside any section")
		case classifier.SectionObjective:
			s.objective = append(s.objective, tok)
		case classifier.SectionConstraints:
			s.constraints = append(s.constraints, tok)
		case classifier.SectionBounds:
			s.bounds = append(s.bounds, tok)
		case classifier.SectionGeneral:
			s.general = append(s.general, tok)
		case classifier.SectionBinary:
			s.binary = append(s.binary, tok)
		case classifier.SectionSemiContinuous:
			s.semi = append(s.semi, tok)
		case classifier.SectionSOS:
			s.sos = append(s.sos, tok)
		case classifier.SectionEnd:
			s.end = append(s.end, tok)
		}
	}

	return s, sense, nil
}

// noSection is a sentinel SectionKind value distinct from every real
// section kind, representing "before any header has been seen".
const noSection classifier.SectionKind = -1
