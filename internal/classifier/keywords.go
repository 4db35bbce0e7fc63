package classifier

import "golang.org/x/text/cases"

// foldCaser normalizes keyword text before table lookup. The grammar is
// ASCII-only (spec §1 Non-goals), but the pack's own text package is used
// here rather than a hand-rolled strings.ToLower, matching how the corpus
// reaches for x/text for case normalization.
var foldCaser = cases.Fold()

func fold(s string) string {
	return foldCaser.String(s)
}

// sectionKeyword describes one recognized spelling of a section keyword
// and, for the objective section, the sense it implies.
type sectionKeyword struct {
	section SectionKind
	sense   Sense
	isObj   bool
}

// oneWordKeywords holds every section keyword spelling that is a single
// identifier-like token.
var oneWordKeywords = map[string]sectionKeyword{
	"minimize": {section: SectionObjective, sense: Minimize, isObj: true},
	"minimum":  {section: SectionObjective, sense: Minimize, isObj: true},
	"min":      {section: SectionObjective, sense: Minimize, isObj: true},
	"maximize": {section: SectionObjective, sense: Maximize, isObj: true},
	"maximum":  {section: SectionObjective, sense: Maximize, isObj: true},
	"max":      {section: SectionObjective, sense: Maximize, isObj: true},
	"st":       {section: SectionConstraints},
	"s.t.":     {section: SectionConstraints},
	"bounds":   {section: SectionBounds},
	"bound":    {section: SectionBounds},
	"general":  {section: SectionGeneral},
	"generals": {section: SectionGeneral},
	"gen":      {section: SectionGeneral},
	"binary":   {section: SectionBinary},
	"binaries": {section: SectionBinary},
	"bin":      {section: SectionBinary},
	"semi":     {section: SectionSemiContinuous},
	"sos":      {section: SectionSOS},
	"end":      {section: SectionEnd},
}

// twoWordKeywords holds the spellings that are two identifier-like tokens
// joined by a single space, e.g. "subject to".
var twoWordKeywords = map[string]sectionKeyword{
	"subject to": {section: SectionConstraints},
	"such that":  {section: SectionConstraints},
}

// threeWordKeywords holds the spellings written as STRING MINUS STRING,
// e.g. "semi-continuous".
var threeWordKeywords = map[string]sectionKeyword{
	"semi-continuous": {section: SectionSemiContinuous},
}

func lookupOneWord(s string) (sectionKeyword, bool) {
	kw, ok := oneWordKeywords[fold(s)]
	return kw, ok
}

func lookupTwoWord(a, b string) (sectionKeyword, bool) {
	kw, ok := twoWordKeywords[fold(a)+" "+fold(b)]
	return kw, ok
}

func lookupThreeWord(a, b string) (sectionKeyword, bool) {
	kw, ok := threeWordKeywords[fold(a)+"-"+fold(b)]
	return kw, ok
}

func isFree(s string) bool {
	return fold(s) == "free"
}

func isInfinity(s string) bool {
	f := fold(s)
	return f == "infinity" || f == "inf"
}
