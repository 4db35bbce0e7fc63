package parser

import (
	"math"
	"testing"

	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lexer"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

func parse(t *testing.T, src string) *lpmodel.Model {
	t.Helper()
	l := lexer.New(lexer.NewBytesSource([]byte(src)))
	raw, err := l.Drain()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	toks, err := classifier.Classify(raw)
	if err != nil {
		t.Fatalf("classify error: %v", err)
	}
	m, err := Parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return m
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	l := lexer.New(lexer.NewBytesSource([]byte(src)))
	raw, err := l.Drain()
	if err != nil {
		return err
	}
	toks, err := classifier.Classify(raw)
	if err != nil {
		return err
	}
	_, err = Parse(toks)
	return err
}

func TestParseSimpleMinimize(t *testing.T) {
	m := parse(t, `
minimize
  2 x + 3 y
subject to
  c1: x + y <= 10
end
`)
	if m.Sense != lpmodel.Minimize {
		t.Errorf("got sense %s, want minimize", m.Sense)
	}
	if len(m.Objective.Linear) != 2 {
		t.Fatalf("expected 2 linear objective terms, got %+v", m.Objective.Linear)
	}
	if len(m.Constraints) != 1 {
		t.Fatalf("expected 1 constraint, got %d", len(m.Constraints))
	}
	c := m.Constraints[0]
	if c.Expr.Name != "c1" {
		t.Errorf("got constraint name %q, want c1", c.Expr.Name)
	}
	if c.Upper != 10 || !math.IsInf(c.Lower, -1) {
		t.Errorf("got bounds [%v, %v], want [-Inf, 10]", c.Lower, c.Upper)
	}
}

func TestParseMaximizeEquality(t *testing.T) {
	m := parse(t, `
max
  x
st
  x = 5
end
`)
	if m.Sense != lpmodel.Maximize {
		t.Errorf("got sense %s, want maximize", m.Sense)
	}
	c := m.Constraints[0]
	if c.Lower != 5 || c.Upper != 5 {
		t.Errorf("got bounds [%v, %v], want [5, 5]", c.Lower, c.Upper)
	}
}

func TestParseBoundsForms(t *testing.T) {
	m := parse(t, `
min
  x + y + z + w
st
  c1: x + y + z + w <= 100
bounds
  x free
  0 <= y <= 5
  z <= 10
  2 <= w
end
`)
	xref, _ := m.VarByName("x")
	x := m.Variable(xref)
	if !math.IsInf(x.Lower, -1) || !math.IsInf(x.Upper, 1) {
		t.Errorf("x: got [%v, %v], want free", x.Lower, x.Upper)
	}

	yref, _ := m.VarByName("y")
	y := m.Variable(yref)
	if y.Lower != 0 || y.Upper != 5 {
		t.Errorf("y: got [%v, %v], want [0, 5]", y.Lower, y.Upper)
	}

	zref, _ := m.VarByName("z")
	z := m.Variable(zref)
	if z.Upper != 10 {
		t.Errorf("z: got upper %v, want 10", z.Upper)
	}

	wref, _ := m.VarByName("w")
	w := m.Variable(wref)
	if w.Lower != 2 {
		t.Errorf("w: got lower %v, want 2", w.Lower)
	}
}

func TestParseBinaryVariables(t *testing.T) {
	m := parse(t, `
min
  x + y
st
  c1: x + y <= 1
binary
  x
  y
end
`)
	for _, name := range []string{"x", "y"} {
		ref, _ := m.VarByName(name)
		v := m.Variable(ref)
		if v.Type != lpmodel.Binary || v.Lower != 0 || v.Upper != 1 {
			t.Errorf("%s: got %+v, want binary [0,1]", name, v)
		}
	}
}

func TestParseGeneralThenSemiPromotesToSemiInteger(t *testing.T) {
	m := parse(t, `
min
  x
st
  c1: x <= 10
general
  x
semi
  x
end
`)
	ref, _ := m.VarByName("x")
	v := m.Variable(ref)
	if v.Type != lpmodel.SemiInteger {
		t.Errorf("got type %s, want semi-integer", v.Type)
	}
}

func TestParseSemiOnlyIsSemiContinuous(t *testing.T) {
	m := parse(t, `
min
  x
st
  c1: x <= 10
semi
  x
end
`)
	ref, _ := m.VarByName("x")
	v := m.Variable(ref)
	if v.Type != lpmodel.SemiContinuous {
		t.Errorf("got type %s, want semi-continuous", v.Type)
	}
}

func TestParseQuadraticObjectiveRequiresHalf(t *testing.T) {
	m := parse(t, `
min
  x + [ 2 x^2 ] /2
st
  c1: x <= 10
end
`)
	if len(m.Objective.Quad) != 1 {
		t.Fatalf("expected 1 quadratic term, got %+v", m.Objective.Quad)
	}
	if !m.Objective.HalvedQuadratic {
		t.Error("expected HalvedQuadratic to be true")
	}
}

func TestParseQuadraticObjectiveMissingHalfIsError(t *testing.T) {
	err := parseErr(t, `
min
  x + [ 2 x^2 ]
st
  c1: x <= 10
end
`)
	if err == nil {
		t.Fatal("expected an error: objective quadratic block must be followed by /2")
	}
}

func TestParseQuadraticConstraintRejectsHalf(t *testing.T) {
	err := parseErr(t, `
min
  x
st
  c1: x + [ 2 x^2 ] /2 <= 10
end
`)
	if err == nil {
		t.Fatal("expected an error: '/2' is not permitted after a constraint's quadratic block")
	}
}

func TestParseBadExponentIsSemanticError(t *testing.T) {
	err := parseErr(t, `
min
  x + [ x^3 ] /2
st
  c1: x <= 10
end
`)
	if err == nil {
		t.Fatal("expected an error for a quadratic exponent other than 2")
	}
}

func TestParseSOSGroup(t *testing.T) {
	m := parse(t, `
min
  x + y
st
  c1: x + y <= 10
sos
  s1: S1:: x: 1 y: 2
end
`)
	if len(m.SOS) != 1 {
		t.Fatalf("expected 1 SOS group, got %d", len(m.SOS))
	}
	g := m.SOS[0]
	if g.Name != "s1" || g.Type != 1 || len(g.Entries) != 2 {
		t.Errorf("got %+v, want name s1, type 1, 2 entries", g)
	}
}

func TestParseDuplicateSectionIsError(t *testing.T) {
	err := parseErr(t, `
min
  x
st
  c1: x <= 10
st
  c2: x <= 5
end
`)
	if err == nil {
		t.Fatal("expected an error for a duplicate section header")
	}
}

func TestParseStrictCompareInBoundsIsError(t *testing.T) {
	err := parseErr(t, `
min
  x
st
  c1: x <= 10
bounds
  x < 5
end
`)
	if err == nil {
		t.Fatal("expected an error: strict '<' is not allowed in bounds")
	}
}
