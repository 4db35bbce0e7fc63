package classifier

import (
	"math"
	"testing"

	"github.com/cwbudde/golp/internal/lexer"
)

func lex(t *testing.T, input string) []lexer.Token {
	t.Helper()
	l := lexer.New(lexer.NewBytesSource([]byte(input)))
	toks, err := l.Drain()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	return toks
}

func classify(t *testing.T, input string) []Token {
	t.Helper()
	toks, err := Classify(lex(t, input))
	if err != nil {
		t.Fatalf("classify error: %v", err)
	}
	return toks
}

func TestClassifySectionHeaders(t *testing.T) {
	cases := []struct {
		input   string
		section SectionKind
		sense   Sense
	}{
		{"minimize", SectionObjective, Minimize},
		{"min", SectionObjective, Minimize},
		{"maximize", SectionObjective, Maximize},
		{"max", SectionObjective, Maximize},
		{"subject to", SectionConstraints, Minimize},
		{"such that", SectionConstraints, Minimize},
		{"st", SectionConstraints, Minimize},
		{"s.t.", SectionConstraints, Minimize},
		{"bounds", SectionBounds, Minimize},
		{"general", SectionGeneral, Minimize},
		{"binary", SectionBinary, Minimize},
		{"semi-continuous", SectionSemiContinuous, Minimize},
		{"semi", SectionSemiContinuous, Minimize},
		{"sos", SectionSOS, Minimize},
		{"end", SectionEnd, Minimize},
	}
	for _, c := range cases {
		toks := classify(t, c.input)
		if len(toks) != 1 || toks[0].Kind != SectionHeader {
			t.Fatalf("input %q: expected one SectionHeader token, got %+v", c.input, toks)
		}
		if toks[0].Section != c.section {
			t.Errorf("input %q: got section %s, want %s", c.input, toks[0].Section, c.section)
		}
		if toks[0].Section == SectionObjective && toks[0].Sense != c.sense {
			t.Errorf("input %q: got sense %v, want %v", c.input, toks[0].Sense, c.sense)
		}
	}
}

func TestClassifyConstraintLabel(t *testing.T) {
	toks := classify(t, "c1: x")
	if len(toks) != 2 || toks[0].Kind != ConstraintLabel || toks[0].Name != "c1" {
		t.Fatalf("expected ConstraintLabel c1 then VariableID, got %+v", toks)
	}
	if toks[1].Kind != VariableID || toks[1].Name != "x" {
		t.Fatalf("expected VariableID x, got %+v", toks[1])
	}
}

func TestClassifySOSType(t *testing.T) {
	toks := classify(t, "s1:: SOS1")
	if len(toks) < 1 || toks[0].Kind != SOSType || toks[0].Digit != 1 {
		t.Fatalf("expected SOSType digit 1, got %+v", toks)
	}
}

func TestClassifyBadSOSDigit(t *testing.T) {
	_, err := Classify(lex(t, "s3:: x"))
	if err == nil {
		t.Fatal("expected an error for an invalid SOS type digit")
	}
}

func TestClassifyFreeAndInfinity(t *testing.T) {
	toks := classify(t, "free infinity inf")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", toks)
	}
	if toks[0].Kind != Free {
		t.Errorf("expected Free, got %+v", toks[0])
	}
	if toks[1].Kind != Constant || !math.IsInf(toks[1].Value, 1) {
		t.Errorf("expected +Inf constant, got %+v", toks[1])
	}
	if toks[2].Kind != Constant || !math.IsInf(toks[2].Value, 1) {
		t.Errorf("expected +Inf constant, got %+v", toks[2])
	}
}

func TestClassifySignedConstants(t *testing.T) {
	toks := classify(t, "+3 -3 + -")
	want := []float64{3, -3, 1, -1}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != Constant || toks[i].Value != w {
			t.Errorf("token %d: got %+v, want Constant %v", i, toks[i], w)
		}
	}
}

func TestClassifyPlusBracketDiscardsPlus(t *testing.T) {
	toks := classify(t, "+ [ x ]")
	if len(toks) < 1 || toks[0].Kind != BracketOpen {
		t.Fatalf("expected BracketOpen first (plus discarded), got %+v", toks)
	}
}

func TestClassifyMinusBracketRejected(t *testing.T) {
	_, err := Classify(lex(t, "- [ x ]"))
	if err == nil {
		t.Fatal("expected an error: negative quadratic block is not supported")
	}
}

func TestClassifyComparisons(t *testing.T) {
	toks := classify(t, "< <= > >= =")
	want := []CompareOp{OpLess, OpLE, OpGreater, OpGE, OpEqual}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != Comparison || toks[i].Op != w {
			t.Errorf("token %d: got %+v, want Comparison %s", i, toks[i], w)
		}
	}
}

func TestClassifyBareVariableID(t *testing.T) {
	toks := classify(t, "profit")
	if len(toks) != 1 || toks[0].Kind != VariableID || toks[0].Name != "profit" {
		t.Fatalf("expected VariableID profit, got %+v", toks)
	}
}
