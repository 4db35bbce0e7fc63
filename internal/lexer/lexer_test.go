package lexer

import (
	"testing"
)

func drainAll(t *testing.T, input string) []Token {
	t.Helper()
	l := New(NewBytesSource([]byte(input)))
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == FILE_END {
			return toks
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	toks := drainAll(t, "[ ] < > = : + - * / ^")
	want := []TokenType{
		BRACKET_OPEN, BRACKET_CLOSE, LESS, GREATER, EQUAL, COLON,
		PLUS, MINUS, ASTERISK, SLASH, CARET, FILE_END,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestLexerComparisonsNotCombined(t *testing.T) {
	toks := drainAll(t, "<=")
	if len(toks) != 3 || toks[0].Type != LESS || toks[1].Type != EQUAL || toks[2].Type != FILE_END {
		t.Fatalf("expected LESS, EQUAL, FILE_END, got %+v", toks)
	}
}

func TestLexerNumbers(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"3", 3},
		{"3.5", 3.5},
		{"0.001", 0.001},
		{"1e10", 1e10},
		{"1.5e-3", 1.5e-3},
		{"2E+2", 2e2},
	}
	for _, c := range cases {
		toks := drainAll(t, c.input)
		if toks[0].Type != NUMBER {
			t.Fatalf("input %q: got type %s, want NUMBER", c.input, toks[0].Type)
		}
		if toks[0].Number != c.want {
			t.Errorf("input %q: got %v, want %v", c.input, toks[0].Number, c.want)
		}
	}
}

func TestLexerIdentifiers(t *testing.T) {
	toks := drainAll(t, "x1 myVar obj_2")
	want := []string{"x1", "myVar", "obj_2"}
	for i, w := range want {
		if toks[i].Type != STRING || toks[i].Literal != w {
			t.Errorf("token %d: got %+v, want STRING %q", i, toks[i], w)
		}
	}
}

func TestLexerIdentifierStopsAtDelimiter(t *testing.T) {
	toks := drainAll(t, "semi-continuous")
	want := []struct {
		typ TokenType
		lit string
	}{
		{STRING, "semi"},
		{MINUS, "-"},
		{STRING, "continuous"},
		{FILE_END, ""},
	}
	for i, w := range want {
		if toks[i].Type != w.typ {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Type, w.typ)
		}
	}
}

func TestLexerCommentToEndOfLine(t *testing.T) {
	toks := drainAll(t, "x \\ comment here\ny")
	want := []string{"x", "y"}
	var got []string
	for _, tok := range toks {
		if tok.Type == STRING {
			got = append(got, tok.Literal)
		}
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexerSemicolonTerminatesLine(t *testing.T) {
	toks := drainAll(t, "x + y; ignored")
	var lits []string
	for _, tok := range toks {
		if tok.Type == STRING {
			lits = append(lits, tok.Literal)
		}
	}
	if len(lits) != 2 || lits[0] != "x" || lits[1] != "y" {
		t.Fatalf("expected only x and y before ';', got %v", lits)
	}
}

func TestLexerUnrecognizedByteIsError(t *testing.T) {
	l := New(NewBytesSource([]byte("@")))
	_, err := l.Next()
	if err == nil {
		t.Fatal("expected an error for an unrecognized byte")
	}
}

func TestLexerEmptyInputIsImmediateFileEnd(t *testing.T) {
	toks := drainAll(t, "")
	if len(toks) != 1 || toks[0].Type != FILE_END {
		t.Fatalf("expected a single FILE_END token, got %+v", toks)
	}
}

func TestLexerFileEndIsStable(t *testing.T) {
	l := New(NewBytesSource([]byte("x")))
	tok1, _ := l.Next()
	tok2, _ := l.Next()
	tok3, _ := l.Next()
	if tok1.Type != STRING {
		t.Fatalf("expected STRING first, got %s", tok1.Type)
	}
	if tok2.Type != FILE_END || tok3.Type != FILE_END {
		t.Fatalf("expected FILE_END to be stable, got %s then %s", tok2.Type, tok3.Type)
	}
}
