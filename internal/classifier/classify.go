package classifier

import (
	"fmt"
	"math"

	"github.com/cwbudde/golp/internal/lexer"
	"github.com/cwbudde/golp/internal/lperr"
)

// Classify consumes a raw-token vector (as produced by (*lexer.Lexer).Drain,
// terminated by a FILE_END token) and returns the processed-token vector.
// It is a pure function over the slice: no token is mutated in place, and
// look-ahead is bounded to a handful of tokens.
func Classify(raw []lexer.Token) ([]Token, error) {
	var out []Token
	i := 0
	n := len(raw)

	peek := func(off int) (lexer.Token, bool) {
		j := i + off
		if j >= n {
			return lexer.Token{}, false
		}
		return raw[j], true
	}

	for i < n {
		tok := raw[i]

		if tok.Type == lexer.FILE_END {
			break
		}

		if tok.Type == lexer.STRING {
			// Three-token keyword form: STRING MINUS STRING.
			if t1, ok1 := peek(1); ok1 && t1.Type == lexer.MINUS {
				if t2, ok2 := peek(2); ok2 && t2.Type == lexer.STRING {
					if kw, ok := lookupThreeWord(tok.Literal, t2.Literal); ok {
						out = append(out, sectionToken(kw, tok.Pos))
						i += 3
						continue
					}
				}
			}

			// Two-token keyword form: STRING STRING.
			if t1, ok1 := peek(1); ok1 && t1.Type == lexer.STRING {
				if kw, ok := lookupTwoWord(tok.Literal, t1.Literal); ok {
					out = append(out, sectionToken(kw, tok.Pos))
					i += 2
					continue
				}
			}

			// One-token keyword form.
			if kw, ok := lookupOneWord(tok.Literal); ok {
				out = append(out, sectionToken(kw, tok.Pos))
				i++
				continue
			}

			// STRING COLON COLON -> SOS_TYPE.
			if t1, ok1 := peek(1); ok1 && t1.Type == lexer.COLON {
				if t2, ok2 := peek(2); ok2 && t2.Type == lexer.COLON {
					digit, derr := sosDigit(tok.Literal)
					if derr != nil {
						return nil, lperr.New(lperr.ErrClassifyBadSOSDigit, tok.Pos, derr.Error()).WithToken(tok.Literal)
					}
					out = append(out, Token{Kind: SOSType, Digit: digit, Pos: tok.Pos})
					i += 3
					continue
				}

				// STRING COLON -> CONSTRAINT_LABEL.
				out = append(out, Token{Kind: ConstraintLabel, Name: tok.Literal, Pos: tok.Pos})
				i += 2
				continue
			}

			if isFree(tok.Literal) {
				out = append(out, Token{Kind: Free, Pos: tok.Pos})
				i++
				continue
			}

			if isInfinity(tok.Literal) {
				out = append(out, Token{Kind: Constant, Value: math.Inf(1), Pos: tok.Pos})
				i++
				continue
			}

			out = append(out, Token{Kind: VariableID, Name: tok.Literal, Pos: tok.Pos})
			i++
			continue
		}

		switch tok.Type {
		case lexer.PLUS:
			if t1, ok1 := peek(1); ok1 {
				if t1.Type == lexer.NUMBER {
					out = append(out, Token{Kind: Constant, Value: t1.Number, Pos: tok.Pos})
					i += 2
					continue
				}
				if t1.Type == lexer.BRACKET_OPEN {
					out = append(out, Token{Kind: BracketOpen, Pos: tok.Pos})
					i += 2
					continue
				}
			}
			out = append(out, Token{Kind: Constant, Value: 1, Pos: tok.Pos})
			i++
			continue

		case lexer.MINUS:
			if t1, ok1 := peek(1); ok1 {
				if t1.Type == lexer.NUMBER {
					out = append(out, Token{Kind: Constant, Value: -t1.Number, Pos: tok.Pos})
					i += 2
					continue
				}
				if t1.Type == lexer.BRACKET_OPEN {
					// Deliberately unsupported: a minus preceding a
					// quadratic block has no defined meaning (spec open
					// question). Reject rather than invent behavior.
					return nil, lperr.New(lperr.ErrClassifyNoMatch, tok.Pos,
						"negative quadratic block is not supported")
				}
			}
			out = append(out, Token{Kind: Constant, Value: -1, Pos: tok.Pos})
			i++
			continue

		case lexer.NUMBER:
			out = append(out, Token{Kind: Constant, Value: tok.Number, Pos: tok.Pos})
			i++
			continue

		case lexer.BRACKET_OPEN:
			out = append(out, Token{Kind: BracketOpen, Pos: tok.Pos})
			i++
			continue

		case lexer.BRACKET_CLOSE:
			out = append(out, Token{Kind: BracketClose, Pos: tok.Pos})
			i++
			continue

		case lexer.SLASH:
			out = append(out, Token{Kind: Slash, Pos: tok.Pos})
			i++
			continue

		case lexer.ASTERISK:
			out = append(out, Token{Kind: Asterisk, Pos: tok.Pos})
			i++
			continue

		case lexer.CARET:
			out = append(out, Token{Kind: Caret, Pos: tok.Pos})
			i++
			continue

		case lexer.LESS:
			if t1, ok1 := peek(1); ok1 && t1.Type == lexer.EQUAL {
				out = append(out, Token{Kind: Comparison, Op: OpLE, Pos: tok.Pos})
				i += 2
				continue
			}
			out = append(out, Token{Kind: Comparison, Op: OpLess, Pos: tok.Pos})
			i++
			continue

		case lexer.GREATER:
			if t1, ok1 := peek(1); ok1 && t1.Type == lexer.EQUAL {
				out = append(out, Token{Kind: Comparison, Op: OpGE, Pos: tok.Pos})
				i += 2
				continue
			}
			out = append(out, Token{Kind: Comparison, Op: OpGreater, Pos: tok.Pos})
			i++
			continue

		case lexer.EQUAL:
			out = append(out, Token{Kind: Comparison, Op: OpEqual, Pos: tok.Pos})
			i++
			continue

		case lexer.LINE_END:
			// Line/statement boundaries carry no grammatical meaning in
			// this format; they are dropped like whitespace.
			i++
			continue

		default:
			return nil, lperr.New(lperr.ErrClassifyNoMatch, tok.Pos,
				fmt.Sprintf("unexpected token %s", tok.Type))
		}
	}

	return out, nil
}

func sectionToken(kw sectionKeyword, pos lperr.Position) Token {
	return Token{Kind: SectionHeader, Section: kw.section, Sense: kw.sense, Pos: pos}
}

func sosDigit(s string) (int, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("SOS type marker %q is too short to carry a type digit", s)
	}
	d := s[1]
	if d != '1' && d != '2' {
		return 0, fmt.Errorf("SOS type digit must be 1 or 2, got %q", s)
	}
	return int(d - '0'), nil
}
