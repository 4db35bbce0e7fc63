package lpmodel

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/maruel/natural"
)

// SortedVariableNames returns the model's variable names in natural
// (humane) order — "x2" before "x10" — rather than plain lexical order,
// for display in CLI summaries and debug output.
func (m *Model) SortedVariableNames() []string {
	names := make([]string, len(m.vars))
	for i, v := range m.vars {
		names[i] = v.Name
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// jsonFloat renders a float64 in a form encoding/json and goccy/go-yaml
// can both encode: ordinary finite values marshal as numbers, but
// +Inf, -Inf, and NaN — none of which encoding/json can encode, and all
// of which are ordinary values here (every variable defaults to an
// unbounded [0, +Inf) upper bound) — marshal as the sentinel strings
// "INF", "-INF", and "NaN", matching the teacher's own FloatValue.String
// convention for non-finite floats.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.sentinel())
}

func (f jsonFloat) MarshalYAML() (any, error) {
	return f.sentinel(), nil
}

func (f jsonFloat) sentinel() any {
	switch {
	case math.IsInf(float64(f), 1):
		return "INF"
	case math.IsInf(float64(f), -1):
		return "-INF"
	case math.IsNaN(float64(f)):
		return "NaN"
	default:
		return float64(f)
	}
}

// jsonModel is the JSON/YAML projection of a Model: the unexported intern
// table collapses to plain variable names on terms, and the variable
// arena becomes an ordinary slice.
type jsonModel struct {
	Sense       string           `json:"sense" yaml:"sense"`
	Objective   jsonExpression   `json:"objective" yaml:"objective"`
	Constraints []jsonConstraint `json:"constraints" yaml:"constraints"`
	SOS         []jsonSOSGroup   `json:"sos,omitempty" yaml:"sos,omitempty"`
	Variables   []jsonVariable   `json:"variables" yaml:"variables"`
}

type jsonVariable struct {
	Name  string    `json:"name" yaml:"name"`
	Lower jsonFloat `json:"lower" yaml:"lower"`
	Upper jsonFloat `json:"upper" yaml:"upper"`
	Type  string    `json:"type" yaml:"type"`
}

type jsonLinearTerm struct {
	Coefficient jsonFloat `json:"coefficient" yaml:"coefficient"`
	Var         string    `json:"var" yaml:"var"`
}

type jsonQuadraticTerm struct {
	Coefficient jsonFloat `json:"coefficient" yaml:"coefficient"`
	Var1        string    `json:"var1" yaml:"var1"`
	Var2        string    `json:"var2" yaml:"var2"`
}

type jsonExpression struct {
	Name            string              `json:"name,omitempty" yaml:"name,omitempty"`
	Linear          []jsonLinearTerm    `json:"linear,omitempty" yaml:"linear,omitempty"`
	Quadratic       []jsonQuadraticTerm `json:"quadratic,omitempty" yaml:"quadratic,omitempty"`
	Offset          jsonFloat           `json:"offset" yaml:"offset"`
	HalvedQuadratic bool                `json:"halvedQuadratic,omitempty" yaml:"halvedQuadratic,omitempty"`
}

type jsonConstraint struct {
	Expr  jsonExpression `json:"expr" yaml:"expr"`
	Lower jsonFloat      `json:"lower" yaml:"lower"`
	Upper jsonFloat      `json:"upper" yaml:"upper"`
}

type jsonSOSEntry struct {
	Var    string    `json:"var" yaml:"var"`
	Weight jsonFloat `json:"weight" yaml:"weight"`
}

type jsonSOSGroup struct {
	Name    string         `json:"name" yaml:"name"`
	Type    int            `json:"type" yaml:"type"`
	Entries []jsonSOSEntry `json:"entries" yaml:"entries"`
}

func (m *Model) toJSONModel() jsonModel {
	jm := jsonModel{
		Sense:     m.Sense.String(),
		Objective: m.toJSONExpression(m.Objective),
	}
	for _, c := range m.Constraints {
		jm.Constraints = append(jm.Constraints, jsonConstraint{
			Expr:  m.toJSONExpression(c.Expr),
			Lower: jsonFloat(c.Lower),
			Upper: jsonFloat(c.Upper),
		})
	}
	for _, g := range m.SOS {
		jg := jsonSOSGroup{Name: g.Name, Type: g.Type}
		for _, e := range g.Entries {
			jg.Entries = append(jg.Entries, jsonSOSEntry{Var: m.vars[e.Var].Name, Weight: jsonFloat(e.Weight)})
		}
		jm.SOS = append(jm.SOS, jg)
	}
	for _, v := range m.vars {
		jm.Variables = append(jm.Variables, jsonVariable{
			Name:  v.Name,
			Lower: jsonFloat(v.Lower),
			Upper: jsonFloat(v.Upper),
			Type:  v.Type.String(),
		})
	}
	return jm
}

func (m *Model) toJSONExpression(e Expression) jsonExpression {
	je := jsonExpression{Name: e.Name, Offset: jsonFloat(e.Offset), HalvedQuadratic: e.HalvedQuadratic}
	for _, t := range e.Linear {
		je.Linear = append(je.Linear, jsonLinearTerm{Coefficient: jsonFloat(t.Coefficient), Var: m.vars[t.Var].Name})
	}
	for _, t := range e.Quad {
		je.Quadratic = append(je.Quadratic, jsonQuadraticTerm{
			Coefficient: jsonFloat(t.Coefficient),
			Var1:        m.vars[t.Var1].Name,
			Var2:        m.vars[t.Var2].Name,
		})
	}
	return je
}

// MarshalJSON renders the model as a plain JSON document addressing
// variables by name rather than by the internal VarRef arena index.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.toJSONModel())
}
