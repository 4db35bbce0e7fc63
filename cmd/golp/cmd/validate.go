package cmd

import (
	"fmt"
	"math"

	"github.com/cwbudde/golp/pkg/lpfile"
	"github.com/cwbudde/golp/pkg/lpmodel"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse an LP file and check the universal model invariants",
	Long: `Parse an LP file and check the invariants spec-testable over any
successfully parsed model: every constraint's lower bound does not exceed
its upper bound, every binary variable has bounds [0, 1], no variable
has a NaN bound, and every SOS group has a type of 1 or 2.

Exits nonzero and prints each violation if any invariant fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	model, err := lpfile.ReadFile(args[0])
	if err != nil {
		return err
	}

	violations := checkInvariants(model)
	for _, v := range violations {
		fmt.Println(v)
	}
	if len(violations) > 0 {
		return fmt.Errorf("%d invariant violation(s)", len(violations))
	}

	fmt.Println("ok")
	return nil
}

func checkInvariants(m *lpmodel.Model) []string {
	var violations []string

	for i, c := range m.Constraints {
		if c.Lower > c.Upper {
			violations = append(violations, fmt.Sprintf("constraint %d: lower %g exceeds upper %g", i, c.Lower, c.Upper))
		}
	}

	for _, v := range m.Variables() {
		if v.Type == lpmodel.Binary {
			if v.Lower != 0 || v.Upper != 1 {
				violations = append(violations, fmt.Sprintf("binary variable %q has bounds [%g, %g], want [0, 1]", v.Name, v.Lower, v.Upper))
			}
		}
		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) {
			violations = append(violations, fmt.Sprintf("variable %q has a NaN bound", v.Name))
		}
	}

	for _, g := range m.SOS {
		if g.Type != 1 && g.Type != 2 {
			violations = append(violations, fmt.Sprintf("SOS group %q has type %d, want 1 or 2", g.Name, g.Type))
		}
	}

	return violations
}
