package cmd

import (
	"fmt"

	"github.com/cwbudde/golp/pkg/lpfile"
	"github.com/cwbudde/golp/pkg/lpmodel"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var parseDump bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an LP file and print the resulting problem model",
	Long: `Parse an LP file and display a summary of the problem model: the
objective sense, the objective's linear and quadratic term counts, the
number of constraints and SOS groups, and each variable's bounds and type.

Use --dump for a full structural dump of the model via kr/pretty instead
of the human-readable summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "dump the full model structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	model, err := lpfile.ReadFile(args[0])
	if err != nil {
		return err
	}

	if parseDump {
		pretty.Println(model)
		return nil
	}

	printSummary(model)
	return nil
}

func printSummary(m *lpmodel.Model) {
	fmt.Printf("sense: %s\n", m.Sense)
	fmt.Printf("objective: %d linear term(s), %d quadratic term(s)\n",
		len(m.Objective.Linear), len(m.Objective.Quad))
	fmt.Printf("constraints: %d\n", len(m.Constraints))
	fmt.Printf("sos groups: %d\n", len(m.SOS))

	fmt.Println("variables:")
	for _, name := range m.SortedVariableNames() {
		ref, _ := m.VarByName(name)
		v := m.Variable(ref)
		fmt.Printf("  %-20s [%g, %g] %s\n", v.Name, v.Lower, v.Upper, v.Type)
	}
}
