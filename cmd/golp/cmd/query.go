package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golp/pkg/lpfile"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var querySet string

var queryCmd = &cobra.Command{
	Use:   "query [file] [gjson-path]",
	Short: "Parse an LP file and query its JSON projection with a gjson path",
	Long: `Parse an LP file, serialize it to JSON, and evaluate a gjson path
against it — a developer convenience for poking at a parsed model without
writing Go. Pass --set <gjson-path>=<value> to rewrite a field with sjson
before evaluating the path (or printing the whole document when no path
is given).

Examples:
  golp query model.lp 'variables.#(name=="x").upper'
  golp query model.lp --set 'sense=maximize'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&querySet, "set", "", "gjson-path=value to rewrite before querying")
}

func runQuery(cmd *cobra.Command, args []string) error {
	model, err := lpfile.ReadFile(args[0])
	if err != nil {
		return err
	}

	data, err := model.MarshalJSON()
	if err != nil {
		return err
	}
	doc := string(data)

	if querySet != "" {
		path, value, ok := splitSetFlag(querySet)
		if !ok {
			return fmt.Errorf("--set must be of the form path=value, got %q", querySet)
		}
		doc, err = sjson.Set(doc, path, value)
		if err != nil {
			return fmt.Errorf("applying --set: %w", err)
		}
	}

	if len(args) == 2 {
		result := gjson.Get(doc, args[1])
		fmt.Println(result.String())
		return nil
	}

	os.Stdout.Write(pretty.Pretty([]byte(doc)))
	return nil
}

func splitSetFlag(s string) (path, value string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
