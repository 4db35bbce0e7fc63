package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golp/pkg/lpfile"
	"github.com/tidwall/pretty"

	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Parse an LP file and serialize the resulting model as JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", `output format: "json" or "yaml"`)
}

func runExport(cmd *cobra.Command, args []string) error {
	model, err := lpfile.ReadFile(args[0])
	if err != nil {
		return err
	}

	switch exportFormat {
	case "json":
		data, err := model.MarshalJSON()
		if err != nil {
			return err
		}
		os.Stdout.Write(pretty.Pretty(data))
	case "yaml":
		data, err := model.MarshalYAML()
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
	default:
		return fmt.Errorf("unknown export format %q, want \"json\" or \"yaml\"", exportFormat)
	}
	return nil
}
