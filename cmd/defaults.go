package cmd

import (
	"fmt"
	"strings"

	"github.com/irjudson/codalab-cli/internal"
	"github.com/irjudson/codalab-cli/internal/export"
	"github.com/irjudson/codalab-cli/internal/metadata"
	"github.com/spf13/cobra"
)

var (
	defaultsFormat      string
	defaultsName        string
	defaultsDescription string
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <bundle-type> [target...]",
	Short: "Show the metadata a new bundle would get by default",
	Long: `Compute the metadata defaults for a new bundle from its type and the
arguments it would be created with. Values given with --name or
--description are kept as-is.

Examples:
  cl defaults dataset --path ./data/train.csv
  cl defaults make foo
  cl defaults run --program-target prog --input-target data --command "python run.py"`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: metadata.BundleTypeNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		bt, ok := metadata.LookupBundleType(args[0])
		if !ok {
			return &internal.ResolveError{
				BundleType: args[0],
				Key:        "type",
				Err:        fmt.Errorf("unknown bundle type (known: %s)", strings.Join(metadata.BundleTypeNames(), ", ")),
			}
		}

		exporter, err := export.NewExporter(defaultsFormat)
		if err != nil {
			return err
		}

		bag := metadata.ArgChain{metadata.NewFlagArgs(cmd.Flags())}
		if len(args) > 1 {
			bag = append(bag, metadata.ArgMap{metadata.ArgTarget: args[1:]})
		}

		md := make(map[string]any)
		if cmd.Flags().Changed("name") {
			md[metadata.KeyName] = defaultsName
		}
		if cmd.Flags().Changed("description") {
			md[metadata.KeyDescription] = defaultsDescription
		}

		md = metadata.NewResolver().FillMissing(metadata.SpecsFor(bt), bt, bag, md)
		return exporter.Export(md, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
	flags := defaultsCmd.Flags()
	flags.String("path", "", "Local path being uploaded")
	flags.StringArray("target", nil, "Bundle target (repeatable)")
	flags.String("program-target", "", "Program target of a run")
	flags.String("input-target", "", "Input target of a run")
	flags.String("command", "", "Command of a run")
	flags.StringVar(&defaultsName, "name", "", "Explicit bundle name")
	flags.StringVar(&defaultsDescription, "description", "", "Explicit bundle description")
	flags.StringVarP(&defaultsFormat, "format", "f", "text", "Output format (text, yaml, json)")
}
