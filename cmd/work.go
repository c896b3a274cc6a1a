package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/irjudson/codalab-cli/internal/envstore"
	"github.com/irjudson/codalab-cli/internal/export"
	"github.com/irjudson/codalab-cli/internal/procutil"
	"github.com/spf13/cobra"
)

var (
	workClear    bool
	workAll      bool
	workShellKey int
	workFormat   string
)

var (
	worksheetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	shellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

var workCmd = &cobra.Command{
	Use:   "work [worksheet-uuid]",
	Short: "Show or set the current worksheet for this shell",
	Long: `Show, set or clear the worksheet that commands in this shell operate on
when no worksheet is given explicitly.

The selection is keyed by the id of the shell that runs cl, so each terminal
keeps its own current worksheet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if workClear && len(args) > 0 {
			return fmt.Errorf("--clear does not take a worksheet")
		}

		store, err := openEnvStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		shell := shellStyle.Render(fmt.Sprintf("(shell %d)", store.ShellKey()))

		switch {
		case workAll:
			records, err := store.Records(ctx)
			if err != nil {
				return err
			}
			exporter, err := export.NewExporter(workFormat)
			if err != nil {
				return err
			}
			return exporter.Export(recordTable(records), out)

		case workClear:
			if err := store.ClearCurrentWorksheet(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Cleared current worksheet", shell)
			return nil

		case len(args) == 1:
			if err := store.SetCurrentWorksheet(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(out, "Switched to worksheet", worksheetStyle.Render(args[0]), shell)
			return nil
		}

		uuid, ok, err := store.CurrentWorksheet(ctx)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "No current worksheet", shell)
			return nil
		}
		fmt.Fprintln(out, worksheetStyle.Render(uuid))
		return nil
	},
}

// openEnvStore opens the env database in the configured home, keyed by the
// --shell-key override when given.
func openEnvStore(cmd *cobra.Command) (*envstore.Store, error) {
	var resolver procutil.Resolver = procutil.Default()
	if cmd.Flags().Changed("shell-key") {
		resolver = procutil.Static(workShellKey)
	}
	return envstore.Open(cmd.Context(), cfg.Home, envstore.WithResolver(resolver))
}

// recordTable renders store records as a table while keeping their
// structured form for yaml and json output.
type recordTable []envstore.Record

func (t recordTable) Header() []string {
	return []string{"SHELL", "WORKSHEET"}
}

func (t recordTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, r := range t {
		rows = append(rows, []string{strconv.Itoa(r.ShellKey), r.Worksheet})
	}
	return rows
}

func init() {
	rootCmd.AddCommand(workCmd)
	workCmd.Flags().BoolVar(&workClear, "clear", false, "Clear the current worksheet for this shell")
	workCmd.Flags().BoolVar(&workAll, "all", false, "List the current worksheet of every known shell")
	workCmd.Flags().IntVar(&workShellKey, "shell-key", 0, "Act as the shell with this process id")
	workCmd.Flags().StringVarP(&workFormat, "format", "f", "text", "Output format for --all (text, yaml, json)")
	workCmd.MarkFlagsMutuallyExclusive("clear", "all")
}
