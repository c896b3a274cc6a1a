package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/irjudson/codalab-cli/internal/envstore"
	"github.com/irjudson/codalab-cli/internal/metadata"
	"github.com/irjudson/codalab-cli/internal/procutil"
	"github.com/spf13/cobra"
)

var (
	healthcheckDetails bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that cl can track the current worksheet of this shell",
	Long: `Check the health of the local client state by verifying:
  • Home directory resolution
  • Environment database accessibility
  • Shell detection (parent process id)
  • Host architecture detection

The environment database is not created by this command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("🔍 CodaLab Client Health Check"))
		fmt.Fprintln(out)

		// Step 1: Home directory
		fmt.Fprintln(out, infoStyle.Render("Step 1: Resolving home directory..."))
		paths := cfg.Paths()
		fmt.Fprintln(out, successStyle.Render("✅ Home directory resolved"))
		if healthcheckDetails {
			fmt.Fprintf(out, "   Home: %s\n", paths.Home)
			fmt.Fprintf(out, "   Config: %s\n", paths.ConfigPath())
		}
		fmt.Fprintln(out)

		// Step 2: Environment database
		fmt.Fprintln(out, infoStyle.Render("Step 2: Checking environment database..."))
		var dbErr error
		if paths.EnvDBExists() {
			store, err := envstore.Open(cmd.Context(), paths.Home)
			if err != nil {
				dbErr = err
				fmt.Fprintln(out, errorStyle.Render("❌ Environment database not accessible:"), err)
			} else {
				records, err := store.Records(cmd.Context())
				store.Close()
				if err != nil {
					dbErr = err
					fmt.Fprintln(out, errorStyle.Render("❌ Failed to read environment database:"), err)
				} else {
					fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Environment database readable (%d shell(s) tracked)", len(records))))
				}
			}
		} else {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Environment database not created yet"))
		}
		if healthcheckDetails {
			fmt.Fprintf(out, "   Database: %s\n", paths.EnvDBPath())
		}
		fmt.Fprintln(out)

		// Step 3: Shell detection
		fmt.Fprintln(out, infoStyle.Render("Step 3: Detecting shell..."))
		resolver := procutil.Default()
		if key := resolver.ParentPID(); key != procutil.NoParent {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Shell key %d", key)))
		} else {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Parent process could not be determined; all shells will share one worksheet"))
		}
		if healthcheckDetails {
			fmt.Fprintf(out, "   Resolver: %T\n", resolver)
		}
		fmt.Fprintln(out)

		// Step 4: Architecture
		fmt.Fprintln(out, infoStyle.Render("Step 4: Detecting host architecture..."))
		if machine := metadata.HostMachine(); machine != "" {
			fmt.Fprintln(out, successStyle.Render("✅ Architecture "+machine))
		} else {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Architecture unknown; new bundles get no architectures"))
		}
		fmt.Fprintln(out)

		if dbErr != nil {
			return dbErr
		}
		fmt.Fprintln(out, successStyle.Render("✅ Health check passed"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckDetails, "details", "d", false, "Show paths and resolver details")
}
