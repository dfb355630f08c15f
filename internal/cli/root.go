package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gsys/gsys/internal/config"
	"github.com/gsys/gsys/internal/output"
)

// configFlag is the --config override shared by every subcommand.
var configFlag string

// rootCmd is the base gsys command.
var rootCmd = &cobra.Command{
	Use:   "gsys",
	Short: "Inspect and graph live system metrics",
	Long: `gsys reads live system metrics and presents them as single values,
structured dumps, periodic watches, or scrolling terminal graphs.

Examples:
  gsys get hostname
  gsys dump --all --json
  gsys watch --memory --interval 1s
  gsys graph cpu`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveFormat picks the output format: explicit flags win, then the
// configured default.
func resolveFormat(jsonFlag, yamlFlag bool) (output.Format, error) {
	if jsonFlag || yamlFlag {
		return output.ParseFormat(jsonFlag, yamlFlag), nil
	}
	cfg, err := config.LoadResolved(configFlag)
	if err != nil {
		return output.FormatPlain, err
	}
	return output.FormatFromString(cfg.Format)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}
