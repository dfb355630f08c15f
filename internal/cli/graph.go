package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/gsys/gsys/internal/config"
	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/events"
	"github.com/gsys/gsys/internal/graph"
	"github.com/gsys/gsys/internal/logger"
	"github.com/gsys/gsys/internal/term"
)

var (
	graphTickRate time.Duration
	graphWindow   float64
)

var graphCmd = &cobra.Command{
	Use:   "graph <category>",
	Short: "Draw a live scrolling graph of a metric category",
	Long: `Take over the terminal and draw a continuously updating graph.
The view tracks every sub-metric of the category: one line per CPU core,
per memory pool, per network interface direction, or per block device.

Press the exit key (default q) to quit.

Examples:
  gsys graph cpu
  gsys graph network --tick-rate 500ms
  gsys graph memory --window 60`,
	ValidArgs: []string{"cpu", "memory", "network", "storage"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return graphCommand(cmd.Context(), args[0])
	},
}

func graphCommand(ctx context.Context, category string) error {
	cfg, err := config.LoadResolved(configFlag)
	if err != nil {
		return err
	}
	if graphTickRate > 0 {
		cfg.TickRate = graphTickRate
	}
	if graphWindow > 0 {
		cfg.Window = graphWindow
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	exitKey, err := term.ParseKey(cfg.ExitKey)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid exit_key in configuration",
			"Use a single character or one of: enter, esc, ctrl+c")
	}

	var w graph.Widget
	switch category {
	case "cpu":
		w = graph.NewCPUWidget(cfg.Window)
	case "memory":
		w = graph.NewMemoryWidget(cfg.Window)
	case "network":
		w = graph.NewNetworkWidget(cfg.Window)
	case "storage":
		w = graph.NewStorageWidget(cfg.Window)
	}

	evCfg := events.Config{ExitKey: exitKey, TickInterval: cfg.TickRate}
	return graph.Run(ctx, w, evCfg, logger.NewStderr("graph"))
}

func init() {
	graphCmd.Flags().DurationVar(&graphTickRate, "tick-rate", 0, "poll interval (defaults to the configured tick_rate)")
	graphCmd.Flags().Float64Var(&graphWindow, "window", 0, "visible window in seconds (defaults to the configured window)")
	rootCmd.AddCommand(graphCmd)
}
