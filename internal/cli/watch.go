package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/logger"
	"github.com/gsys/gsys/internal/output"
)

var (
	watchInterval  time.Duration
	watchDuration  time.Duration
	watchYAML      bool
	watchPretty    bool
	watchAll       bool
	watchCPU       bool
	watchMemory    bool
	watchNetwork   bool
	watchStorage   bool
	watchStats     bool
	watchProcesses bool
)

// WatchRecord is one emitted sample of a watch run.
type WatchRecord struct {
	Time time.Time `json:"time" yaml:"time"`
	Snapshot
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically sample and print system information",
	Long: `Sample the selected sections on an interval and print one record per
sample, JSON by default so the stream can be piped into other tools.

Examples:
  gsys watch --memory
  gsys watch --cpu --stats --interval 1s
  gsys watch --all --duration 30s > samples.jsonl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd.Context())
	},
}

func watchCommand(ctx context.Context) error {
	if watchInterval <= 0 {
		return errors.New(errors.ErrConfig,
			"Watch interval must be positive",
			"Pass --interval with a duration like 1s or 500ms")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, watchDuration)
		defer cancel()
	}

	format := output.FormatJSON
	if watchYAML {
		format = output.FormatYAML
	}

	return watchLoop(ctx, os.Stdout, watchSections(), format, watchPretty, watchInterval)
}

// watchLoop samples until the context ends. The context expiring is the
// normal way a watch finishes, so it is never reported as an error, even
// when it interrupts a collection in flight.
func watchLoop(ctx context.Context, w io.Writer, s sections, format output.Format, pretty bool, interval time.Duration) error {
	log := logger.NewStderr("watch")
	log.Debug("watching every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		snap, err := collectSnapshot(ctx, s)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		rec := WatchRecord{Time: time.Now().UTC(), Snapshot: *snap}
		if err := output.Write(w, format, pretty, rec); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func watchSections() sections {
	s := sections{
		cpu:       watchCPU,
		memory:    watchMemory,
		network:   watchNetwork,
		storage:   watchStorage,
		stats:     watchStats,
		processes: watchProcesses,
	}
	if watchAll {
		return sections{true, true, true, true, true, true, true}
	}
	if s.none() {
		s.stats = true
	}
	return s
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "sample interval")
	watchCmd.Flags().DurationVar(&watchDuration, "duration", 0, "stop after this long (0 runs until interrupted)")
	watchCmd.Flags().BoolVar(&watchYAML, "yaml", false, "output as YAML documents instead of JSON lines")
	watchCmd.Flags().BoolVar(&watchPretty, "pretty", false, "indent JSON output")
	watchCmd.Flags().BoolVar(&watchAll, "all", false, "sample every section")
	watchCmd.Flags().BoolVar(&watchCPU, "cpu", false, "include the CPU section")
	watchCmd.Flags().BoolVar(&watchMemory, "memory", false, "include the memory section")
	watchCmd.Flags().BoolVar(&watchNetwork, "network", false, "include the network section")
	watchCmd.Flags().BoolVar(&watchStorage, "storage", false, "include the storage section")
	watchCmd.Flags().BoolVar(&watchStats, "stats", false, "include load and uptime")
	watchCmd.Flags().BoolVar(&watchProcesses, "processes", false, "include top processes")
	rootCmd.AddCommand(watchCmd)
}
