package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/output"
	"github.com/gsys/gsys/internal/probe"
)

var (
	getJSON   bool
	getYAML   bool
	getPretty bool
)

// getProperties lists every property `gsys get` can answer.
var getProperties = []string{
	"hostname",
	"uptime",
	"os",
	"kernel",
	"arch",
	"cpu",
	"cpu-cores",
	"cpu-clock",
	"memory-total",
	"memory-free",
	"swap-total",
	"swap-free",
}

var getCmd = &cobra.Command{
	Use:   "get <property>",
	Short: "Print a single system property",
	Long: `Print one system property and exit.

Examples:
  gsys get hostname
  gsys get memory-free
  gsys get cpu-clock --json`,
	ValidArgs: getProperties,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getCommand(cmd.Context(), args[0])
	},
}

func getCommand(ctx context.Context, property string) error {
	v, err := lookupProperty(ctx, property)
	if err != nil {
		return err
	}
	format, err := resolveFormat(getJSON, getYAML)
	if err != nil {
		return err
	}
	return output.Write(os.Stdout, format, getPretty, v)
}

func lookupProperty(ctx context.Context, property string) (interface{}, error) {
	switch property {
	case "hostname", "uptime", "os", "kernel", "arch":
		sys, err := probe.System(ctx)
		if err != nil {
			return nil, err
		}
		switch property {
		case "hostname":
			return sys.Hostname, nil
		case "uptime":
			return sys.UptimeSeconds, nil
		case "os":
			return sys.Platform, nil
		case "kernel":
			return sys.KernelVersion, nil
		default:
			return sys.Arch, nil
		}

	case "cpu", "cpu-cores", "cpu-clock":
		info, err := probe.CPU(ctx)
		if err != nil {
			return nil, err
		}
		switch property {
		case "cpu":
			return info.Model, nil
		case "cpu-cores":
			return info.LogicalCores, nil
		default:
			return info.ClockMHz, nil
		}

	case "memory-total", "memory-free", "swap-total", "swap-free":
		mem, err := probe.Memory(ctx)
		if err != nil {
			return nil, err
		}
		switch property {
		case "memory-total":
			return mem.Total, nil
		case "memory-free":
			return mem.Free, nil
		case "swap-total":
			return mem.SwapTotal, nil
		default:
			return mem.SwapFree, nil
		}

	default:
		return nil, errors.New(errors.ErrConfig,
			"Unknown property: "+property,
			"Supported properties: "+strings.Join(getProperties, ", "))
	}
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output as JSON")
	getCmd.Flags().BoolVar(&getYAML, "yaml", false, "output as YAML")
	getCmd.Flags().BoolVar(&getPretty, "pretty", false, "indent JSON output")
	rootCmd.AddCommand(getCmd)
}
