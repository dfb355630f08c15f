package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gsys/gsys/internal/logger"
	"github.com/gsys/gsys/internal/output"
	"github.com/gsys/gsys/internal/probe"
)

var (
	dumpJSON      bool
	dumpYAML      bool
	dumpPretty    bool
	dumpAll       bool
	dumpCPU       bool
	dumpMemory    bool
	dumpNetwork   bool
	dumpStorage   bool
	dumpMounts    bool
	dumpStats     bool
	dumpProcesses bool
	dumpProcLimit int
)

// Snapshot is one full dump of the selected sections. Unselected
// sections stay nil and drop out of the serialized output.
type Snapshot struct {
	System    *probe.SystemInfo   `json:"system,omitempty" yaml:"system,omitempty"`
	CPU       *probe.CPUInfo      `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory    *probe.MemoryInfo   `json:"memory,omitempty" yaml:"memory,omitempty"`
	Network   *probe.NetworkInfo  `json:"network,omitempty" yaml:"network,omitempty"`
	Storage   *probe.StorageInfo  `json:"storage,omitempty" yaml:"storage,omitempty"`
	Mounts    []probe.MountInfo   `json:"mounts,omitempty" yaml:"mounts,omitempty"`
	Stats     *probe.StatsInfo    `json:"stats,omitempty" yaml:"stats,omitempty"`
	Processes []probe.ProcessInfo `json:"processes,omitempty" yaml:"processes,omitempty"`
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump system information",
	Long: `Collect and print the selected categories of system information.
With no section flags, everything is dumped.

Examples:
  gsys dump
  gsys dump --cpu --memory
  gsys dump --processes --json --pretty`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dumpCommand(cmd.Context())
	},
}

func dumpCommand(ctx context.Context) error {
	snap, err := collectSnapshot(ctx, dumpSections())
	if err != nil {
		return err
	}
	format, err := resolveFormat(dumpJSON, dumpYAML)
	if err != nil {
		return err
	}
	return output.Write(os.Stdout, format, dumpPretty, snap)
}

// sections is the dump/watch selection set.
type sections struct {
	cpu, memory, network, storage bool
	mounts, stats, processes      bool
}

func (s sections) none() bool {
	return !s.cpu && !s.memory && !s.network && !s.storage &&
		!s.mounts && !s.stats && !s.processes
}

func dumpSections() sections {
	s := sections{
		cpu:       dumpCPU,
		memory:    dumpMemory,
		network:   dumpNetwork,
		storage:   dumpStorage,
		mounts:    dumpMounts,
		stats:     dumpStats,
		processes: dumpProcesses,
	}
	if dumpAll || s.none() {
		return sections{true, true, true, true, true, true, true}
	}
	return s
}

// collectSnapshot reads every selected section. The host identity block
// is always included. A section that fails to read fails the whole
// snapshot.
func collectSnapshot(ctx context.Context, s sections) (*Snapshot, error) {
	log := logger.NewStderr("dump")
	snap := &Snapshot{}

	var err error
	if snap.System, err = probe.System(ctx); err != nil {
		return nil, err
	}
	if s.cpu {
		if snap.CPU, err = probe.CPU(ctx); err != nil {
			return nil, err
		}
	}
	if s.memory {
		if snap.Memory, err = probe.Memory(ctx); err != nil {
			return nil, err
		}
	}
	if s.network {
		if snap.Network, err = probe.Network(ctx); err != nil {
			return nil, err
		}
	}
	if s.storage {
		if snap.Storage, err = probe.Storage(ctx); err != nil {
			return nil, err
		}
	}
	if s.mounts {
		if snap.Mounts, err = probe.Mounts(ctx); err != nil {
			return nil, err
		}
	}
	if s.stats {
		if snap.Stats, err = probe.Stats(ctx); err != nil {
			return nil, err
		}
	}
	if s.processes {
		if snap.Processes, err = probe.Processes(ctx, dumpProcLimit); err != nil {
			return nil, err
		}
	}

	log.Debug("collected snapshot")
	return snap, nil
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "output as JSON")
	dumpCmd.Flags().BoolVar(&dumpYAML, "yaml", false, "output as YAML")
	dumpCmd.Flags().BoolVar(&dumpPretty, "pretty", false, "indent JSON output")
	dumpCmd.Flags().BoolVar(&dumpAll, "all", false, "dump every section")
	dumpCmd.Flags().BoolVar(&dumpCPU, "cpu", false, "include the CPU section")
	dumpCmd.Flags().BoolVar(&dumpMemory, "memory", false, "include the memory section")
	dumpCmd.Flags().BoolVar(&dumpNetwork, "network", false, "include the network section")
	dumpCmd.Flags().BoolVar(&dumpStorage, "storage", false, "include the storage section")
	dumpCmd.Flags().BoolVar(&dumpMounts, "mounts", false, "include mounted filesystems")
	dumpCmd.Flags().BoolVar(&dumpStats, "stats", false, "include load and uptime")
	dumpCmd.Flags().BoolVar(&dumpProcesses, "processes", false, "include top processes")
	dumpCmd.Flags().IntVar(&dumpProcLimit, "process-limit", 10, "number of processes to list")
	rootCmd.AddCommand(dumpCmd)
}
