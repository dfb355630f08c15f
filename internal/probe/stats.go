package probe

import (
	"context"
	"sort"

	"github.com/gsys/gsys/internal/errors"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats reads the load-average block.
func Stats(ctx context.Context) (*StatsInfo, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read load average")
	}
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read host information")
	}

	return &StatsInfo{
		Load1:         avg.Load1,
		Load5:         avg.Load5,
		Load15:        avg.Load15,
		Procs:         info.Procs,
		UptimeSeconds: info.Uptime,
	}, nil
}

// Processes lists running processes sorted by CPU usage, highest first.
// Processes that disappear mid-read are skipped.
func Processes(ctx context.Context, limit int) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list processes")
	}

	var out []ProcessInfo
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}
		memPct, err := p.MemoryPercentWithContext(ctx)
		if err != nil {
			continue
		}
		out = append(out, ProcessInfo{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: memPct,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CPUPercent > out[j].CPUPercent })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
