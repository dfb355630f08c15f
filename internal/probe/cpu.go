package probe

import (
	"context"

	"github.com/gsys/gsys/internal/errors"
	"github.com/shirou/gopsutil/v4/cpu"
)

// CPU reads the processor block: model, core counts, per-core clocks.
func CPU(ctx context.Context) (*CPUInfo, error) {
	stats, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read CPU information")
	}
	if len(stats) == 0 {
		return nil, errors.New(errors.ErrProbe, "No CPU information reported", "")
	}

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to count logical cores")
	}
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to count physical cores")
	}

	info := &CPUInfo{
		Model:         stats[0].ModelName,
		LogicalCores:  logical,
		PhysicalCores: physical,
		ClockMHz:      stats[0].Mhz,
	}
	for _, s := range stats {
		info.Cores = append(info.Cores, CoreInfo{
			ID:        s.CPU,
			Model:     s.ModelName,
			FreqHz:    s.Mhz * 1e6,
			PhysCores: s.Cores,
		})
	}
	return info, nil
}

// CoreFrequencies reads the current clock of every logical core, for the
// CPU graph. Readings come back in core-ID order.
func CoreFrequencies(ctx context.Context) ([]CoreFreq, error) {
	stats, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read core frequencies")
	}
	if len(stats) == 0 {
		return nil, errors.New(errors.ErrProbe, "No core frequencies reported", "")
	}

	freqs := make([]CoreFreq, 0, len(stats))
	for _, s := range stats {
		freqs = append(freqs, CoreFreq{ID: s.CPU, Hz: s.Mhz * 1e6})
	}
	return freqs, nil
}
