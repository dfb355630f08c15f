package probe

import (
	"context"

	"github.com/gsys/gsys/internal/errors"
	"github.com/shirou/gopsutil/v4/mem"
)

// Memory reads the full memory block including swap.
func Memory(ctx context.Context) (*MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read virtual memory")
	}
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read swap memory")
	}

	return &MemoryInfo{
		Total:     vm.Total,
		Available: vm.Available,
		Used:      vm.Used,
		Free:      vm.Free,
		Cached:    vm.Cached,
		Buffers:   vm.Buffers,
		SwapTotal: swap.Total,
		SwapUsed:  swap.Used,
		SwapFree:  swap.Free,
	}, nil
}

// MemorySample reads the used/cached/free triple tracked by the memory
// graph in one call so the three series stay mutually consistent.
func MemorySample(ctx context.Context) (MemoryReading, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryReading{}, errors.Wrap(err, "Failed to read virtual memory")
	}
	return MemoryReading{Used: vm.Used, Cached: vm.Cached, Free: vm.Free}, nil
}
