package probe

import (
	"context"
	"sort"
	"strings"

	"github.com/gsys/gsys/internal/errors"
	"github.com/shirou/gopsutil/v4/disk"
)

// Storage reads cumulative IO counters for every block device.
func Storage(ctx context.Context) (*StorageInfo, error) {
	devs, err := DeviceCounters(ctx)
	if err != nil {
		return nil, err
	}
	return &StorageInfo{Devices: devs}, nil
}

// DeviceCounters reads the cumulative read/write counters for every block
// device, for the storage graph's rate computation. Partitions of a device
// already present are skipped so whole-disk traffic is not double-plotted.
func DeviceCounters(ctx context.Context) ([]DeviceIO, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read disk IO counters")
	}
	if len(counters) == 0 {
		return nil, errors.New(errors.ErrProbe, "No block devices reported", "")
	}

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}

	var out []DeviceIO
	for _, name := range names {
		if isPartition(name, names) {
			continue
		}
		c := counters[name]
		out = append(out, DeviceIO{
			Name:       name,
			ReadBytes:  c.ReadBytes,
			WriteBytes: c.WriteBytes,
			ReadCount:  c.ReadCount,
			WriteCount: c.WriteCount,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Mounts reads all mounted filesystems with usage.
func Mounts(ctx context.Context) ([]MountInfo, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list mounted filesystems")
	}

	var mounts []MountInfo
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			// Unreadable mountpoints (fuse, permissions) are skipped, not fatal.
			continue
		}
		mounts = append(mounts, MountInfo{
			Device:      p.Device,
			Mountpoint:  p.Mountpoint,
			Fstype:      p.Fstype,
			Total:       usage.Total,
			Free:        usage.Free,
			Used:        usage.Used,
			UsedPercent: usage.UsedPercent,
		})
	}
	return mounts, nil
}

// isPartition reports whether name extends another device name in the set
// with a numeric suffix (sda1 of sda, nvme0n1p2 of nvme0n1).
func isPartition(name string, all []string) bool {
	for _, other := range all {
		if other == name || !strings.HasPrefix(name, other) {
			continue
		}
		suffix := name[len(other):]
		suffix = strings.TrimPrefix(suffix, "p")
		if suffix != "" && strings.IndexFunc(suffix, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
			return true
		}
	}
	return false
}
