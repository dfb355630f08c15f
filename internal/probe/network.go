package probe

import (
	"context"

	"github.com/gsys/gsys/internal/errors"
	"github.com/shirou/gopsutil/v4/net"
)

// Network reads per-interface cumulative IO counters.
func Network(ctx context.Context) (*NetworkInfo, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read network counters")
	}

	info := &NetworkInfo{}
	for _, c := range counters {
		info.Interfaces = append(info.Interfaces, InterfaceInfo{
			Name:        c.Name,
			BytesRecv:   c.BytesRecv,
			BytesSent:   c.BytesSent,
			PacketsRecv: c.PacketsRecv,
			PacketsSent: c.PacketsSent,
			ErrIn:       c.Errin,
			ErrOut:      c.Errout,
		})
	}
	return info, nil
}

// InterfaceCounters reads the cumulative byte counters for every
// interface, for the network graph's rate computation. Loopback devices
// are skipped; plotting lo traffic only obscures the real interfaces.
func InterfaceCounters(ctx context.Context) ([]InterfaceInfo, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read network counters")
	}

	var out []InterfaceInfo
	for _, c := range counters {
		if c.Name == "lo" || c.Name == "lo0" {
			continue
		}
		out = append(out, InterfaceInfo{
			Name:      c.Name,
			BytesRecv: c.BytesRecv,
			BytesSent: c.BytesSent,
		})
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrProbe, "No non-loopback network interfaces found", "")
	}
	return out, nil
}
