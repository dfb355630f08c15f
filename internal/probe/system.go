package probe

import (
	"context"

	"github.com/gsys/gsys/internal/errors"
	"github.com/shirou/gopsutil/v4/host"
)

// System reads the host identity block.
func System(ctx context.Context) (*SystemInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read host information")
	}

	return &SystemInfo{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Platform:      info.Platform,
		KernelVersion: info.KernelVersion,
		Arch:          info.KernelArch,
		UptimeSeconds: info.Uptime,
	}, nil
}
