// Package probe reads current OS-level metrics through gopsutil. It is
// the boundary the rest of gsys sees: synchronous "read current value"
// calls that may fail, with no state beyond the OS itself.
package probe

// SystemInfo is the general host identity block shown by `gsys dump`.
type SystemInfo struct {
	Hostname      string `json:"hostname" yaml:"hostname"`
	OS            string `json:"os" yaml:"os"`
	Platform      string `json:"platform" yaml:"platform"`
	KernelVersion string `json:"kernel_version" yaml:"kernel_version"`
	Arch          string `json:"arch" yaml:"arch"`
	UptimeSeconds uint64 `json:"uptime_seconds" yaml:"uptime_seconds"`
}

// CoreInfo describes one logical processor.
type CoreInfo struct {
	ID        int32   `json:"id" yaml:"id"`
	Model     string  `json:"model" yaml:"model"`
	FreqHz    float64 `json:"freq_hz" yaml:"freq_hz"`
	PhysCores int32   `json:"physical_cores" yaml:"physical_cores"`
}

// CPUInfo is the processor block: model, counts, and per-core clocks.
type CPUInfo struct {
	Model         string     `json:"model" yaml:"model"`
	LogicalCores  int        `json:"logical_cores" yaml:"logical_cores"`
	PhysicalCores int        `json:"physical_cores" yaml:"physical_cores"`
	ClockMHz      float64    `json:"clock_mhz" yaml:"clock_mhz"`
	Cores         []CoreInfo `json:"cores" yaml:"cores"`
}

// CoreFreq is one core's current frequency reading, the sub-metric
// tracked by the CPU graph.
type CoreFreq struct {
	ID int32
	Hz float64
}

// MemoryInfo is the memory block for dump/get output.
type MemoryInfo struct {
	Total     uint64 `json:"total" yaml:"total"`
	Available uint64 `json:"available" yaml:"available"`
	Used      uint64 `json:"used" yaml:"used"`
	Free      uint64 `json:"free" yaml:"free"`
	Cached    uint64 `json:"cached" yaml:"cached"`
	Buffers   uint64 `json:"buffers" yaml:"buffers"`
	SwapTotal uint64 `json:"swap_total" yaml:"swap_total"`
	SwapUsed  uint64 `json:"swap_used" yaml:"swap_used"`
	SwapFree  uint64 `json:"swap_free" yaml:"swap_free"`
}

// MemoryReading is the instantaneous triple tracked by the memory graph.
type MemoryReading struct {
	Used   uint64
	Cached uint64
	Free   uint64
}

// InterfaceInfo carries cumulative IO counters for one network interface.
type InterfaceInfo struct {
	Name        string `json:"name" yaml:"name"`
	BytesRecv   uint64 `json:"bytes_recv" yaml:"bytes_recv"`
	BytesSent   uint64 `json:"bytes_sent" yaml:"bytes_sent"`
	PacketsRecv uint64 `json:"packets_recv" yaml:"packets_recv"`
	PacketsSent uint64 `json:"packets_sent" yaml:"packets_sent"`
	ErrIn       uint64 `json:"err_in" yaml:"err_in"`
	ErrOut      uint64 `json:"err_out" yaml:"err_out"`
}

// NetworkInfo is the network block for dump output.
type NetworkInfo struct {
	Interfaces []InterfaceInfo `json:"interfaces" yaml:"interfaces"`
}

// DeviceIO carries cumulative IO counters for one block device, the
// sub-metric pair tracked by the storage graph.
type DeviceIO struct {
	Name       string `json:"name" yaml:"name"`
	ReadBytes  uint64 `json:"read_bytes" yaml:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes" yaml:"write_bytes"`
	ReadCount  uint64 `json:"read_count" yaml:"read_count"`
	WriteCount uint64 `json:"write_count" yaml:"write_count"`
}

// StorageInfo is the storage block for dump output.
type StorageInfo struct {
	Devices []DeviceIO `json:"devices" yaml:"devices"`
}

// MountInfo describes one mounted filesystem.
type MountInfo struct {
	Device      string  `json:"device" yaml:"device"`
	Mountpoint  string  `json:"mountpoint" yaml:"mountpoint"`
	Fstype      string  `json:"fstype" yaml:"fstype"`
	Total       uint64  `json:"total" yaml:"total"`
	Free        uint64  `json:"free" yaml:"free"`
	Used        uint64  `json:"used" yaml:"used"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
}

// ProcessInfo is one row of the processes dump.
type ProcessInfo struct {
	PID        int32   `json:"pid" yaml:"pid"`
	Name       string  `json:"name" yaml:"name"`
	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemPercent float32 `json:"mem_percent" yaml:"mem_percent"`
}

// StatsInfo is the load/uptime block for dump and watch output.
type StatsInfo struct {
	Load1         float64 `json:"load1" yaml:"load1"`
	Load5         float64 `json:"load5" yaml:"load5"`
	Load15        float64 `json:"load15" yaml:"load15"`
	Procs         uint64  `json:"procs" yaml:"procs"`
	UptimeSeconds uint64  `json:"uptime_seconds" yaml:"uptime_seconds"`
}
