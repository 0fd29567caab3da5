// Package collector gathers heterogeneous OS counters and normalizes them
// into a single MetricsSnapshot. All OS access goes through the SystemProbe
// interface so the collection policies can be tested against a fake probe.
package collector

import (
	"context"
	"time"

	"github.com/beycaCC/Server-Monitor/internal/models"
)

// SystemProbe is the platform-specific OS-statistics capability used by the
// Collector. The production implementation is backed by gopsutil; tests
// substitute a fake.
type SystemProbe interface {
	// CPUPercent samples overall CPU utilization over the given window,
	// averaged across all logical cores. It blocks for the window duration.
	CPUPercent(ctx context.Context, window time.Duration) (float64, error)

	// LoadAvg returns the 1/5/15-minute load averages.
	LoadAvg(ctx context.Context) ([3]float64, error)

	// VirtualMemory returns the OS virtual-memory accounting.
	VirtualMemory(ctx context.Context) (*MemoryStat, error)

	// Partitions enumerates mounted filesystems.
	Partitions(ctx context.Context) ([]Partition, error)

	// Usage returns disk usage for a single mount path.
	Usage(ctx context.Context, path string) (*DiskUsage, error)

	// NetCounters returns cumulative system-wide network byte counters.
	NetCounters(ctx context.Context) (models.NetworkCounters, error)

	// BootTime returns the system boot time as a Unix timestamp in seconds.
	BootTime(ctx context.Context) (uint64, error)

	// Hostname returns the OS-reported host name.
	Hostname() (string, error)
}

// MemoryStat holds virtual-memory accounting values.
type MemoryStat struct {
	Total       uint64
	Used        uint64
	Available   uint64
	UsedPercent float64
}

// Partition identifies one mounted filesystem.
type Partition struct {
	Mountpoint string
	Fstype     string
}

// DiskUsage holds usage values for a single mount.
type DiskUsage struct {
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}
