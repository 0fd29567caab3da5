// gopsutil-backed SystemProbe — the one production implementation.
// Each method is a thin, read-only adapter over the corresponding
// gopsutil package.
package collector

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"github.com/beycaCC/Server-Monitor/internal/models"
)

// GopsutilProbe implements SystemProbe using gopsutil.
type GopsutilProbe struct{}

// NewGopsutilProbe creates the production OS-statistics probe.
func NewGopsutilProbe() *GopsutilProbe {
	return &GopsutilProbe{}
}

// CPUPercent samples overall CPU utilization, blocking for the window.
func (p *GopsutilProbe) CPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("cpu sampling returned no values")
	}
	return percents[0], nil
}

// LoadAvg returns the 1/5/15-minute load averages. Platforms without the
// facility (Windows) surface an error here; the Collector degrades to zeros.
func (p *GopsutilProbe) LoadAvg(ctx context.Context) ([3]float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
}

// VirtualMemory returns the OS virtual-memory accounting.
func (p *GopsutilProbe) VirtualMemory(ctx context.Context) (*MemoryStat, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return &MemoryStat{
		Total:       v.Total,
		Used:        v.Used,
		Available:   v.Available,
		UsedPercent: v.UsedPercent,
	}, nil
}

// Partitions enumerates physical mounted filesystems.
func (p *GopsutilProbe) Partitions(ctx context.Context) ([]Partition, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}
	result := make([]Partition, 0, len(parts))
	for _, part := range parts {
		result = append(result, Partition{
			Mountpoint: part.Mountpoint,
			Fstype:     part.Fstype,
		})
	}
	return result, nil
}

// Usage returns disk usage for a single mount path.
func (p *GopsutilProbe) Usage(ctx context.Context, path string) (*DiskUsage, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, err
	}
	return &DiskUsage{
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// NetCounters returns cumulative system-wide sent/received byte counters.
func (p *GopsutilProbe) NetCounters(ctx context.Context) (models.NetworkCounters, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return models.NetworkCounters{}, err
	}
	if len(counters) == 0 {
		return models.NetworkCounters{}, nil
	}
	return models.NetworkCounters{
		BytesSent: counters[0].BytesSent,
		BytesRecv: counters[0].BytesRecv,
	}, nil
}

// BootTime returns the system boot time as a Unix timestamp.
func (p *GopsutilProbe) BootTime(ctx context.Context) (uint64, error) {
	return host.BootTimeWithContext(ctx)
}

// Hostname returns the OS-reported host name.
func (p *GopsutilProbe) Hostname() (string, error) {
	return os.Hostname()
}
