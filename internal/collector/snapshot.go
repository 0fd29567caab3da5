package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/beycaCC/Server-Monitor/internal/models"
)

// DefaultCPUSample is the blocking window used to measure CPU utilization
// when no window is configured.
const DefaultCPUSample = 200 * time.Millisecond

// Collector assembles a MetricsSnapshot from the injected SystemProbe.
// It holds no mutable state; a single Collector is safe to share across
// concurrent requests.
type Collector struct {
	probe     SystemProbe
	logger    *zap.Logger
	cpuSample time.Duration
}

// New creates a Collector using the given probe. A non-positive cpuSample
// falls back to DefaultCPUSample.
func New(probe SystemProbe, logger *zap.Logger, cpuSample time.Duration) *Collector {
	if cpuSample <= 0 {
		cpuSample = DefaultCPUSample
	}
	return &Collector{
		probe:     probe,
		logger:    logger,
		cpuSample: cpuSample,
	}
}

// Collect queries the OS once and returns a fresh snapshot. Any query
// failure aborts the whole collection, with two exceptions: a missing
// load-average facility degrades to zeros, and per-mount permission
// errors drop just that mount (see collectDisks).
func (c *Collector) Collect(ctx context.Context) (*models.MetricsSnapshot, error) {
	// The one intentionally blocking step: a short fixed sampling window.
	cpuPercent, err := c.probe.CPUPercent(ctx, c.cpuSample)
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	loadAvg, err := c.probe.LoadAvg(ctx)
	if err != nil {
		// No load-average facility on this platform. Report zeros.
		c.logger.Debug("Load average unavailable", zap.Error(err))
		loadAvg = [3]float64{}
	}

	vm, err := c.probe.VirtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	diskEntries, err := c.collectDisks(ctx)
	if err != nil {
		return nil, fmt.Errorf("disk: %w", err)
	}

	netIO, err := c.probe.NetCounters(ctx)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	uptime, err := c.uptimeSeconds(ctx)
	if err != nil {
		return nil, fmt.Errorf("uptime: %w", err)
	}

	hostname, err := c.probe.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	return &models.MetricsSnapshot{
		CPUPercent:        cpuPercent,
		LoadAvg:           loadAvg,
		MemPercent:        vm.UsedPercent,
		MemTotalBytes:     vm.Total,
		MemUsedBytes:      vm.Used,
		MemAvailableBytes: vm.Available,
		Disk:              diskEntries,
		NetIO:             netIO,
		UptimeSeconds:     uptime,
		Hostname:          hostname,
	}, nil
}

// uptimeSeconds computes now minus boot time, truncated to whole seconds.
// A boot time in the future (clock skew) clamps to zero rather than
// wrapping around.
func (c *Collector) uptimeSeconds(ctx context.Context) (uint64, error) {
	boot, err := c.probe.BootTime(ctx)
	if err != nil {
		return 0, err
	}
	now := time.Now().Unix()
	if now < 0 || uint64(now) < boot {
		return 0, nil
	}
	return uint64(now) - boot, nil
}
