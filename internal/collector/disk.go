// Disk usage enumeration — per-mount collection with an explicit
// skip-on-permission policy and a guaranteed root fallback.
package collector

import (
	"context"
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"github.com/beycaCC/Server-Monitor/internal/models"
)

// pseudoFSTypes contains filesystem types excluded from disk metrics.
// These are synthetic mounts that don't represent local storage devices.
var pseudoFSTypes = map[string]bool{
	"tmpfs":    true,
	"devtmpfs": true,
	"squashfs": true,
}

// rootMount is the fallback path queried when filtering leaves no entries.
const rootMount = "/"

// collectDisks enumerates mounted filesystems and returns one usage entry
// per distinct mount path (first occurrence wins). Pseudo filesystems are
// filtered out. Mounts the process may not stat are skipped; any other
// per-mount failure aborts the collection. The result is never empty: if
// nothing survives filtering, the root filesystem is queried directly.
func (c *Collector) collectDisks(ctx context.Context) ([]models.DiskUsageEntry, error) {
	partitions, err := c.probe.Partitions(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(partitions))
	var entries []models.DiskUsageEntry

	for _, p := range partitions {
		if seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true

		if pseudoFSTypes[p.Fstype] {
			continue
		}

		usage, err := c.probe.Usage(ctx, p.Mountpoint)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				// Best effort: an unreadable mount is dropped, not fatal.
				c.logger.Debug("Skipping unreadable mount",
					zap.String("mount", p.Mountpoint),
					zap.Error(err))
				continue
			}
			return nil, err
		}

		entries = append(entries, models.DiskUsageEntry{
			Mount:      p.Mountpoint,
			TotalBytes: usage.Total,
			UsedBytes:  usage.Used,
			FreeBytes:  usage.Free,
			Percent:    usage.UsedPercent,
		})
	}

	if len(entries) == 0 {
		usage, err := c.probe.Usage(ctx, rootMount)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.DiskUsageEntry{
			Mount:      rootMount,
			TotalBytes: usage.Total,
			UsedBytes:  usage.Used,
			FreeBytes:  usage.Free,
			Percent:    usage.UsedPercent,
		})
	}

	return entries, nil
}
