// Package models defines the metric data structures exposed by the API.
// Every value here is built fresh per request and serialized straight to JSON;
// nothing is mutated after construction or shared across requests.
package models

import "time"

// MetricsSnapshot represents a single point-in-time collection of all
// host metrics returned by GET /api/metrics.
type MetricsSnapshot struct {
	CPUPercent        float64          `json:"cpu_percent"`
	LoadAvg           [3]float64       `json:"load_avg"`
	MemPercent        float64          `json:"mem_percent"`
	MemTotalBytes     uint64           `json:"mem_total_bytes"`
	MemUsedBytes      uint64           `json:"mem_used_bytes"`
	MemAvailableBytes uint64           `json:"mem_available_bytes"`
	Disk              []DiskUsageEntry `json:"disk"`
	NetIO             NetworkCounters  `json:"net_io"`
	UptimeSeconds     uint64           `json:"uptime_seconds"`
	Hostname          string           `json:"hostname"`
}

// DiskUsageEntry represents usage for a single mounted filesystem.
// Percent is the OS-reported utilization and may not equal used/total*100.
type DiskUsageEntry struct {
	Mount      string  `json:"mount"`
	TotalBytes uint64  `json:"total_bytes"`
	UsedBytes  uint64  `json:"used_bytes"`
	FreeBytes  uint64  `json:"free_bytes"`
	Percent    float64 `json:"percent"`
}

// NetworkCounters holds cumulative system-wide byte counters since the
// network stack was initialized. They may reset on reboot or wraparound.
type NetworkCounters struct {
	BytesSent uint64 `json:"bytes_sent"`
	BytesRecv uint64 `json:"bytes_recv"`
}

// APIResponse is the envelope for every JSON endpoint. Exactly one of
// Metrics or Error is populated; TS is always present.
type APIResponse struct {
	OK      bool             `json:"ok"`
	TS      string           `json:"ts"`
	Metrics *MetricsSnapshot `json:"metrics,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// timestampLayout is UTC ISO-8601 with second precision and a literal Z.
const timestampLayout = "2006-01-02T15:04:05Z"

// Timestamp returns the current time formatted for the TS envelope field.
func Timestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

// Success builds an OK envelope carrying the given snapshot.
func Success(snapshot *MetricsSnapshot) APIResponse {
	return APIResponse{OK: true, TS: Timestamp(), Metrics: snapshot}
}

// Failure builds an error envelope with the given message.
func Failure(message string) APIResponse {
	return APIResponse{OK: false, TS: Timestamp(), Error: message}
}
