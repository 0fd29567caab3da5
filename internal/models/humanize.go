package models

import "fmt"

// byteUnits are the tiers used by BytesToHuman, escalating at 1024.
var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// BytesToHuman formats a byte count as a short human-readable string,
// e.g. 1023 -> "1023.0B", 1024 -> "1.0KB", 1048576 -> "1.0MB".
func BytesToHuman(n uint64) string {
	val := float64(n)
	i := 0
	for val >= 1024 && i < len(byteUnits)-1 {
		val /= 1024
		i++
	}
	return fmt.Sprintf("%.1f%s", val, byteUnits[i])
}
