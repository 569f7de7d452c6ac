package utils

import "fmt"

// FormatBytes renders a byte count with base-1024 scaling through B/KB/MB/GB.
// Whole numbers for the B unit, one decimal place above it.
func FormatBytes(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", v, units[i])
	}
	return fmt.Sprintf("%.1f %s", v, units[i])
}
