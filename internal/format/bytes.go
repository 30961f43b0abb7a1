package format

import "fmt"

// FormatBytes formats a byte count for display using binary (1024-based) units.
//
// Parameters:
//   - b: The number of bytes to format.
//
// Returns:
//   - string: A human-readable representation, e.g. "512 B", "5.0 KB", "2.0 GB".
func FormatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
