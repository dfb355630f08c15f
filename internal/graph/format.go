package graph

import "fmt"

// FormatHz renders a frequency in the smallest unit that keeps the
// value below 1000.
func FormatHz(hz float64) string {
	units := []string{"Hz", "kHz", "MHz", "GHz", "THz"}
	i := 0
	for hz >= 1000 && i < len(units)-1 {
		hz /= 1000
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", hz, units[i])
	}
	return fmt.Sprintf("%.2f %s", hz, units[i])
}

// FormatBytes renders a byte count with a binary-unit suffix.
func FormatBytes(b float64) string {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
	i := 0
	for b >= 1024 && i < len(units)-1 {
		b /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", b, units[i])
	}
	return fmt.Sprintf("%.1f %s", b, units[i])
}

// FormatRate renders a byte rate per second.
func FormatRate(bytesPerSec float64) string {
	return FormatBytes(bytesPerSec) + "/s"
}

// FormatSeconds renders an elapsed-seconds axis label.
func FormatSeconds(s float64) string {
	return fmt.Sprintf("%.0fs", s)
}
