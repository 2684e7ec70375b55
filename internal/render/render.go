// Package render turns API results into the CLI's output: a compact
// human layout, pipe-friendly identifier lists, and verbatim JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes v indented with two spaces, matching the layout of the
// remote documents themselves. Result lists are passed as their
// preserved raw payloads so field order and number formatting survive.
func JSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// Coordinates formats a coordinate pair for display.
func Coordinates(lat, lng float64) string {
	return fmt.Sprintf("%.6f,%.6f", lat, lng)
}

// Distance renders meters with precision scaled to magnitude: whole
// meters under a kilometer, then kilometers with shrinking precision.
func Distance(meters int) string {
	m := float64(meters)
	switch {
	case m < 1000:
		return fmt.Sprintf("%.0fm", m)
	case m < 10000:
		return fmt.Sprintf("%.2fkm", m/1000)
	default:
		return fmt.Sprintf("%.1fkm", m/1000)
	}
}

// Duration renders seconds as the largest two useful units.
func Duration(seconds int) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		m, s := seconds/60, seconds%60
		if s > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		h, m := seconds/3600, (seconds%3600)/60
		if m > 0 {
			return fmt.Sprintf("%dh %dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
}
