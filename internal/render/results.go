package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/msalah0e/gmaps/internal/maps"
)

// The layouts here follow a fixed scheme: numbered entries, three-space
// indented attribute lines, a blank line between entries. Attribute
// lines are skipped when the API left the field empty.

// Keys writes one place ID per line, nothing else.
func Keys(w io.Writer, places []maps.Place) {
	for _, p := range places {
		fmt.Fprintln(w, p.PlaceID)
	}
}

// Places writes a numbered place list.
func Places(w io.Writer, places []maps.Place) {
	for i, p := range places {
		name := p.Name
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, name)
		fmt.Fprintf(w, "   Place ID: %s\n", p.PlaceID)
		if p.Rating > 0 {
			fmt.Fprintf(w, "   Rating: %.1f/5.0\n", p.Rating)
		}
		if addr := placeAddress(p); addr != "" {
			fmt.Fprintf(w, "   Address: %s\n", addr)
		}
		loc := p.Geometry.Location
		if loc.Lat != 0 && loc.Lng != 0 {
			fmt.Fprintf(w, "   Location: %s\n", Coordinates(loc.Lat, loc.Lng))
		}
		fmt.Fprintln(w)
	}
}

func placeAddress(p maps.Place) string {
	if p.FormattedAddress != "" {
		return p.FormattedAddress
	}
	return p.Vicinity
}

// PlaceDetail writes the full record for one place. placeID is the
// requested ID, echoed even when the response omits its own.
func PlaceDetail(w io.Writer, p *maps.Place, placeID string) {
	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	fmt.Fprintf(w, "\U0001F4CD %s\n", name)
	fmt.Fprintf(w, "   Place ID: %s\n", placeID)
	if p.FormattedAddress != "" {
		fmt.Fprintf(w, "   Address: %s\n", p.FormattedAddress)
	}
	if p.PhoneNumber != "" {
		fmt.Fprintf(w, "   Phone: %s\n", p.PhoneNumber)
	}
	if p.Website != "" {
		fmt.Fprintf(w, "   Website: %s\n", p.Website)
	}
	if p.Rating > 0 {
		fmt.Fprintf(w, "   Rating: %.1f/5.0\n", p.Rating)
		if p.UserRatingsTotal > 0 {
			fmt.Fprintf(w, "   Total Reviews: %d\n", p.UserRatingsTotal)
		}
	}
	loc := p.Geometry.Location
	if loc.Lat != 0 && loc.Lng != 0 {
		fmt.Fprintf(w, "   Location: %s\n", Coordinates(loc.Lat, loc.Lng))
	}
	if p.OpeningHours != nil && p.OpeningHours.OpenNow != nil {
		status := "Closed"
		if *p.OpeningHours.OpenNow {
			status = "Open"
		}
		fmt.Fprintf(w, "   Status: %s\n", status)
	}
	if len(p.Types) > 0 {
		types := p.Types
		if len(types) > 5 {
			types = types[:5]
		}
		fmt.Fprintf(w, "   Types: %s\n", strings.Join(types, ", "))
	}
	if len(p.Reviews) > 0 {
		fmt.Fprintf(w, "\n   Reviews (%d):\n", len(p.Reviews))
		shown := p.Reviews
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, r := range shown {
			author := r.AuthorName
			if author == "" {
				author = "Anonymous"
			}
			fmt.Fprintf(w, "   \u2022 %s (%d/5): %s...\n", author, r.Rating, clip(r.Text, 200))
		}
	}
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Predictions writes a numbered suggestion list.
func Predictions(w io.Writer, preds []maps.Prediction) {
	for i, p := range preds {
		fmt.Fprintf(w, "%d. %s\n", i+1, p.Description)
		if p.PlaceID != "" {
			fmt.Fprintf(w, "   Place ID: %s\n", p.PlaceID)
		}
		fmt.Fprintln(w)
	}
}

// GeocodeResults writes forward geocoding matches with coordinates.
func GeocodeResults(w io.Writer, results []maps.GeocodeResult) {
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.FormattedAddress)
		loc := r.Geometry.Location
		if loc.Lat != 0 && loc.Lng != 0 {
			fmt.Fprintf(w, "   Coordinates: %s\n", Coordinates(loc.Lat, loc.Lng))
		}
		if r.PlaceID != "" {
			fmt.Fprintf(w, "   Place ID: %s\n", r.PlaceID)
		}
		fmt.Fprintln(w)
	}
}

// ReverseResults writes reverse geocoding matches. The coordinates were
// the input, so only addresses are shown.
func ReverseResults(w io.Writer, results []maps.GeocodeResult) {
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.FormattedAddress)
		if r.PlaceID != "" {
			fmt.Fprintf(w, "   Place ID: %s\n", r.PlaceID)
		}
		fmt.Fprintln(w)
	}
}

const maxStepsShown = 10

// Routes writes each route with totals, legs and up to ten steps per leg.
func Routes(w io.Writer, routes []maps.Route) {
	for idx, route := range routes {
		if len(routes) > 1 {
			fmt.Fprintf(w, "\n--- Route %d ---\n\n", idx+1)
		}

		var totalDistance, totalDuration int
		for _, leg := range route.Legs {
			totalDistance += leg.Distance.Value
			totalDuration += leg.Duration.Value
		}

		fmt.Fprintf(w, "Route: %s\n", route.Summary)
		fmt.Fprintf(w, "Total Distance: %s\n", Distance(totalDistance))
		fmt.Fprintf(w, "Total Duration: %s\n", Duration(totalDuration))
		fmt.Fprintln(w)

		for li, leg := range route.Legs {
			if len(route.Legs) > 1 {
				fmt.Fprintf(w, "Leg %d:\n", li+1)
			}
			fmt.Fprintf(w, "  From: %s\n", leg.StartAddress)
			fmt.Fprintf(w, "  To: %s\n", leg.EndAddress)
			fmt.Fprintf(w, "  Distance: %s\n", Distance(leg.Distance.Value))
			fmt.Fprintf(w, "  Duration: %s\n", Duration(leg.Duration.Value))
			fmt.Fprintln(w)

			if len(leg.Steps) == 0 {
				continue
			}
			fmt.Fprintln(w, "  Steps:")
			shown := leg.Steps
			if len(shown) > maxStepsShown {
				shown = shown[:maxStepsShown]
			}
			for _, step := range shown {
				fmt.Fprintf(w, "    \u2022 %s\n", stripBold(step.HTMLInstructions))
				fmt.Fprintf(w, "      %s / %s\n", Distance(step.Distance.Value), Duration(step.Duration.Value))
			}
			if hidden := len(leg.Steps) - maxStepsShown; hidden > 0 {
				fmt.Fprintf(w, "    ... and %d more steps\n", hidden)
			}
			fmt.Fprintln(w)
		}
	}
}

func stripBold(s string) string {
	s = strings.ReplaceAll(s, "<b>", "")
	return strings.ReplaceAll(s, "</b>", "")
}

// RouteSummary writes the one-glance version of the best route.
func RouteSummary(w io.Writer, route maps.Route, mode string) {
	var totalDistance, totalDuration int
	for _, leg := range route.Legs {
		totalDistance += leg.Distance.Value
		totalDuration += leg.Duration.Value
	}
	fmt.Fprintf(w, "Distance: %s\n", Distance(totalDistance))
	fmt.Fprintf(w, "Duration: %s\n", Duration(totalDuration))
	fmt.Fprintf(w, "Mode: %s\n", mode)
}

// Matrix writes every origin/destination pairing, falling back to the
// element status when a pairing could not be routed.
func Matrix(w io.Writer, m *maps.MatrixResponse) {
	fmt.Fprintf(w, "Distance Matrix:\n\n")
	for i, row := range m.Rows {
		origin := fmt.Sprintf("Origin %d", i+1)
		if i < len(m.OriginAddresses) {
			origin = m.OriginAddresses[i]
		}
		fmt.Fprintf(w, "From: %s\n", origin)

		for j, el := range row.Elements {
			destination := fmt.Sprintf("Destination %d", j+1)
			if j < len(m.DestinationAddresses) {
				destination = m.DestinationAddresses[j]
			}
			fmt.Fprintf(w, "  To: %s\n", destination)
			if el.Status == maps.StatusOK {
				fmt.Fprintf(w, "    Distance: %s\n", Distance(el.Distance.Value))
				fmt.Fprintf(w, "    Duration: %s\n", Duration(el.Duration.Value))
			} else {
				fmt.Fprintf(w, "    Status: %s\n", el.Status)
			}
		}
		fmt.Fprintln(w)
	}
}

// Timezone writes the zone name and offsets. The DST line only appears
// when it differs from the raw offset.
func Timezone(w io.Writer, tz *maps.TimezoneInfo) {
	fmt.Fprintf(w, "Timezone: %s\n", tz.TimeZoneID)
	fmt.Fprintf(w, "Name: %s\n", tz.TimeZoneName)
	fmt.Fprintf(w, "UTC Offset: %.1f hours\n", float64(tz.RawOffset)/3600)
	if tz.DSTOffset != tz.RawOffset {
		fmt.Fprintf(w, "DST Offset: %.1f hours\n", float64(tz.DSTOffset)/3600)
	}
}

// Elevations writes one entry per sampled point.
func Elevations(w io.Writer, results []maps.ElevationResult) {
	for i, r := range results {
		fmt.Fprintf(w, "%d. Location: %s\n", i+1, Coordinates(r.Location.Lat, r.Location.Lng))
		fmt.Fprintf(w, "   Elevation: %.2fm\n", r.Elevation)
		if r.Resolution > 0 {
			fmt.Fprintf(w, "   Resolution: %.2fm\n", r.Resolution)
		}
		fmt.Fprintln(w)
	}
}
