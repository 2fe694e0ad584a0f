// Package zone classifies delivery coordinates against the serviceable
// delivery area.
package zone

import "go-swifteats-api/internal/geo"

// Verdict is the result of a service-area check. Message is set only on
// rejection.
type Verdict struct {
	Allowed bool   `json:"allowed"`
	Zone    string `json:"zone,omitempty"`
	Message string `json:"message,omitempty"`
}

type boundingBox struct {
	name   string
	minLat float64
	maxLat float64
	minLon float64
	maxLon float64
}

// serviceZones are evaluated in order and the first match wins. Georgetown
// overlaps East Bank Demerara; points in the overlap belong to Georgetown
// because it is listed first. Reordering changes classification.
var serviceZones = []boundingBox{
	{name: "Georgetown", minLat: 6.78, maxLat: 6.85, minLon: -58.20, maxLon: -58.12},
	{name: "East Bank Demerara", minLat: 6.70, maxLat: 6.85, minLon: -58.25, maxLon: -58.15},
	{name: "East Coast Demerara", minLat: 6.75, maxLat: 6.90, minLon: -58.10, maxLon: -57.95},
}

const rejectionMessage = "We currently deliver only within Georgetown, East Bank Demerara, and East Coast Demerara."

// Locate classifies a point into a named service zone, or rejects it with a
// message listing the serviceable zones. Advisory only: it gates checkout,
// never cart mutation.
func Locate(p geo.Point) Verdict {
	for _, b := range serviceZones {
		if b.contains(p) {
			return Verdict{Allowed: true, Zone: b.name}
		}
	}
	return Verdict{Allowed: false, Message: rejectionMessage}
}

func (b boundingBox) contains(p geo.Point) bool {
	return p.Lat >= b.minLat && p.Lat <= b.maxLat &&
		p.Lon >= b.minLon && p.Lon <= b.maxLon
}

// Names returns the serviceable zone names in evaluation order.
func Names() []string {
	names := make([]string, 0, len(serviceZones))
	for _, b := range serviceZones {
		names = append(names, b.name)
	}
	return names
}
