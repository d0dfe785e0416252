package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	geodist "github.com/paulmach/orb/geo"
)

// MeasureMode is the scratch measurement tool's mode.
type MeasureMode string

const (
	MeasureNone     MeasureMode = "none"
	MeasureDistance MeasureMode = "distance"
	MeasureArea     MeasureMode = "area"
)

// Measurement is the transient measure-tool state machine:
// none → distance|area → none. Toggling the active mode again leaves it and
// clears all points. Nothing here is ever persisted.
type Measurement struct {
	Mode   MeasureMode
	Points []orb.Point
}

// NewMeasurement starts with no active mode.
func NewMeasurement() *Measurement {
	return &Measurement{Mode: MeasureNone}
}

// Toggle switches the tool into the given mode, or back out of it when the
// same mode is toggled twice. Either way the point list is cleared.
func (m *Measurement) Toggle(mode MeasureMode) {
	if m.Mode == mode {
		m.Mode = MeasureNone
	} else {
		m.Mode = mode
	}
	m.Points = nil
}

// AddPoint appends a vertex. Clicks while no mode is active are ignored.
func (m *Measurement) AddPoint(p orb.Point) {
	if m.Mode == MeasureNone {
		return
	}
	m.Points = append(m.Points, p)
}

// Result formats the running measurement, or "" when there is not enough to
// measure yet. Distance reads in feet, switching to miles at 5280 ft; area
// reads in sq ft, switching to acres at 1 acre.
func (m *Measurement) Result() string {
	switch m.Mode {
	case MeasureDistance:
		if len(m.Points) < 2 {
			return ""
		}
		var meters float64
		for i := 1; i < len(m.Points); i++ {
			meters += geodist.Distance(m.Points[i-1], m.Points[i])
		}
		feet := meters * FeetPerMeter
		if feet >= 5280 {
			return fmt.Sprintf("%.2f miles", feet/5280)
		}
		return fmt.Sprintf("%d ft", int(math.Round(feet)))
	case MeasureArea:
		if len(m.Points) < 3 {
			return ""
		}
		ring := make(orb.Ring, 0, len(m.Points)+1)
		ring = append(ring, m.Points...)
		ring = append(ring, m.Points[0])
		m2, err := AreaSquareMeters(orb.Polygon{ring})
		if err != nil {
			return ""
		}
		acres := m2 * AcresPerSquareMeter
		if acres >= 1 {
			return fmt.Sprintf("%.2f acres", acres)
		}
		return fmt.Sprintf("%d sq ft", int(math.Round(m2*SquareFeetPerMeter)))
	default:
		return ""
	}
}
