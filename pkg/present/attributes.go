package present

import (
	"strconv"
	"strings"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

// NotAvailable is rendered in place of any absent optional attribute.
const NotAvailable = "not available"

// Mass messages.
const (
	MassIncomplete = "Mass data is incomplete or not available."
	MassMissing    = "No mass data provided by the API."
)

// Attribute is one physical attribute row of a detail view.
type Attribute struct {
	Label     string
	Value     string // formatted value without unit; empty when not available
	Unit      string
	Available bool
}

// Text returns the value with its unit, or NotAvailable.
func (a Attribute) Text() string {
	if !a.Available {
		return NotAvailable
	}
	if a.Unit == "" {
		return a.Value
	}
	return a.Value + " " + a.Unit
}

// Attributes lists every physical attribute of b in display order. Absent
// attributes are included with Available set to false.
func Attributes(b solarsys.CelestialBody) []Attribute {
	return []Attribute{
		text("Body Type", b.BodyType),
		text("Alternative Name", b.AlternativeName),
		notation("Volume", b.Vol, "km³"),
		number("Density", b.Density, "g/cm³"),
		number("Gravity", b.Gravity, "m/s²"),
		number("Escape Velocity", b.Escape, "m/s"),
		number("Mean Radius", b.MeanRadius, "km"),
		number("Equatorial Radius", b.EquaRadius, "km"),
		number("Polar Radius", b.PolarRadius, "km"),
		number("Flattening", b.Flattening, ""),
		number("Semimajor Axis", b.SemimajorAxis, "km"),
		number("Perihelion", b.Perihelion, "km"),
		number("Aphelion", b.Aphelion, "km"),
		number("Eccentricity", b.Eccentricity, ""),
		number("Inclination", b.Inclination, "°"),
		number("Sidereal Orbit", b.SideralOrbit, "days"),
		number("Sidereal Rotation", b.SideralRotation, "hours"),
		number("Axial Tilt", b.AxialTilt, "°"),
		integer("Average Temperature", b.AvgTemp, "K"),
		orbits(b.AroundPlanet),
		moons(b.Moons),
		text("Discovered By", b.DiscoveredBy),
		text("Discovery Date", b.DiscoveryDate),
	}
}

func number(label string, v *float64, unit string) Attribute {
	if v == nil {
		return Attribute{Label: label, Unit: unit}
	}
	return Attribute{Label: label, Value: formatFloat(*v), Unit: unit, Available: true}
}

func integer(label string, v *int, unit string) Attribute {
	if v == nil {
		return Attribute{Label: label, Unit: unit}
	}
	return Attribute{Label: label, Value: strconv.Itoa(*v), Unit: unit, Available: true}
}

// text treats an empty string like an absent one; the API sends "" for
// unknown discovery data.
func text(label string, v *string) Attribute {
	if v == nil || *v == "" {
		return Attribute{Label: label}
	}
	return Attribute{Label: label, Value: *v, Available: true}
}

func notation(label string, v *solarsys.Volume, unit string) Attribute {
	if v == nil || !v.Complete() {
		return Attribute{Label: label, Unit: unit}
	}
	return Attribute{Label: label, Value: v.String(), Unit: unit, Available: true}
}

func orbits(p *solarsys.Planet) Attribute {
	if p == nil || p.Planet == "" {
		return Attribute{Label: "Orbits"}
	}
	return Attribute{Label: "Orbits", Value: p.Planet, Available: true}
}

func moons(ms []solarsys.Moon) Attribute {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		if m.Moon != "" {
			names = append(names, m.Moon)
		}
	}
	if len(names) == 0 {
		return Attribute{Label: "Moons"}
	}
	return Attribute{
		Label:     "Moons",
		Value:     strconv.Itoa(len(names)) + " (" + strings.Join(names, ", ") + ")",
		Available: true,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
