package solarsys

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CelestialBody is one record of the bodies collection.
//
// Name and ID are always set on a successfully decoded body. Every pointer or
// slice field is nil when the API omitted it, sent null, or sent a value of an
// unexpected type.
type CelestialBody struct {
	Name            string   `json:"name" yaml:"name"`
	ID              string   `json:"id" yaml:"id"`
	EnglishName     *string  `json:"englishName,omitempty" yaml:"englishName,omitempty"`
	AlternativeName *string  `json:"alternativeName,omitempty" yaml:"alternativeName,omitempty"`
	IsPlanet        *bool    `json:"isPlanet,omitempty" yaml:"isPlanet,omitempty"`
	BodyType        *string  `json:"bodyType,omitempty" yaml:"bodyType,omitempty"`
	Mass            *Mass    `json:"mass,omitempty" yaml:"mass,omitempty"`
	Vol             *Volume  `json:"vol,omitempty" yaml:"vol,omitempty"`
	Density         *float64 `json:"density,omitempty" yaml:"density,omitempty"`
	Gravity         *float64 `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	Escape          *float64 `json:"escape,omitempty" yaml:"escape,omitempty"`
	MeanRadius      *float64 `json:"meanRadius,omitempty" yaml:"meanRadius,omitempty"`
	EquaRadius      *float64 `json:"equaRadius,omitempty" yaml:"equaRadius,omitempty"`
	PolarRadius     *float64 `json:"polarRadius,omitempty" yaml:"polarRadius,omitempty"`
	Flattening      *float64 `json:"flattening,omitempty" yaml:"flattening,omitempty"`
	SemimajorAxis   *float64 `json:"semimajorAxis,omitempty" yaml:"semimajorAxis,omitempty"`
	Perihelion      *float64 `json:"perihelion,omitempty" yaml:"perihelion,omitempty"`
	Aphelion        *float64 `json:"aphelion,omitempty" yaml:"aphelion,omitempty"`
	Eccentricity    *float64 `json:"eccentricity,omitempty" yaml:"eccentricity,omitempty"`
	Inclination     *float64 `json:"inclination,omitempty" yaml:"inclination,omitempty"`
	SideralOrbit    *float64 `json:"sideralOrbit,omitempty" yaml:"sideralOrbit,omitempty"`
	SideralRotation *float64 `json:"sideralRotation,omitempty" yaml:"sideralRotation,omitempty"`
	AxialTilt       *float64 `json:"axialTilt,omitempty" yaml:"axialTilt,omitempty"`
	AvgTemp         *int     `json:"avgTemp,omitempty" yaml:"avgTemp,omitempty"`
	AroundPlanet    *Planet  `json:"aroundPlanet,omitempty" yaml:"aroundPlanet,omitempty"`
	Moons           []Moon   `json:"moons,omitempty" yaml:"moons,omitempty"`
	DiscoveredBy    *string  `json:"discoveredBy,omitempty" yaml:"discoveredBy,omitempty"`
	DiscoveryDate   *string  `json:"discoveryDate,omitempty" yaml:"discoveryDate,omitempty"`
}

// Planet reports whether the body is flagged as a planet. An absent flag
// counts as false.
func (b CelestialBody) Planet() bool {
	return b.IsPlanet != nil && *b.IsPlanet
}

// UnmarshalJSON decodes a body, failing only when name or id is missing.
func (b *CelestialBody) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	var out CelestialBody
	if !f.decode("name", &out.Name) {
		return missingField("name")
	}
	if !f.decode("id", &out.ID) {
		return missingField("id")
	}

	out.EnglishName = optional[string](f, "englishName")
	out.AlternativeName = optional[string](f, "alternativeName")
	out.IsPlanet = optional[bool](f, "isPlanet")
	out.BodyType = optional[string](f, "bodyType")
	out.Mass = optional[Mass](f, "mass")
	out.Vol = optional[Volume](f, "vol")
	out.Density = optional[float64](f, "density")
	out.Gravity = optional[float64](f, "gravity")
	out.Escape = optional[float64](f, "escape")
	out.MeanRadius = optional[float64](f, "meanRadius")
	out.EquaRadius = optional[float64](f, "equaRadius")
	out.PolarRadius = optional[float64](f, "polarRadius")
	out.Flattening = optional[float64](f, "flattening")
	out.SemimajorAxis = optional[float64](f, "semimajorAxis")
	out.Perihelion = optional[float64](f, "perihelion")
	out.Aphelion = optional[float64](f, "aphelion")
	out.Eccentricity = optional[float64](f, "eccentricity")
	out.Inclination = optional[float64](f, "inclination")
	out.SideralOrbit = optional[float64](f, "sideralOrbit")
	out.SideralRotation = optional[float64](f, "sideralRotation")
	out.AxialTilt = optional[float64](f, "axialTilt")
	out.AvgTemp = optional[int](f, "avgTemp")
	out.AroundPlanet = optional[Planet](f, "aroundPlanet")
	if moons := optional[[]Moon](f, "moons"); moons != nil {
		out.Moons = *moons
	}
	out.DiscoveredBy = optional[string](f, "discoveredBy")
	out.DiscoveryDate = optional[string](f, "discoveryDate")

	*b = out
	return nil
}

// Mass is a scientific-notation pair: Value × 10^Exponent kilograms.
type Mass struct {
	Value    *float64 `json:"massValue,omitempty" yaml:"massValue,omitempty"`
	Exponent *int     `json:"massExponent,omitempty" yaml:"massExponent,omitempty"`
}

// Complete reports whether both the value and the exponent are present.
func (m Mass) Complete() bool {
	return m.Value != nil && m.Exponent != nil
}

// String renders a complete mass as "<value>e<exponent>" and an incomplete
// one as the empty string.
func (m Mass) String() string {
	if !m.Complete() {
		return ""
	}
	return notation(*m.Value, *m.Exponent)
}

// UnmarshalJSON decodes both sub-fields leniently.
func (m *Mass) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	m.Value = optional[float64](f, "massValue")
	m.Exponent = optional[int](f, "massExponent")
	return nil
}

// Volume is a scientific-notation pair: Value × 10^Exponent cubic kilometres.
type Volume struct {
	Value    *float64 `json:"volValue,omitempty" yaml:"volValue,omitempty"`
	Exponent *int     `json:"volExponent,omitempty" yaml:"volExponent,omitempty"`
}

// Complete reports whether both the value and the exponent are present.
func (v Volume) Complete() bool {
	return v.Value != nil && v.Exponent != nil
}

// String renders a complete volume as "<value>e<exponent>".
func (v Volume) String() string {
	if !v.Complete() {
		return ""
	}
	return notation(*v.Value, *v.Exponent)
}

// UnmarshalJSON decodes both sub-fields leniently.
func (v *Volume) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	v.Value = optional[float64](f, "volValue")
	v.Exponent = optional[int](f, "volExponent")
	return nil
}

// Planet references the body a moon orbits.
type Planet struct {
	Planet string `json:"planet" yaml:"planet"`
	Rel    string `json:"rel,omitempty" yaml:"rel,omitempty"`
}

// Moon references a natural satellite of the body.
type Moon struct {
	Moon string `json:"moon" yaml:"moon"`
	Rel  string `json:"rel,omitempty" yaml:"rel,omitempty"`
}

// notation formats value with the shortest decimal representation that
// round-trips, followed by "e" and the exponent.
func notation(value float64, exponent int) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "e" + strconv.Itoa(exponent)
}

// fields holds the raw members of a JSON object.
type fields map[string]json.RawMessage

var jsonNull = []byte("null")

// decode unmarshals the member key into v. It returns false when the member
// is missing, null, or does not fit v.
func (f fields) decode(key string, v any) bool {
	raw, ok := f[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func optional[T any](f fields, key string) *T {
	var v T
	if !f.decode(key, &v) {
		return nil
	}
	return &v
}
