package present

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

func plainPrinter(buf *bytes.Buffer) *Printer {
	r := lipgloss.NewRenderer(buf)
	r.SetColorProfile(termenv.Ascii)
	return New(buf, WithRenderer(r))
}

func mustDecode(t *testing.T, raw string) solarsys.CelestialBody {
	t.Helper()
	b, err := solarsys.DecodeBody([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeBody() error: %v", err)
	}
	return *b
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestSummaries(t *testing.T) {
	for _, n := range []int{0, 1, 3, 42} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			bodies := make([]solarsys.CelestialBody, n)
			for i := range bodies {
				bodies[i] = solarsys.CelestialBody{Name: fmt.Sprintf("Body %d", i), ID: fmt.Sprintf("b%d", i)}
			}

			var buf bytes.Buffer
			if err := plainPrinter(&buf).Summaries(bodies); err != nil {
				t.Fatalf("Summaries() error: %v", err)
			}

			if n == 0 {
				if buf.Len() != 0 {
					t.Errorf("got output %q for no bodies", buf.String())
				}
				return
			}
			got := lines(buf.String())
			if len(got) != n {
				t.Fatalf("got %d lines, want %d", len(got), n)
			}
			for i, line := range got {
				want := fmt.Sprintf("Name: Body %d, ID: b%d, Is Planet: false", i, i)
				if line != want {
					t.Errorf("line %d = %q, want %q", i, line, want)
				}
			}
		})
	}
}

func TestSummaryLineMoon(t *testing.T) {
	bodies, err := solarsys.DecodeList([]byte(`{"bodies":[{"name":"Moon","id":"lune","isPlanet":false}]}`))
	if err != nil {
		t.Fatalf("DecodeList() error: %v", err)
	}

	var buf bytes.Buffer
	if err := plainPrinter(&buf).Summaries(bodies); err != nil {
		t.Fatalf("Summaries() error: %v", err)
	}
	want := "Name: Moon, ID: lune, Is Planet: false\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if SummaryLine(bodies[0]) != strings.TrimSuffix(want, "\n") {
		t.Errorf("SummaryLine() = %q", SummaryLine(bodies[0]))
	}
}

func TestDetailsMars(t *testing.T) {
	b := mustDecode(t, `{"name":"Mars","id":"mars","englishName":"Mars","isPlanet":true,"mass":{"massValue":6.42,"massExponent":23}}`)

	var buf bytes.Buffer
	if err := plainPrinter(&buf).Details(b); err != nil {
		t.Fatalf("Details() error: %v", err)
	}
	got := lines(buf.String())

	if got[0] != "Name: Mars, ID: mars, English Name: Mars, Is Planet: true" {
		t.Errorf("header = %q", got[0])
	}
	if got[1] != "Mass: 6.42e23" {
		t.Errorf("mass line = %q, want %q", got[1], "Mass: 6.42e23")
	}
	if want := 2 + len(Attributes(b)); len(got) != want {
		t.Errorf("got %d lines, want %d", len(got), want)
	}
	for _, line := range got[2:] {
		if !strings.HasSuffix(line, ": "+NotAvailable) {
			t.Errorf("attribute line %q should be not available", line)
		}
	}
}

func TestMassLine(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	i := func(v int) *int { return &v }

	tests := []struct {
		name string
		mass *solarsys.Mass
		want string
	}{
		{"complete", &solarsys.Mass{Value: f(6.42), Exponent: i(23)}, "Mass: 6.42e23"},
		{"large value", &solarsys.Mass{Value: f(1898.19), Exponent: i(24)}, "Mass: 1898.19e24"},
		{"missing exponent", &solarsys.Mass{Value: f(6.42)}, MassIncomplete},
		{"missing value", &solarsys.Mass{Exponent: i(23)}, MassIncomplete},
		{"empty object", &solarsys.Mass{}, MassIncomplete},
		{"absent", nil, MassMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MassLine(tt.mass); got != tt.want {
				t.Errorf("MassLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderLineEnglishNameAbsent(t *testing.T) {
	b := solarsys.CelestialBody{Name: "Lune", ID: "lune"}
	want := "Name: Lune, ID: lune, English Name: not available, Is Planet: false"
	if got := HeaderLine(b); got != want {
		t.Errorf("HeaderLine() = %q, want %q", got, want)
	}
}

func TestAttributes(t *testing.T) {
	b := mustDecode(t, `{
		"name":"Moon","id":"lune","englishName":"Moon","isPlanet":false,
		"density":3.344,"gravity":1.62,"escape":2380,"meanRadius":1737,
		"sideralOrbit":27.3217,"avgTemp":0,"bodyType":"Moon",
		"aroundPlanet":{"planet":"terre","rel":"https://api.le-systeme-solaire.net/rest/bodies/terre"},
		"discoveredBy":"","vol":{"volValue":2.1968,"volExponent":10}
	}`)

	want := map[string]string{
		"Body Type":           "Moon",
		"Volume":              "2.1968e10 km³",
		"Density":             "3.344 g/cm³",
		"Gravity":             "1.62 m/s²",
		"Escape Velocity":     "2380 m/s",
		"Mean Radius":         "1737 km",
		"Sidereal Orbit":      "27.3217 days",
		"Average Temperature": "0 K",
		"Orbits":              "terre",
		"Polar Radius":        NotAvailable,
		"Axial Tilt":          NotAvailable,
		"Moons":               NotAvailable,
		"Discovered By":       NotAvailable,
	}

	got := make(map[string]string)
	for _, a := range Attributes(b) {
		got[a.Label] = a.Text()
	}
	for label, w := range want {
		if got[label] != w {
			t.Errorf("%s = %q, want %q", label, got[label], w)
		}
	}
}

func TestAttributesAllAbsentNeverPanics(t *testing.T) {
	b := solarsys.CelestialBody{Name: "X", ID: "x"}
	for _, a := range Attributes(b) {
		if a.Available {
			t.Errorf("%s should not be available", a.Label)
		}
		if got := AttributeLine(a); got != a.Label+": "+NotAvailable {
			t.Errorf("AttributeLine() = %q", got)
		}
	}
}

func TestMoonsAttribute(t *testing.T) {
	b := solarsys.CelestialBody{
		Name:  "Mars",
		ID:    "mars",
		Moons: []solarsys.Moon{{Moon: "Phobos"}, {Moon: "Deimos"}},
	}
	for _, a := range Attributes(b) {
		if a.Label == "Moons" {
			if a.Text() != "2 (Phobos, Deimos)" {
				t.Errorf("Moons = %q", a.Text())
			}
			return
		}
	}
	t.Fatal("Moons attribute missing")
}

func TestJSON(t *testing.T) {
	b := mustDecode(t, `{"name":"Mars","id":"mars","isPlanet":true,"density":"bad"}`)

	var buf bytes.Buffer
	if err := plainPrinter(&buf).JSON(b); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if back["name"] != "Mars" || back["id"] != "mars" || back["isPlanet"] != true {
		t.Errorf("JSON output = %v", back)
	}
	if _, ok := back["density"]; ok {
		t.Error("absent density should be omitted")
	}
}

func TestYAML(t *testing.T) {
	b := mustDecode(t, `{"name":"Mars","id":"mars","mass":{"massValue":6.42,"massExponent":23}}`)

	var buf bytes.Buffer
	if err := plainPrinter(&buf).YAML(b); err != nil {
		t.Fatalf("YAML() error: %v", err)
	}

	var back struct {
		Name string `yaml:"name"`
		Mass struct {
			Value    float64 `yaml:"massValue"`
			Exponent int     `yaml:"massExponent"`
		} `yaml:"mass"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if back.Name != "Mars" || back.Mass.Value != 6.42 || back.Mass.Exponent != 23 {
		t.Errorf("YAML round trip = %+v", back)
	}
}

func TestStyledOutputKeepsText(t *testing.T) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.ANSI256)
	p := New(&buf, WithRenderer(r))

	if err := p.Summary(solarsys.CelestialBody{Name: "Moon", ID: "lune"}); err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("ANSI256 profile should emit escape sequences")
	}
	for _, s := range []string{"Moon", "lune", "false"} {
		if !strings.Contains(out, s) {
			t.Errorf("styled output %q should contain %q", out, s)
		}
	}
}
