package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

var (
	colorGreen  = lipgloss.Color("35")  // labels
	colorYellow = lipgloss.Color("220") // mass
	colorRed    = lipgloss.Color("167") // missing data
	colorBlue   = lipgloss.Color("75")  // booleans
	colorDim    = lipgloss.Color("240") // not available, units
)

type theme struct {
	label lipgloss.Style
	mass  lipgloss.Style
	flag  lipgloss.Style
	warn  lipgloss.Style
	dim   lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) theme {
	return theme{
		label: r.NewStyle().Bold(true).Foreground(colorGreen),
		mass:  r.NewStyle().Bold(true).Foreground(colorYellow),
		flag:  r.NewStyle().Foreground(colorBlue),
		warn:  r.NewStyle().Foreground(colorRed),
		dim:   r.NewStyle().Foreground(colorDim),
	}
}

// Printer writes bodies to an io.Writer.
type Printer struct {
	w  io.Writer
	th theme
}

// Option configures a Printer.
type Option func(*printerConfig)

type printerConfig struct {
	renderer *lipgloss.Renderer
}

// WithRenderer sets the lipgloss renderer used for styling. Without it the
// Printer creates one bound to its writer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *printerConfig) { c.renderer = r }
}

// New creates a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	var cfg printerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderer == nil {
		cfg.renderer = lipgloss.NewRenderer(w)
	}
	return &Printer{w: w, th: newTheme(cfg.renderer)}
}

// Summaries writes one summary line per body.
func (p *Printer) Summaries(bodies []solarsys.CelestialBody) error {
	for _, b := range bodies {
		if err := p.Summary(b); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the list-mode line for b.
func (p *Printer) Summary(b solarsys.CelestialBody) error {
	return p.println(p.summaryLine(b))
}

// Details writes the header line, the mass line and every physical attribute of b.
func (p *Printer) Details(b solarsys.CelestialBody) error {
	lines := []string{p.headerLine(b), p.massLine(b.Mass)}
	for _, a := range Attributes(b) {
		lines = append(lines, p.attributeLine(a))
	}
	for _, line := range lines {
		if err := p.println(line); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func (p *Printer) YAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (p *Printer) println(line string) error {
	_, err := fmt.Fprintln(p.w, line)
	return err
}

func (p *Printer) pair(label, value string) string {
	return p.th.label.Render(label) + ": " + value
}

func (p *Printer) summaryLine(b solarsys.CelestialBody) string {
	return strings.Join([]string{
		p.pair("Name", b.Name),
		p.pair("ID", b.ID),
		p.pair("Is Planet", p.th.flag.Render(strconv.FormatBool(b.Planet()))),
	}, ", ")
}

func (p *Printer) headerLine(b solarsys.CelestialBody) string {
	english := p.th.dim.Render(NotAvailable)
	if b.EnglishName != nil && *b.EnglishName != "" {
		english = *b.EnglishName
	}
	return strings.Join([]string{
		p.pair("Name", b.Name),
		p.pair("ID", b.ID),
		p.pair("English Name", english),
		p.pair("Is Planet", p.th.flag.Render(strconv.FormatBool(b.Planet()))),
	}, ", ")
}

func (p *Printer) massLine(m *solarsys.Mass) string {
	switch {
	case m == nil:
		return p.th.warn.Render(MassMissing)
	case !m.Complete():
		return p.th.warn.Render(MassIncomplete)
	default:
		return p.th.mass.Render("Mass") + ": " + m.String()
	}
}

func (p *Printer) attributeLine(a Attribute) string {
	if !a.Available {
		return p.pair(a.Label, p.th.dim.Render(NotAvailable))
	}
	return p.pair(a.Label, a.Text())
}

// plain renders without any styling.
var plain = &Printer{w: io.Discard, th: theme{}}

// SummaryLine returns the unstyled list-mode line for b.
func SummaryLine(b solarsys.CelestialBody) string { return plain.summaryLine(b) }

// HeaderLine returns the unstyled first line of the detail view for b.
func HeaderLine(b solarsys.CelestialBody) string { return plain.headerLine(b) }

// MassLine returns the unstyled mass line for m, which may be nil.
func MassLine(m *solarsys.Mass) string { return plain.massLine(m) }

// AttributeLine returns the unstyled line for a.
func AttributeLine(a Attribute) string { return plain.attributeLine(a) }
