package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Key Bindings
// =============================================================================

type bodyListKeys struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Filter key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k bodyListKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Select, k.Quit}
}

func (k bodyListKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.Filter, k.Select, k.Quit}}
}

var defaultBodyListKeys = bodyListKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// =============================================================================
// BodyListModel - Interactive body selection
// =============================================================================

// BodyListModel is the bubbletea model for interactive body selection.
// Typing "/" starts a filter on name, English name and ID.
type BodyListModel struct {
	Bodies   []solarsys.CelestialBody
	Cursor   int // position in the filtered rows
	Selected *solarsys.CelestialBody
	Height   int
	Offset   int
	Filter   string

	filtering bool
	visible   []int // indices into Bodies matching Filter
	keys      bodyListKeys
	help      help.Model
}

// NewBodyListModel creates a new body list model.
func NewBodyListModel(bodies []solarsys.CelestialBody) BodyListModel {
	m := BodyListModel{
		Bodies: bodies,
		Height: 15,
		keys:   defaultBodyListKeys,
		help:   help.New(),
	}
	m.applyFilter()
	return m
}

func (m BodyListModel) Init() tea.Cmd {
	return nil
}

func (m BodyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Top):
			m.move(-len(m.visible))
		case key.Matches(msg, m.keys.Bottom):
			m.move(len(m.visible))
		case key.Matches(msg, m.keys.Select):
			if len(m.visible) == 0 {
				return m, nil
			}
			body := m.Bodies[m.visible[m.Cursor]]
			m.Selected = &body
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.move(0)
	}
	return m, nil
}

func (m BodyListModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.filtering = false
		m.Filter = ""
		m.applyFilter()
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if r := []rune(m.Filter); len(r) > 0 {
			m.Filter = string(r[:len(r)-1])
			m.applyFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.Filter += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the visible rows, and scrolls
// the window to keep it in view.
func (m *BodyListModel) move(delta int) {
	m.Cursor = max(0, min(m.Cursor+delta, len(m.visible)-1))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m *BodyListModel) applyFilter() {
	needle := strings.ToLower(m.Filter)
	m.visible = nil
	for i, b := range m.Bodies {
		if needle == "" || matches(b, needle) {
			m.visible = append(m.visible, i)
		}
	}
	m.Cursor, m.Offset = 0, 0
}

func matches(b solarsys.CelestialBody, needle string) bool {
	if strings.Contains(strings.ToLower(b.Name), needle) || strings.Contains(strings.ToLower(b.ID), needle) {
		return true
	}
	return b.EnglishName != nil && strings.Contains(strings.ToLower(*b.EnglishName), needle)
}

func (m BodyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Body"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	switch {
	case m.filtering:
		b.WriteString("/ " + m.Filter + "█")
	case m.Filter != "":
		b.WriteString(listDimStyle.Render("filter: " + m.Filter))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(listDimStyle.Render("  no matching bodies"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.visible))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		body := m.Bodies[m.visible[i]]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		planet := ""
		if body.Planet() {
			planet = "✓"
		}

		bodyType := "—"
		if body.BodyType != nil && *body.BodyType != "" {
			bodyType = *body.BodyType
		}

		moons := "—"
		if len(body.Moons) > 0 {
			moons = strconv.Itoa(len(body.Moons))
		}

		rows = append(rows, []string{cursor, body.Name, body.ID, bodyType, planet, moons})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "ID", "Type", "Planet", "Moons").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}

			idx := m.Offset + row
			if idx >= len(m.visible) {
				return lipgloss.NewStyle()
			}
			isCurrent := idx == m.Cursor
			isPlanet := m.Bodies[m.visible[idx]].Planet()

			base := lipgloss.NewStyle()
			switch {
			case isCurrent:
				return base.Foreground(colorCyan).Bold(true)
			case isPlanet:
				return base.Foreground(colorGreen)
			case col == 2 || col == 3:
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.visible))))

	return b.String()
}
