// Package browse is an interactive terminal browser for theme sources.
//
// The left panel lists every registered source. The right panel shows the
// selected source resolved under the current modifiers. Press m to edit
// the modifiers as "key=value" pairs.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/stylo/pkg/render"
	"github.com/dkoosis/stylo/pkg/theme"
)

// Options configures a browser session.
type Options struct {
	Theme     *theme.Theme
	Modifiers theme.Modifiers
	Extra     *theme.Style
	Chrome    render.Theme
}

// Run starts the browser and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	program := tea.NewProgram(newModel(opts), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	th     *theme.Theme
	names  []string
	mods   theme.Modifiers
	extra  *theme.Style
	chrome render.Theme

	selected    int
	viewport    viewport.Model
	input       textinput.Model
	editing     bool
	status      string
	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

func newModel(opts Options) model {
	in := textinput.New()
	in.Prompt = "modifiers: "
	in.Placeholder = "size=large disabled"

	mods := opts.Modifiers
	if mods == nil {
		mods = theme.Modifiers{}
	}
	chrome := opts.Chrome
	if chrome.Name == "" {
		chrome = render.DefaultTheme()
	}
	m := model{
		th:       opts.Theme,
		names:    opts.Theme.Names(),
		mods:     mods,
		extra:    opts.Extra,
		chrome:   chrome,
		viewport: viewport.New(0, 0),
		input:    in,
	}
	m.refreshViewport()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.names)-1 {
				m.selected++
				m.refreshViewport()
			}
		case "m":
			m.editing = true
			m.input.SetValue(modifierArgs(m.mods))
			m.input.CursorEnd()
			return m, m.input.Focus()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 1
		m.viewport.Width = max(m.detailWidth-4, 1)
		m.viewport.Height = max(m.height-8, 1)
		m.input.Width = max(m.width-len(m.input.Prompt)-2, 1)
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		mods, err := theme.ParseModifiers(strings.Fields(strings.ReplaceAll(m.input.Value(), ",", " ")))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mods = mods
		m.status = ""
		m.editing = false
		m.input.Blur()
		m.refreshViewport()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.status = ""
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) calculateListWidth() int {
	widest := 12
	for _, name := range m.names {
		widest = max(widest, lipgloss.Width(name)+4)
	}
	return widest + 4
}

func (m *model) current() (string, bool) {
	if m.selected < 0 || m.selected >= len(m.names) {
		return "", false
	}
	return m.names[m.selected], true
}

func (m *model) refreshViewport() {
	name, ok := m.current()
	if !ok {
		m.viewport.SetContent("No sources registered")
		return
	}
	style, err := m.th.GetStyle(name, m.mods, m.extra)
	if err != nil {
		m.viewport.SetContent(m.chrome.Muted.Render("error: ") + err.Error())
		return
	}
	m.viewport.SetContent(render.NewTerminal(m.chrome, m.viewport.Width).Render(name, style))
}

func (m model) View() string {
	if !m.ready {
		return "Loading sources..."
	}

	contentHeight := max(m.height-6, 3)

	listPanel := lipgloss.NewStyle().
		Width(m.listWidth).
		Render(fitLines(m.renderList(), contentHeight))

	header := m.chrome.Title.Render("modifiers: ")
	if len(m.mods) == 0 {
		header += m.chrome.Muted.Render("(none)")
	} else {
		header += m.chrome.Value.Render(m.mods.String())
	}
	detailPanel := lipgloss.NewStyle().
		Width(m.detailWidth).
		Render(fitLines(header+"\n\n"+m.viewport.View(), contentHeight))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, " ", detailPanel)
	title := m.chrome.Title.Render(fmt.Sprintf("stylo %s %d sources", m.chrome.Bullet, len(m.names)))

	footer := m.chrome.Muted.Render("↑/↓ navigate • m modifiers • q quit")
	if m.editing {
		footer = m.input.View()
	}
	if m.status != "" {
		footer += "\n" + m.chrome.Key.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, footer)
}

func (m model) renderList() string {
	lines := make([]string, 0, len(m.names))
	for i, name := range m.names {
		if i == m.selected {
			lines = append(lines, m.chrome.Key.Render("▶ "+name))
			continue
		}
		lines = append(lines, "  "+m.chrome.Value.Render(name))
	}
	return strings.Join(lines, "\n")
}

// fitLines pads or truncates s to exactly height lines.
func fitLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// modifierArgs formats mods as the space separated pairs the editor accepts.
func modifierArgs(mods theme.Modifiers) string {
	return strings.ReplaceAll(mods.String(), ",", " ")
}
