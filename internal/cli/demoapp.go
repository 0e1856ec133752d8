package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/usherkit/usher/pkg/teatour"
)

// Demo app styles
var (
	stylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	stylePaneTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSelected  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNormal    = lipgloss.NewStyle().Foreground(colorWhite)
	styleStatusBar = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
)

// demoModel is the document-browser screen the demo tour runs over. Its
// three regions (sidebar, list, status) register themselves in the tour
// registry whenever the layout changes.
type demoModel struct {
	registry *teatour.Registry

	width  int
	height int

	collections []string
	docs        []string
	cursor      int
	started     bool
}

// newDemoModel creates the demo screen backed by the given registry.
func newDemoModel(registry *teatour.Registry) demoModel {
	return demoModel{
		registry:    registry,
		collections: []string{"Inbox", "Research", "Archive"},
		docs: []string{
			"Quarterly planning notes",
			"Interview transcript, Tuesday",
			"Reading list",
			"Draft: onboarding email",
			"Meeting minutes 08-12",
		},
	}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.register()
		if !m.started {
			m.started = true
			return m, func() tea.Msg { return teatour.StartTourMsg{} }
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.docs)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m demoModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	sidebarW, mainH := m.dimensions()

	var sb strings.Builder
	sb.WriteString(stylePaneTitle.Render("Collections"))
	sb.WriteString("\n\n")
	for i, col := range m.collections {
		if i == 0 {
			sb.WriteString(styleSelected.Render("▸ " + col))
		} else {
			sb.WriteString(styleNormal.Render("  " + col))
		}
		sb.WriteString("\n")
	}
	sidebar := stylePane.Width(sidebarW - 2).Height(mainH - 2).Render(sb.String())

	var lb strings.Builder
	lb.WriteString(stylePaneTitle.Render("Documents"))
	lb.WriteString("\n\n")
	for i, doc := range m.docs {
		if i == m.cursor {
			lb.WriteString(styleSelected.Render("▸ " + doc))
		} else {
			lb.WriteString(styleNormal.Render("  " + doc))
		}
		lb.WriteString("\n")
	}
	list := stylePane.Width(m.width - sidebarW - 2).Height(mainH - 2).Render(lb.String())

	status := styleStatusBar.Width(m.width).Render(
		fmt.Sprintf(" %d documents · synced · j/k navigate · q quit", len(m.docs)))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, list) + "\n" + status
}

// register reports the current region rectangles to the tour registry.
func (m demoModel) register() {
	sidebarW, mainH := m.dimensions()
	_ = m.registry.Put("sidebar", 0, 0, sidebarW, mainH)
	_ = m.registry.Put("list", sidebarW, 0, m.width-sidebarW, mainH)
	_ = m.registry.Put("status", 0, m.height-1, m.width, 1)
}

// dimensions returns the sidebar width and main-area height for the current
// terminal size.
func (m demoModel) dimensions() (sidebarW, mainH int) {
	sidebarW = 24
	if m.width < 48 {
		sidebarW = m.width / 2
	}
	return sidebarW, m.height - 1
}
