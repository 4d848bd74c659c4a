package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "241"})
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	topBarStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"})
	sideBarStyle  = lipgloss.NewStyle().Padding(1, 2, 0, 1).Width(16)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	contentStyle  = lipgloss.NewStyle().Padding(1, 2)
)

// Model is the bubbletea model of the dashboard: a top bar, a sidebar for
// navigation and the body of the selected section.
type Model struct {
	router *Router
	email  string
	status string
	done   bool
}

// NewModel builds the dashboard around router. email is shown in the top bar.
func NewModel(router *Router, email string) Model {
	return Model{router: router, email: email}
}

// Router exposes the section router.
func (m Model) Router() *Router {
	return m.router
}

// SignedOut reports whether the dashboard exited through a successful logout.
func (m Model) SignedOut() bool {
	return m.done
}

func (m Model) Init() tea.Cmd {
	return m.router.Select(m.router.Current())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.router.Select(m.router.Current().next())
		case "shift+tab":
			return m, m.router.Select(m.router.Current().prev())
		case "p":
			return m, m.router.ProfileClick()
		case "1", "2", "3", "4":
			return m, m.router.Select(Sections[int(key[0]-'1')])
		}
		return m, m.router.Update(msg)
	case LoggedOutMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("logout failed: %v", msg.Err)
			return m, nil
		}
		m.status = "Signed out."
		m.done = true
		return m, tea.Quit
	case UsersLoadedMsg, ProfileLoadedMsg:
		return m, m.router.Broadcast(msg)
	}
	return m, m.router.Update(msg)
}

func (m Model) View() string {
	email := m.email
	if email == "" {
		email = "signed out"
	}
	top := topBarStyle.Render(fmt.Sprintf("snapdash  ·  %s  ·  [p] my account", email))

	var side strings.Builder
	for i, s := range Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Label())
		if s == m.router.Current() {
			side.WriteString(selectedStyle.Render("▸ "+label) + "\n")
		} else {
			side.WriteString("  " + label + "\n")
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sideBarStyle.Render(side.String()),
		contentStyle.Render(m.router.Render()),
	)

	footer := dimStyle.Render("tab/1-4 navigate • q quit")
	if m.status != "" {
		footer = m.status
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, body, footer)
}
