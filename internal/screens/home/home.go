package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/screens/assess"
	"github.com/abhisek/levelup/internal/screens/history"
	"github.com/abhisek/levelup/internal/screens/stats"
	"github.com/abhisek/levelup/internal/screens/update"
	"github.com/abhisek/levelup/internal/taxonomy"
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/theme"
)

type snapshotLoadedMsg struct {
	Snap *progression.Snapshot
	Err  error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	service *progression.Service
	menu    components.Menu
	snap    *progression.Snapshot
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(service *progression.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SKILL MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(service)}
			}
		}},
		{Label: "UPDATE SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: update.New(service)}
			}
		}},
		{Label: "ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assess.New(service, false, nil)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(service)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		service: service,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := h.service.Snapshot(context.Background())
		return snapshotLoadedMsg{Snap: snap, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.snap = msg.Snap
		overall := msg.Snap.OverallLevel
		return h, func() tea.Msg { return screen.OverallLevelMsg(overall) }
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("L E V E L U P")
	sections = append(sections, title)

	if h.errMsg != "" {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Failed to load skills: "+h.errMsg))
	} else if h.snap != nil {
		sections = append(sections, h.renderSummary())
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderSummary shows the overall level and each category rollup.
func (h *HomeScreen) renderSummary() string {
	var b strings.Builder

	overall := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Overall Level %d", h.snap.OverallLevel))
	b.WriteString(overall)
	b.WriteString("\n\n")

	tax := h.service.Taxonomy()
	for _, c := range tax.Categories() {
		line := fmt.Sprintf("%-20s %3d",
			taxonomy.CategoryDisplayName(c), h.snap.CategoryLevels[c])
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
