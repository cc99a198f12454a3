package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

const defaultLimit = 10

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

// HistoryScreen displays the most recent progress sessions, newest first.
type HistoryScreen struct {
	service  *progression.Service
	sessions []store.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(service *progression.Service) *HistoryScreen {
	return &HistoryScreen{
		service:  service,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.service.History(context.Background(), defaultLimit)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Failed to load history: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."))
	}
	if len(s.sessions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No sessions yet. Run an update session to get started."))
	}

	contentWidth := width - 8
	if contentWidth > 80 {
		contentWidth = 80
	}

	var b strings.Builder
	for i, sess := range s.sessions {
		b.WriteString(s.renderSession(i, sess, contentWidth))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *HistoryScreen) renderSession(i int, sess store.SessionRecord, width int) string {
	selected := i == s.selected

	ts := sess.Timestamp.Format("2006-01-02 15:04")
	kind := "update"
	if sess.Kind == store.KindAssessment {
		kind = "assessment"
	}

	gain := fmt.Sprintf("+%d", sess.TotalGain)

	marker := "  "
	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		marker = "▸ "
		rowStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	line := rowStyle.Render(fmt.Sprintf("%s%s  %-10s  %s", marker, ts, kind, theme.Gain.Render(gain)))
	if sess.Note != "" {
		line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(sess.Note)
	}

	if !s.expanded[i] {
		return line
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")

	if len(sess.Changes) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("     no skill changes"))
		b.WriteString("\n")
		return b.String()
	}

	for _, c := range sess.Changes {
		detail := fmt.Sprintf("     %-28s %3d → %3d  (+%d)",
			taxonomy.DisplayName(c.Key.Skill), c.OldLevel, c.NewLevel, c.Gain())
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString("\n")
	}
	return b.String()
}
