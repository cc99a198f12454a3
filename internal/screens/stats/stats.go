package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/taxonomy"
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

type snapshotLoadedMsg struct {
	Snap *progression.Snapshot
	Err  error
}

// row is one rendered line of the skill map: either a category header or
// a single skill.
type row struct {
	header   bool
	category taxonomy.Category
	key      taxonomy.Key
}

// StatsScreen displays the full skill map: every category with its rollup
// level and every skill with its current level.
type StatsScreen struct {
	service *progression.Service
	snap    *progression.Snapshot
	rows    []row
	cursor  int
	offset  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(service *progression.Service) *StatsScreen {
	tax := service.Taxonomy()

	var rows []row
	for _, c := range tax.Categories() {
		rows = append(rows, row{header: true, category: c})
		for _, name := range tax.Skills(c) {
			rows = append(rows, row{key: taxonomy.Key{Category: c, Skill: name}})
		}
	}

	return &StatsScreen{
		service: service,
		rows:    rows,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := s.service.Snapshot(context.Background())
		return snapshotLoadedMsg{Snap: snap, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Skill Map"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.snap = msg.Snap
		}
		s.loaded = true
		if s.snap != nil {
			overall := s.snap.OverallLevel
			return s, func() tea.Msg { return screen.OverallLevelMsg(overall) }
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.rows)-1 {
				s.cursor++
			}
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Failed to load skills: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."))
	}

	contentWidth := width - 8
	if contentWidth > 90 {
		contentWidth = 90
	}
	if contentWidth < 40 {
		contentWidth = 40
	}

	visible := height - 4
	if visible < 5 {
		visible = 5
	}
	s.clampScroll(visible)

	var b strings.Builder

	overall := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Overall Level %d", s.snap.OverallLevel))
	b.WriteString(lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, overall))
	b.WriteString("\n")

	if len(s.snap.Issues) > 0 {
		warn := lipgloss.NewStyle().
			Foreground(theme.Warning).
			Render(fmt.Sprintf("⚠ %d stored level(s) were out of range and shown as 1", len(s.snap.Issues)))
		b.WriteString(lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, warn))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	end := s.offset + visible
	if end > len(s.rows) {
		end = len(s.rows)
	}
	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(i, contentWidth))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *StatsScreen) renderRow(i, width int) string {
	r := s.rows[i]
	selected := i == s.cursor

	if r.header {
		level := s.snap.CategoryLevels[r.category]
		label := taxonomy.CategoryDisplayName(r.category)
		style := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		if selected {
			style = style.Foreground(theme.Primary)
		}
		return style.Render(fmt.Sprintf("%s — Level %d", label, level))
	}

	level := s.snap.Skills[r.key]
	label := taxonomy.DisplayName(r.key.Skill)

	bar := components.NewProgressBar("", float64(level)/100, false, 24)

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	marker := "  "
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		marker = "▸ "
	}

	name := nameStyle.Render(fmt.Sprintf("%-28s", label))
	lvl := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%3d", level))

	return fmt.Sprintf("%s%s %s  %s", marker, name, lvl, bar.View())
}

// clampScroll keeps the cursor within the visible window.
func (s *StatsScreen) clampScroll(visible int) {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
