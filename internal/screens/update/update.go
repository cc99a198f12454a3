package update

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
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseEntry
	phaseNote
	phaseConfirm
	phaseDone
	phaseFailed
)

type snapshotLoadedMsg struct {
	Snap *progression.Snapshot
	Err  error
}

type commitResultMsg struct {
	Record *store.SessionRecord
	Snap   *progression.Snapshot
	Err    error
}

// UpdateScreen walks through every skill in catalog order, collecting new
// levels for a progress session. Blank entries keep the current level.
type UpdateScreen struct {
	service *progression.Service
	keys    []taxonomy.Key
	levels  map[taxonomy.Key]int
	entered map[taxonomy.Key]string

	phase    phase
	index    int
	input    components.TextInput
	note     components.TextInput
	fieldErr string
	errMsg   string
	record   *store.SessionRecord
	overall  int
}

var _ screen.Screen = (*UpdateScreen)(nil)
var _ screen.KeyHintProvider = (*UpdateScreen)(nil)

// New creates a new UpdateScreen.
func New(service *progression.Service) *UpdateScreen {
	return &UpdateScreen{
		service: service,
		keys:    service.Taxonomy().Keys(),
		entered: make(map[taxonomy.Key]string),
		phase:   phaseLoading,
	}
}

func (s *UpdateScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := s.service.Snapshot(context.Background())
		return snapshotLoadedMsg{Snap: snap, Err: err}
	}
}

func (s *UpdateScreen) Title() string {
	return "Update Session"
}

func (s *UpdateScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseEntry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next (blank keeps current)"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseConfirm:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Commit"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *UpdateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		if msg.Err != nil {
			s.phase = phaseFailed
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.levels = msg.Snap.Skills
		s.phase = phaseEntry
		s.input = s.newFieldInput()
		return s, s.input.Init()

	case commitResultMsg:
		if msg.Err != nil {
			s.phase = phaseFailed
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.phase = phaseDone
		s.record = msg.Record
		if msg.Snap != nil {
			s.overall = msg.Snap.OverallLevel
			overall := s.overall
			return s, func() tea.Msg { return screen.OverallLevelMsg(overall) }
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *UpdateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		switch s.phase {
		case phaseEntry:
			return s.submitField()
		case phaseNote:
			s.phase = phaseConfirm
			return s, nil
		case phaseConfirm:
			return s.commit()
		case phaseDone, phaseFailed:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s.forwardToInput(msg)
}

func (s *UpdateScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case phaseEntry:
		s.input, cmd = s.input.Update(msg)
	case phaseNote:
		s.note, cmd = s.note.Update(msg)
	}
	return s, cmd
}

// submitField validates the current entry and advances to the next skill.
func (s *UpdateScreen) submitField() (screen.Screen, tea.Cmd) {
	k := s.keys[s.index]
	raw := strings.TrimSpace(s.input.Value())

	if raw != "" {
		requested, err := s.input.NumericValue()
		if err != nil {
			s.fieldErr = "enter a whole number, or leave blank to keep"
			s.input.Submit(false)
			return s, nil
		}
		if err := s.service.ValidateUpdate(k, s.levels[k], requested); err != nil {
			s.fieldErr = err.Error()
			s.input.Submit(false)
			return s, nil
		}
		s.entered[k] = raw
	}

	s.fieldErr = ""
	s.index++
	if s.index >= len(s.keys) {
		s.phase = phaseNote
		s.note = components.NewTextInput("optional session note", false, 80)
		return s, s.note.Init()
	}
	s.input = s.newFieldInput()
	return s, s.input.Init()
}

func (s *UpdateScreen) commit() (screen.Screen, tea.Cmd) {
	entered := s.entered
	note := strings.TrimSpace(s.note.Value())
	svc := s.service
	return s, func() tea.Msg {
		ctx := context.Background()
		rec, err := svc.ProposeSession(ctx, entered, note)
		if err != nil {
			return commitResultMsg{Err: err}
		}
		snap, _ := svc.Snapshot(ctx)
		return commitResultMsg{Record: rec, Snap: snap}
	}
}

func (s *UpdateScreen) newFieldInput() components.TextInput {
	return components.NewTextInput("keep", true, 3)
}

func (s *UpdateScreen) View(width, height int) string {
	var content string

	switch s.phase {
	case phaseLoading:
		content = lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading...")
	case phaseEntry:
		content = s.viewEntry()
	case phaseNote:
		content = s.viewNote()
	case phaseConfirm:
		content = s.viewConfirm()
	case phaseDone:
		content = s.viewDone()
	case phaseFailed:
		content = lipgloss.NewStyle().Foreground(theme.Error).Render("Session failed: "+s.errMsg) +
			"\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("press enter to go back")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *UpdateScreen) viewEntry() string {
	k := s.keys[s.index]
	current := s.levels[k]

	var b strings.Builder

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Skill %d of %d", s.index+1, len(s.keys)))
	b.WriteString(progress)
	b.WriteString("\n\n")

	cat := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(taxonomy.CategoryDisplayName(k.Category))
	b.WriteString(cat)
	b.WriteString("\n")

	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(taxonomy.DisplayName(k.Skill))
	b.WriteString(name)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Current level: %d", current)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("New level: "))
	b.WriteString(s.input.View())

	if s.fieldErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + s.fieldErr))
	}

	return b.String()
}

func (s *UpdateScreen) viewNote() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Session note"))
	b.WriteString("\n\n")
	b.WriteString(s.note.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press enter to review"))
	return b.String()
}

func (s *UpdateScreen) viewConfirm() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Review session"))
	b.WriteString("\n\n")

	if len(s.entered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No changes entered. An empty session is still recorded."))
	} else {
		for _, k := range s.keys {
			raw, ok := s.entered[k]
			if !ok {
				continue
			}
			line := fmt.Sprintf("%-28s %3d → %s",
				taxonomy.DisplayName(k.Skill), s.levels[k], raw)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press enter to commit, esc to cancel"))
	return b.String()
}

func (s *UpdateScreen) viewDone() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render("✓ Session recorded"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Skills updated: %d", countGains(s.record))))
	b.WriteString("\n")
	b.WriteString(theme.Gain.Render(fmt.Sprintf("Total gain: +%d", s.record.TotalGain)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Overall level: %d", s.overall)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press enter to go back"))
	return b.String()
}

func countGains(rec *store.SessionRecord) int {
	if rec == nil {
		return 0
	}
	n := 0
	for _, c := range rec.Changes {
		if c.Gain() > 0 {
			n++
		}
	}
	return n
}
