package assess

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/leveling"
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
	phaseWarn phase = iota
	phaseEntry
	phaseConfirm
	phaseDone
	phaseFailed
)

// Session notes recorded on assessment commits. The first-run wording
// matches the crystal-ball welcome flow.
const (
	initialNote  = "Initial stat assessment using the mystical crystal ball"
	reassessNote = "Full reassessment"
)

type commitResultMsg struct {
	Record *store.SessionRecord
	Snap   *progression.Snapshot
	Err    error
}

// AssessScreen walks through every skill and records a full assessment.
// Assessments overwrite stored levels outright, so a warning is shown
// unless this is the first run.
type AssessScreen struct {
	service *progression.Service
	keys    []taxonomy.Key
	values  map[taxonomy.Key]int

	// nextFactory, when set, replaces this screen after completion instead
	// of popping. Used on first run to land on the home screen.
	nextFactory func() screen.Screen
	firstRun    bool

	phase    phase
	index    int
	input    components.TextInput
	fieldErr string
	errMsg   string
	record   *store.SessionRecord
	overall  int
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates a new AssessScreen. firstRun skips the overwrite warning;
// nextFactory may be nil, in which case completion pops back.
func New(service *progression.Service, firstRun bool, nextFactory func() screen.Screen) *AssessScreen {
	s := &AssessScreen{
		service:     service,
		keys:        service.Taxonomy().Keys(),
		values:      make(map[taxonomy.Key]int),
		nextFactory: nextFactory,
		firstRun:    firstRun,
		phase:       phaseWarn,
	}
	if firstRun {
		s.phase = phaseEntry
		s.input = newFieldInput()
	}
	return s
}

func (s *AssessScreen) Init() tea.Cmd {
	if s.phase == phaseEntry {
		return s.input.Init()
	}
	return nil
}

func (s *AssessScreen) Title() string {
	return "Assessment"
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseWarn:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseEntry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next (blank skips)"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseConfirm:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Commit"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
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

	if s.phase == phaseEntry {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if s.phase == phaseDone {
			return s, s.finish()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		switch s.phase {
		case phaseWarn:
			s.phase = phaseEntry
			s.input = newFieldInput()
			return s, s.input.Init()
		case phaseEntry:
			return s.submitField()
		case phaseConfirm:
			return s.commit()
		case phaseDone:
			return s, s.finish()
		case phaseFailed:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if s.phase == phaseEntry {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessScreen) submitField() (screen.Screen, tea.Cmd) {
	k := s.keys[s.index]
	raw := strings.TrimSpace(s.input.Value())

	if raw != "" {
		value, err := s.input.NumericValue()
		if err != nil {
			s.fieldErr = "enter a whole number between 1 and 100"
			s.input.Submit(false)
			return s, nil
		}
		if value < leveling.MinLevel || value > leveling.MaxLevel {
			s.fieldErr = fmt.Sprintf("level must be between %d and %d", leveling.MinLevel, leveling.MaxLevel)
			s.input.Submit(false)
			return s, nil
		}
		s.values[k] = value
	}

	s.fieldErr = ""
	s.index++
	if s.index >= len(s.keys) {
		s.phase = phaseConfirm
		return s, nil
	}
	s.input = newFieldInput()
	return s, s.input.Init()
}

func (s *AssessScreen) commit() (screen.Screen, tea.Cmd) {
	values := s.values
	svc := s.service
	note := reassessNote
	if s.firstRun {
		note = initialNote
	}
	return s, func() tea.Msg {
		ctx := context.Background()
		rec, err := svc.RunAssessment(ctx, values, note)
		if err != nil {
			return commitResultMsg{Err: err}
		}
		snap, _ := svc.Snapshot(ctx)
		return commitResultMsg{Record: rec, Snap: snap}
	}
}

// finish leaves the screen: replaces with the next screen on first run,
// otherwise pops back to where the assessment was launched from.
func (s *AssessScreen) finish() tea.Cmd {
	if s.nextFactory != nil {
		next := s.nextFactory()
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func newFieldInput() components.TextInput {
	return components.NewTextInput("skip", true, 3)
}

func (s *AssessScreen) View(width, height int) string {
	var content string

	switch s.phase {
	case phaseWarn:
		content = s.viewWarn()
	case phaseEntry:
		content = s.viewEntry()
	case phaseConfirm:
		content = s.viewConfirm()
	case phaseDone:
		content = s.viewDone()
	case phaseFailed:
		content = lipgloss.NewStyle().Foreground(theme.Error).Render("Assessment failed: "+s.errMsg) +
			"\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("press enter to go back")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessScreen) viewWarn() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
		Render("⚠ Full assessment"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render("An assessment overwrites the levels you enter,\nincluding setting skills lower than they are now."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press enter to continue, esc to cancel"))
	return b.String()
}

func (s *AssessScreen) viewEntry() string {
	k := s.keys[s.index]

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

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level (%d-%d): ", leveling.MinLevel, leveling.MaxLevel)))
	b.WriteString(s.input.View())

	if s.fieldErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + s.fieldErr))
	}

	return b.String()
}

func (s *AssessScreen) viewConfirm() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Review assessment"))
	b.WriteString("\n\n")

	if len(s.values) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No levels entered. An empty assessment is still recorded."))
	} else {
		for _, k := range s.keys {
			v, ok := s.values[k]
			if !ok {
				continue
			}
			line := fmt.Sprintf("%-28s %3d", taxonomy.DisplayName(k.Skill), v)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press enter to commit, esc to cancel"))
	return b.String()
}

func (s *AssessScreen) viewDone() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render("✓ Assessment recorded"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Skills assessed: %d", len(s.values))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Overall level: %d", s.overall)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press enter to continue"))
	return b.String()
}
