package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/screens/assess"
	"github.com/abhisek/levelup/internal/screens/home"
	"github.com/abhisek/levelup/internal/screens/welcome"
	"github.com/abhisek/levelup/internal/ui/layout"
)

// Options configures the TUI application.
type Options struct {
	Service *progression.Service

	// StartAssessment launches directly into a full assessment instead of
	// the home screen.
	StartAssessment bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	overall int
	width   int
	height  int
}

// newAppModel picks the initial screen: the first run gets a welcome
// splash that leads into the initial assessment, everything else lands
// on home.
func newAppModel(opts Options) AppModel {
	svc := opts.Service

	homeFactory := func() screen.Screen { return home.New(svc) }

	firstRun, err := svc.IsFirstRun(context.Background())
	if err != nil {
		firstRun = false
	}

	var initial screen.Screen
	switch {
	case opts.StartAssessment:
		initial = assess.New(svc, firstRun, nil)
	case firstRun:
		initial = welcome.New(func() screen.Screen {
			return assess.New(svc, true, homeFactory)
		})
	default:
		initial = homeFactory()
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.OverallLevelMsg:
		m.overall = int(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.overall, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
