package assess

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
)

// memRepo is an in-memory ProgressRepo for screen tests.
type memRepo struct {
	levels   map[taxonomy.Key]int
	sessions []store.SessionRecord
}

func newMemRepo(tax taxonomy.Taxonomy) *memRepo {
	levels := make(map[taxonomy.Key]int)
	for _, k := range tax.Keys() {
		levels[k] = 1
	}
	return &memRepo{levels: levels}
}

func (r *memRepo) SkillLevels(context.Context) (map[taxonomy.Key]int, []store.IntegrityIssue, error) {
	out := make(map[taxonomy.Key]int, len(r.levels))
	for k, v := range r.levels {
		out[k] = v
	}
	return out, nil, nil
}

func (r *memRepo) CommitSession(_ context.Context, rec *store.SessionRecord) error {
	for _, c := range rec.Changes {
		if rec.Kind == store.KindUpdate && c.Gain() == 0 {
			continue
		}
		r.levels[c.Key] = c.NewLevel
	}
	r.sessions = append(r.sessions, *rec)
	return nil
}

func (r *memRepo) Sessions(context.Context, store.QueryOpts) ([]store.SessionRecord, error) {
	return r.sessions, nil
}

func (r *memRepo) IsFirstRun(context.Context) (bool, error) {
	return len(r.sessions) == 0, nil
}

func (r *memRepo) Reset(context.Context) error {
	r.sessions = nil
	for k := range r.levels {
		r.levels[k] = 1
	}
	return nil
}

func (r *memRepo) RestoreLevels(_ context.Context, levels map[taxonomy.Key]int) error {
	for k, v := range levels {
		r.levels[k] = v
	}
	return nil
}

func newTestScreen(firstRun bool) (*AssessScreen, *memRepo) {
	tax := taxonomy.Default()
	repo := newMemRepo(tax)
	svc := progression.NewService(tax, repo)
	return New(svc, firstRun, nil), repo
}

func typeDigits(t *testing.T, s *AssessScreen, digits string) {
	t.Helper()
	for _, d := range digits {
		s.Update(tea.KeyPressMsg{Code: d, Text: string(d)})
	}
}

func pressEnter(s *AssessScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestWarnShownWhenNotFirstRun(t *testing.T) {
	s, _ := newTestScreen(false)

	if s.phase != phaseWarn {
		t.Fatalf("expected warn phase, got %d", s.phase)
	}

	pressEnter(s)
	if s.phase != phaseEntry {
		t.Fatalf("expected entry phase after confirming warning, got %d", s.phase)
	}
}

func TestFirstRunSkipsWarning(t *testing.T) {
	s, _ := newTestScreen(true)

	if s.phase != phaseEntry {
		t.Fatalf("expected entry phase on first run, got %d", s.phase)
	}
}

func TestOutOfRangeValueBlocked(t *testing.T) {
	s, _ := newTestScreen(true)

	typeDigits(t, s, "101")
	pressEnter(s)

	if s.index != 0 {
		t.Errorf("out-of-range value should not advance, index = %d", s.index)
	}
	if s.fieldErr == "" {
		t.Error("expected a field error for 101")
	}
}

func TestLargeJumpAllowed(t *testing.T) {
	s, _ := newTestScreen(true)

	// Assessments ignore the per-session delta cap.
	typeDigits(t, s, "90")
	pressEnter(s)

	if s.index != 1 {
		t.Errorf("expected advance after entering 90, got index %d", s.index)
	}
	if s.values[s.keys[0]] != 90 {
		t.Errorf("expected 90 recorded, got %d", s.values[s.keys[0]])
	}
}

func TestFullFlowCommitsAssessment(t *testing.T) {
	s, repo := newTestScreen(true)

	typeDigits(t, s, "70")
	pressEnter(s)
	for i := 1; i < len(s.keys); i++ {
		pressEnter(s)
	}

	if s.phase != phaseConfirm {
		t.Fatalf("expected confirm phase, got %d", s.phase)
	}
	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("expected commit command")
	}
	s.Update(cmd())

	if s.phase != phaseDone {
		t.Fatalf("expected done phase, got %d (err %q)", s.phase, s.errMsg)
	}
	if len(repo.sessions) != 1 {
		t.Fatalf("expected 1 committed session, got %d", len(repo.sessions))
	}
	sess := repo.sessions[0]
	if sess.Kind != store.KindAssessment {
		t.Errorf("expected assessment kind, got %q", sess.Kind)
	}
	if sess.Note != initialNote {
		t.Errorf("expected first-run note, got %q", sess.Note)
	}
	// Baseline is level 1, so a 70 reads as a 69-point gain.
	if sess.TotalGain != 69 {
		t.Errorf("expected total gain 69, got %d", sess.TotalGain)
	}
	if got := repo.levels[s.keys[0]]; got != 70 {
		t.Errorf("expected first skill at level 70, got %d", got)
	}
}

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func TestDoneTransitionsViaFactory(t *testing.T) {
	tax := taxonomy.Default()
	repo := newMemRepo(tax)
	svc := progression.NewService(tax, repo)

	called := 0
	s := New(svc, true, func() screen.Screen {
		called++
		return &stubScreen{}
	})

	// Skip every skill and commit an empty assessment.
	for i := 0; i < len(s.keys); i++ {
		pressEnter(s)
	}
	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("expected commit command")
	}
	s.Update(cmd())
	if s.phase != phaseDone {
		t.Fatalf("expected done phase, got %d (err %q)", s.phase, s.errMsg)
	}

	cmd = pressEnter(s)
	if cmd == nil {
		t.Fatal("expected transition command from done phase")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if called != 1 {
		t.Errorf("factory should be called once, got %d", called)
	}
}
