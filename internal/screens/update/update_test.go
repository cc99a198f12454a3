package update

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/progression"
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

func newTestScreen() (*UpdateScreen, *memRepo) {
	tax := taxonomy.Default()
	repo := newMemRepo(tax)
	svc := progression.NewService(tax, repo)
	s := New(svc)

	// Run the Init command synchronously to load the snapshot.
	msg := s.Init()()
	s.Update(msg)
	return s, repo
}

func typeDigits(t *testing.T, s *UpdateScreen, digits string) {
	t.Helper()
	for _, d := range digits {
		updated, _ := s.Update(tea.KeyPressMsg{Code: d, Text: string(d)})
		if updated != s {
			t.Fatal("screen identity changed during input")
		}
	}
}

func pressEnter(s *UpdateScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestEntryStartsAtFirstSkill(t *testing.T) {
	s, _ := newTestScreen()

	if s.phase != phaseEntry {
		t.Fatalf("expected entry phase after load, got %d", s.phase)
	}
	view := s.viewEntry()
	if !strings.Contains(view, "Skill 1 of 50") {
		t.Errorf("expected first skill header, got:\n%s", view)
	}
}

func TestBlankEntrySkips(t *testing.T) {
	s, _ := newTestScreen()

	pressEnter(s)

	if s.index != 1 {
		t.Errorf("expected index 1 after blank entry, got %d", s.index)
	}
	if len(s.entered) != 0 {
		t.Errorf("blank entry should not be recorded, got %v", s.entered)
	}
}

func TestInvalidEntryBlocksAdvance(t *testing.T) {
	s, _ := newTestScreen()

	// Level 1 → 50 exceeds the per-session delta cap.
	typeDigits(t, s, "50")
	pressEnter(s)

	if s.index != 0 {
		t.Errorf("invalid entry should not advance, index = %d", s.index)
	}
	if s.fieldErr == "" {
		t.Error("expected a field error for an over-cap entry")
	}
}

func TestValidEntryRecordedAndAdvances(t *testing.T) {
	s, _ := newTestScreen()

	typeDigits(t, s, "5")
	pressEnter(s)

	if s.index != 1 {
		t.Errorf("expected index 1 after valid entry, got %d", s.index)
	}
	k := s.keys[0]
	if s.entered[k] != "5" {
		t.Errorf("expected entry %q recorded for %s, got %q", "5", k, s.entered[k])
	}
}

func TestFullFlowCommitsSession(t *testing.T) {
	s, repo := newTestScreen()

	// First skill goes to 5, the rest stay.
	typeDigits(t, s, "5")
	pressEnter(s)
	for i := 1; i < len(s.keys); i++ {
		pressEnter(s)
	}

	if s.phase != phaseNote {
		t.Fatalf("expected note phase after last skill, got %d", s.phase)
	}
	pressEnter(s)

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
	if repo.sessions[0].TotalGain != 4 {
		t.Errorf("expected total gain 4, got %d", repo.sessions[0].TotalGain)
	}
	if got := repo.levels[s.keys[0]]; got != 5 {
		t.Errorf("expected first skill at level 5, got %d", got)
	}
}

func TestEscPopsScreen(t *testing.T) {
	s, _ := newTestScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command on esc")
	}
}
