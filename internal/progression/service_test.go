package progression

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/abhisek/levelup/internal/leveling"
	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
)

// mockRepo implements store.ProgressRepo in memory.
type mockRepo struct {
	levels    map[taxonomy.Key]int
	issues    []store.IntegrityIssue
	sessions  []store.SessionRecord
	commitErr error
}

func newMockRepo() *mockRepo {
	levels := make(map[taxonomy.Key]int)
	for _, k := range taxonomy.Default().Keys() {
		levels[k] = 1
	}
	return &mockRepo{levels: levels}
}

func (m *mockRepo) SkillLevels(_ context.Context) (map[taxonomy.Key]int, []store.IntegrityIssue, error) {
	out := make(map[taxonomy.Key]int, len(m.levels))
	for k, v := range m.levels {
		out[k] = v
	}
	return out, m.issues, nil
}

func (m *mockRepo) CommitSession(_ context.Context, rec *store.SessionRecord) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	if rec.UID == "" {
		rec.UID = "mock-uid"
	}
	for _, ch := range rec.Changes {
		if rec.Kind == store.KindUpdate && ch.Gain() == 0 {
			continue
		}
		m.levels[ch.Key] = ch.NewLevel
	}
	m.sessions = append(m.sessions, *rec)
	return nil
}

func (m *mockRepo) Sessions(_ context.Context, opts store.QueryOpts) ([]store.SessionRecord, error) {
	out := append([]store.SessionRecord(nil), m.sessions...)
	sort.SliceStable(out, func(i, j int) bool {
		if opts.Ascending {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[j].Timestamp.Before(out[i].Timestamp)
	})
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *mockRepo) IsFirstRun(_ context.Context) (bool, error) {
	for _, v := range m.levels {
		if v > 1 {
			return false, nil
		}
	}
	return len(m.sessions) == 0, nil
}

func (m *mockRepo) Reset(_ context.Context) error {
	for k := range m.levels {
		m.levels[k] = 1
	}
	m.sessions = nil
	return nil
}

func (m *mockRepo) RestoreLevels(_ context.Context, levels map[taxonomy.Key]int) error {
	for k, v := range levels {
		m.levels[k] = v
	}
	return nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(taxonomy.Default(), repo)
	svc.now = func() time.Time { return time.Date(2025, 7, 4, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func k(c taxonomy.Category, s string) taxonomy.Key {
	return taxonomy.Key{Category: c, Skill: s}
}

func TestSnapshotFresh(t *testing.T) {
	svc, _ := newTestService()

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap.Skills) != 50 {
		t.Errorf("skills = %d, want 50", len(snap.Skills))
	}
	for c, lvl := range snap.CategoryLevels {
		if lvl != leveling.Level(10, 1000) {
			t.Errorf("category %q level = %d, want fresh floor", c, lvl)
		}
	}
	if snap.OverallLevel != leveling.Level(5, 500) {
		t.Errorf("overall = %d, want fresh floor", snap.OverallLevel)
	}
}

func TestProposeSessionCommitsGains(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a := k(taxonomy.CategoryLifeSkills, "communication")
	b := k(taxonomy.CategoryLifeSkills, "time_management")

	rec, err := svc.ProposeSession(ctx, map[taxonomy.Key]string{
		a: "6",
		b: "4",
	}, "solid week")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	if rec.TotalGain != 8 {
		t.Errorf("total gain = %d, want 8", rec.TotalGain)
	}
	if rec.Kind != store.KindUpdate {
		t.Errorf("kind = %q, want update", rec.Kind)
	}
	if len(rec.Changes) != 2 {
		t.Fatalf("changes = %d, want 2", len(rec.Changes))
	}
	for _, ch := range rec.Changes {
		if ch.OldLevel != 1 {
			t.Errorf("old level of %s = %d, want 1", ch.Key, ch.OldLevel)
		}
	}

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Skills[a] != 6 || snap.Skills[b] != 4 {
		t.Errorf("levels after commit = %d, %d, want 6, 4", snap.Skills[a], snap.Skills[b])
	}
	if len(repo.sessions) != 1 {
		t.Errorf("sessions recorded = %d, want 1", len(repo.sessions))
	}
}

func TestProposeSessionBlankKeepsLevel(t *testing.T) {
	svc, repo := newTestService()
	a := k(taxonomy.CategoryCareer, "technical_mastery")

	rec, err := svc.ProposeSession(context.Background(), map[taxonomy.Key]string{
		a: "   ",
	}, "")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if len(rec.Changes) != 0 {
		t.Errorf("blank input produced %d changes, want 0", len(rec.Changes))
	}
	if rec.TotalGain != 0 {
		t.Errorf("total gain = %d, want 0", rec.TotalGain)
	}
	// The zero-gain session is still recorded.
	if len(repo.sessions) != 1 {
		t.Errorf("sessions recorded = %d, want 1", len(repo.sessions))
	}
}

func TestProposeSessionRejectsNonNumeric(t *testing.T) {
	svc, repo := newTestService()
	a := k(taxonomy.CategoryCareer, "technical_mastery")

	_, err := svc.ProposeSession(context.Background(), map[taxonomy.Key]string{a: "ten"}, "")
	var inv *ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if inv.Key != a {
		t.Errorf("error names %s, want %s", inv.Key, a)
	}
	if len(repo.sessions) != 0 {
		t.Error("rejected batch must not be recorded")
	}
}

func TestProposeSessionRejectsDecrease(t *testing.T) {
	svc, repo := newTestService()
	a := k(taxonomy.CategoryVision, "strategic_thinking")
	repo.levels[a] = 40

	_, err := svc.ProposeSession(context.Background(), map[taxonomy.Key]string{a: "30"}, "")
	var dec *ErrLevelDecrease
	if !errors.As(err, &dec) {
		t.Fatalf("err = %v, want ErrLevelDecrease", err)
	}
	if dec.Current != 40 || dec.Requested != 30 {
		t.Errorf("error detail = %+v", dec)
	}
	if repo.levels[a] != 40 {
		t.Error("rejected batch must not mutate levels")
	}
}

func TestProposeSessionRejectsDelta(t *testing.T) {
	svc, _ := newTestService()
	a := k(taxonomy.CategoryFinancial, "budgeting_savings")

	_, err := svc.ProposeSession(context.Background(), map[taxonomy.Key]string{a: "12"}, "")
	var delta *ErrDeltaExceeded
	if !errors.As(err, &delta) {
		t.Fatalf("err = %v, want ErrDeltaExceeded", err)
	}
}

func TestProposeSessionRejectsCeiling(t *testing.T) {
	svc, repo := newTestService()
	a := k(taxonomy.CategoryFinancial, "tax_optimization")
	repo.levels[a] = 95

	_, err := svc.ProposeSession(context.Background(), map[taxonomy.Key]string{a: "101"}, "")
	var ceil *ErrLevelCeiling
	if !errors.As(err, &ceil) {
		t.Fatalf("err = %v, want ErrLevelCeiling", err)
	}
}

func TestProposeSessionAllOrNothing(t *testing.T) {
	svc, repo := newTestService()
	good := k(taxonomy.CategoryLifeSkills, "communication")
	bad := k(taxonomy.CategoryLifeSkills, "independence")

	_, err := svc.ProposeSession(context.Background(), map[taxonomy.Key]string{
		good: "8",  // valid on its own
		bad:  "50", // delta violation
	}, "")
	if err == nil {
		t.Fatal("expected batch rejection")
	}
	if repo.levels[good] != 1 {
		t.Errorf("valid entry of a rejected batch was applied: level = %d", repo.levels[good])
	}
	if len(repo.sessions) != 0 {
		t.Error("rejected batch must not be recorded")
	}
}

func TestProposeSessionUnknownSkill(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ProposeSession(context.Background(), map[taxonomy.Key]string{
		{Category: taxonomy.CategoryCareer, Skill: "underwater_basket_weaving"}: "5",
	}, "")
	var unk *ErrUnknownSkill
	if !errors.As(err, &unk) {
		t.Fatalf("err = %v, want ErrUnknownSkill", err)
	}
}

func TestRunAssessmentSetsBaseline(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	x := k(taxonomy.CategoryContentCreation, "video_editing")
	rec, err := svc.RunAssessment(ctx, map[taxonomy.Key]int{x: 70}, "initial assessment")
	if err != nil {
		t.Fatalf("assessment: %v", err)
	}

	if rec.Kind != store.KindAssessment {
		t.Errorf("kind = %q, want assessment", rec.Kind)
	}
	if len(rec.Changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(rec.Changes))
	}
	ch := rec.Changes[0]
	if ch.OldLevel != 1 || ch.NewLevel != 70 || ch.Gain() != 69 {
		t.Errorf("change = %+v, want old 1, new 70, gain 69", ch)
	}
	if repo.levels[x] != 70 {
		t.Errorf("level = %d, want 70", repo.levels[x])
	}
}

func TestRunAssessmentIgnoresDeltaRules(t *testing.T) {
	svc, repo := newTestService()
	x := k(taxonomy.CategoryVision, "system_design")
	repo.levels[x] = 90

	// 90 → 15 would violate both decrease and delta rules for an
	// update session; the assessment path has neither.
	rec, err := svc.RunAssessment(context.Background(), map[taxonomy.Key]int{x: 15}, "")
	if err != nil {
		t.Fatalf("assessment: %v", err)
	}
	if rec.Changes[0].OldLevel != 1 {
		t.Errorf("old level = %d, want baseline 1", rec.Changes[0].OldLevel)
	}
	if repo.levels[x] != 15 {
		t.Errorf("level = %d, want 15", repo.levels[x])
	}
}

func TestRunAssessmentRejectsOutOfRange(t *testing.T) {
	svc, _ := newTestService()
	x := k(taxonomy.CategoryVision, "system_design")

	_, err := svc.RunAssessment(context.Background(), map[taxonomy.Key]int{x: 101}, "")
	var ceil *ErrLevelCeiling
	if !errors.As(err, &ceil) {
		t.Fatalf("err = %v, want ErrLevelCeiling", err)
	}

	_, err = svc.RunAssessment(context.Background(), map[taxonomy.Key]int{x: 0}, "")
	var inv *ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestHistoryNewestFirstLimited(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		repo.sessions = append(repo.sessions, store.SessionRecord{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Kind:      store.KindUpdate,
			TotalGain: i,
		})
	}

	got, err := svc.History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("history = %d entries, want 10", len(got))
	}
	if got[0].TotalGain != 14 {
		t.Errorf("first entry gain = %d, want newest (14)", got[0].TotalGain)
	}
}

func TestHistoryEmpty(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("history = %d entries, want 0", len(got))
	}
}

func TestIsFirstRunTransitions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.IsFirstRun(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !first {
		t.Error("fresh repo should be first-run")
	}

	if _, err := svc.ProposeSession(ctx, nil, ""); err != nil {
		t.Fatalf("propose: %v", err)
	}

	first, err = svc.IsFirstRun(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first {
		t.Error("committed session should end first-run")
	}
}

func TestValidateUpdateRuleOrder(t *testing.T) {
	svc, _ := newTestService()
	key := k(taxonomy.CategoryCareer, "industry_knowledge")

	// 95 → 120 violates both delta and ceiling; delta is checked first.
	err := svc.ValidateUpdate(key, 95, 120)
	var delta *ErrDeltaExceeded
	if !errors.As(err, &delta) {
		t.Fatalf("err = %v, want ErrDeltaExceeded first", err)
	}

	if err := svc.ValidateUpdate(key, 95, 100); err != nil {
		t.Errorf("95 → 100 should be valid, got %v", err)
	}
	if err := svc.ValidateUpdate(key, 95, 95); err != nil {
		t.Errorf("keeping the level should be valid, got %v", err)
	}
}
