package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/levelup/ent/skill"
	"github.com/abhisek/levelup/internal/taxonomy"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared", taxonomy.Default())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func key(c taxonomy.Category, s string) taxonomy.Key {
	return taxonomy.Key{Category: c, Skill: s}
}

func TestOpenSeedsSkillRows(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Client().Skill.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count skills: %v", err)
	}
	if n != taxonomy.Default().TotalSkills() {
		t.Errorf("skill rows = %d, want %d", n, taxonomy.Default().TotalSkills())
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSkillLevelsDefaultToOne(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	levels, issues, err := repo.SkillLevels(context.Background())
	if err != nil {
		t.Fatalf("skill levels: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected integrity issues: %v", issues)
	}
	if len(levels) != taxonomy.Default().TotalSkills() {
		t.Fatalf("levels = %d entries, want %d", len(levels), taxonomy.Default().TotalSkills())
	}
	for k, lvl := range levels {
		if lvl != 1 {
			t.Errorf("fresh level of %s = %d, want 1", k, lvl)
		}
	}
}

func TestCommitSessionWritesEverything(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	a := key(taxonomy.CategoryLifeSkills, "communication")
	b := key(taxonomy.CategoryCareer, "technical_mastery")

	rec := &SessionRecord{
		Kind:      KindUpdate,
		TotalGain: 8,
		Note:      "good week",
		Changes: []SkillChange{
			{Key: a, OldLevel: 1, NewLevel: 6},
			{Key: b, OldLevel: 1, NewLevel: 4},
		},
	}
	if err := repo.CommitSession(ctx, rec); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if rec.UID == "" {
		t.Error("expected UID to be assigned")
	}
	if rec.Timestamp.IsZero() {
		t.Error("expected timestamp to be assigned")
	}

	levels, _, err := repo.SkillLevels(ctx)
	if err != nil {
		t.Fatalf("skill levels: %v", err)
	}
	if levels[a] != 6 || levels[b] != 4 {
		t.Errorf("levels after commit: %s=%d %s=%d, want 6 and 4", a, levels[a], b, levels[b])
	}

	sessions, err := repo.Sessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	got := sessions[0]
	if got.Kind != KindUpdate || got.TotalGain != 8 || got.Note != "good week" {
		t.Errorf("session fields = %+v", got)
	}
	if len(got.Changes) != 2 {
		t.Fatalf("session changes = %d, want 2", len(got.Changes))
	}
}

func TestCommitSessionRejectsOutOfRangeLevel(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	rec := &SessionRecord{
		Kind:    KindUpdate,
		Changes: []SkillChange{{Key: key(taxonomy.CategoryCareer, "technical_mastery"), OldLevel: 1, NewLevel: 101}},
	}
	err := repo.CommitSession(context.Background(), rec)
	var ierr *IntegrityError
	if !errors.As(err, &ierr) {
		t.Fatalf("err = %v, want IntegrityError", err)
	}

	// Nothing was written.
	sessions, err := repo.Sessions(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sessions))
	}
}

func TestCommitZeroGainUpdateLeavesLevels(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	k := key(taxonomy.CategoryVision, "weekly_planning")
	rec := &SessionRecord{
		Kind:    KindUpdate,
		Changes: []SkillChange{{Key: k, OldLevel: 1, NewLevel: 1}},
	}
	if err := repo.CommitSession(ctx, rec); err != nil {
		t.Fatalf("commit: %v", err)
	}

	levels, _, err := repo.SkillLevels(ctx)
	if err != nil {
		t.Fatalf("skill levels: %v", err)
	}
	if levels[k] != 1 {
		t.Errorf("level = %d, want 1", levels[k])
	}
	sessions, err := repo.Sessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("zero-gain session should still be recorded, got %d sessions", len(sessions))
	}
}

func TestSessionsNewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		rec := &SessionRecord{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Kind:      KindUpdate,
			TotalGain: i,
		}
		if err := repo.CommitSession(ctx, rec); err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
	}

	sessions, err := repo.Sessions(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 10 {
		t.Fatalf("sessions = %d, want 10", len(sessions))
	}
	if sessions[0].TotalGain != 14 {
		t.Errorf("first session gain = %d, want newest (14)", sessions[0].TotalGain)
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].Timestamp.After(sessions[i-1].Timestamp) {
			t.Errorf("sessions out of order at index %d", i)
		}
	}

	asc, err := repo.Sessions(ctx, QueryOpts{Limit: 3, Ascending: true})
	if err != nil {
		t.Fatalf("ascending sessions: %v", err)
	}
	if len(asc) != 3 || asc[0].TotalGain != 0 {
		t.Errorf("ascending query returned %d sessions, first gain %d", len(asc), asc[0].TotalGain)
	}
}

func TestSessionsEmptyHistory(t *testing.T) {
	s := openTestStore(t)

	sessions, err := s.ProgressRepo().Sessions(context.Background(), QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sessions))
	}
}

func TestIsFirstRun(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first, err := repo.IsFirstRun(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !first {
		t.Error("fresh store should be first-run")
	}

	rec := &SessionRecord{Kind: KindUpdate}
	if err := repo.CommitSession(ctx, rec); err != nil {
		t.Fatalf("commit: %v", err)
	}

	first, err = repo.IsFirstRun(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first {
		t.Error("store with a session should not be first-run")
	}
}

func TestResetWipesProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	k := key(taxonomy.CategoryFinancial, "budgeting_savings")
	rec := &SessionRecord{
		Kind:      KindAssessment,
		TotalGain: 59,
		Changes:   []SkillChange{{Key: k, OldLevel: 1, NewLevel: 60}},
	}
	if err := repo.CommitSession(ctx, rec); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	levels, _, err := repo.SkillLevels(ctx)
	if err != nil {
		t.Fatalf("skill levels: %v", err)
	}
	if levels[k] != 1 {
		t.Errorf("level after reset = %d, want 1", levels[k])
	}
	first, err := repo.IsFirstRun(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !first {
		t.Error("store should be first-run again after reset")
	}
}

func TestRestoreLevels(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	a := key(taxonomy.CategoryLifeSkills, "cooking_nutrition")
	b := key(taxonomy.CategoryVision, "system_design")
	err := repo.RestoreLevels(ctx, map[taxonomy.Key]int{a: 33, b: 77})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	levels, _, err := repo.SkillLevels(ctx)
	if err != nil {
		t.Fatalf("skill levels: %v", err)
	}
	if levels[a] != 33 || levels[b] != 77 {
		t.Errorf("restored levels = %d, %d, want 33, 77", levels[a], levels[b])
	}

	// No session was recorded from a restore.
	sessions, err := repo.Sessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sessions))
	}

	if err := repo.RestoreLevels(ctx, map[taxonomy.Key]int{a: 0}); err == nil {
		t.Error("expected error restoring out-of-range level")
	}
}

func TestSkillLevelsIntegrityFallback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Corrupt a row behind ent's back, as an external editor would.
	k := key(taxonomy.CategoryContentCreation, "streaming")
	_, err := s.DB().ExecContext(ctx,
		"UPDATE skills SET level = 400 WHERE category = ? AND name = ?",
		string(k.Category), k.Skill)
	if err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	levels, issues, err := s.ProgressRepo().SkillLevels(ctx)
	if err != nil {
		t.Fatalf("skill levels: %v", err)
	}
	if levels[k] != 1 {
		t.Errorf("corrupt skill level = %d, want fallback 1", levels[k])
	}
	if len(issues) != 1 || issues[0].Key != k || issues[0].Level != 400 {
		t.Errorf("issues = %v, want one for %s at 400", issues, k)
	}
}

// Guard against the seed clobbering existing progress on reopen.
func TestReopenKeepsLevels(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/levelup.db"

	s, err := Open(dsn, taxonomy.Default())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	k := key(taxonomy.CategoryCareer, "project_management")
	rec := &SessionRecord{
		Kind:    KindUpdate,
		Changes: []SkillChange{{Key: k, OldLevel: 1, NewLevel: 9}},
	}
	if err := s.ProgressRepo().CommitSession(ctx, rec); err != nil {
		t.Fatalf("commit: %v", err)
	}
	s.Close()

	s, err = Open(dsn, taxonomy.Default())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	n, err := s.Client().Skill.Query().Where(skill.LevelGT(1)).Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("progressed rows after reopen = %d, want 1", n)
	}
	levels, _, err := s.ProgressRepo().SkillLevels(ctx)
	if err != nil {
		t.Fatalf("skill levels: %v", err)
	}
	if levels[k] != 9 {
		t.Errorf("level after reopen = %d, want 9", levels[k])
	}
}
