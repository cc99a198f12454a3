// Package progression implements the leveling engine: snapshot rollups,
// the session validate-and-commit protocol, the bulk assessment path, and
// history reads. It holds no state of its own beyond the taxonomy; every
// durable fact lives behind the store.ProgressRepo it is given.
package progression

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/levelup/internal/leveling"
	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
)

// Snapshot is the derived view of current progress. It is recomputed on
// every call and never persisted, so it cannot go stale.
type Snapshot struct {
	Skills         map[taxonomy.Key]int
	CategoryLevels map[taxonomy.Category]int
	OverallLevel   int

	// Issues lists stored values that failed integrity checks and were
	// replaced by the default level.
	Issues []store.IntegrityIssue
}

// Service is the progression engine consumed by every front end.
type Service struct {
	tax  taxonomy.Taxonomy
	repo store.ProgressRepo
	now  func() time.Time
}

// NewService creates a progression service over the given repository.
func NewService(tax taxonomy.Taxonomy, repo store.ProgressRepo) *Service {
	return &Service{tax: tax, repo: repo, now: time.Now}
}

// Taxonomy returns the catalog the service was built with.
func (s *Service) Taxonomy() taxonomy.Taxonomy {
	return s.tax
}

// Snapshot reads every skill level and derives category and overall levels.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	levels, issues, err := s.repo.SkillLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skill levels: %w", err)
	}
	return &Snapshot{
		Skills:         levels,
		CategoryLevels: leveling.CategoryLevels(s.tax, levels),
		OverallLevel:   leveling.OverallLevel(s.tax, levels),
		Issues:         issues,
	}, nil
}

// ValidateUpdate applies the update-session rules for a single skill, in
// order: no decrease, at most +MaxDeltaPerSession, at most the ceiling.
// Front ends call this for immediate per-field feedback; ProposeSession
// applies the same checks before committing.
func (s *Service) ValidateUpdate(k taxonomy.Key, current, requested int) error {
	switch {
	case requested < current:
		return &ErrLevelDecrease{Key: k, Current: current, Requested: requested}
	case requested-current > MaxDeltaPerSession:
		return &ErrDeltaExceeded{Key: k, Current: current, Requested: requested}
	case requested > leveling.MaxLevel:
		return &ErrLevelCeiling{Key: k, Requested: requested}
	}
	return nil
}

// ProposeSession validates a batch of requested levels and commits them as
// one update session. Values are raw strings as entered: blank means "keep
// the current level" and produces no change row. The whole batch is
// all-or-nothing — the first violation aborts with a typed error and
// nothing is written.
func (s *Service) ProposeSession(ctx context.Context, requested map[taxonomy.Key]string, note string) (*store.SessionRecord, error) {
	for k := range requested {
		if !s.tax.Contains(k) {
			return nil, &ErrUnknownSkill{Key: k}
		}
	}

	current, _, err := s.repo.SkillLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skill levels: %w", err)
	}

	rec := &store.SessionRecord{
		Timestamp: s.now(),
		Kind:      store.KindUpdate,
		Note:      note,
	}

	// Walk the taxonomy in catalog order so change rows are deterministic.
	for _, k := range s.tax.Keys() {
		raw, ok := requested[k]
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}

		lvl, err := strconv.Atoi(value)
		if err != nil {
			return nil, &ErrInvalidInput{Key: k, Value: raw, Err: err}
		}
		if err := s.ValidateUpdate(k, current[k], lvl); err != nil {
			return nil, err
		}

		rec.Changes = append(rec.Changes, store.SkillChange{
			Key:      k,
			OldLevel: current[k],
			NewLevel: lvl,
		})
		rec.TotalGain += lvl - current[k]
	}

	if err := s.repo.CommitSession(ctx, rec); err != nil {
		return nil, fmt.Errorf("commit session: %w", err)
	}
	return rec, nil
}

// RunAssessment commits a bulk baseline session. Every provided skill is
// set to its value with the old level fixed at 1, regardless of what the
// store held before; the decrease and delta rules do not apply. Values
// outside [1, 100] are rejected, not clamped.
func (s *Service) RunAssessment(ctx context.Context, values map[taxonomy.Key]int, note string) (*store.SessionRecord, error) {
	for k, v := range values {
		if !s.tax.Contains(k) {
			return nil, &ErrUnknownSkill{Key: k}
		}
		if v > leveling.MaxLevel {
			return nil, &ErrLevelCeiling{Key: k, Requested: v}
		}
		if v < leveling.MinLevel {
			return nil, &ErrInvalidInput{Key: k, Value: strconv.Itoa(v)}
		}
	}

	rec := &store.SessionRecord{
		Timestamp: s.now(),
		Kind:      store.KindAssessment,
		Note:      note,
	}
	for _, k := range s.tax.Keys() {
		v, ok := values[k]
		if !ok {
			continue
		}
		rec.Changes = append(rec.Changes, store.SkillChange{
			Key:      k,
			OldLevel: leveling.MinLevel, // baseline, not the stored value
			NewLevel: v,
		})
		rec.TotalGain += v - leveling.MinLevel
	}

	if err := s.repo.CommitSession(ctx, rec); err != nil {
		return nil, fmt.Errorf("commit assessment: %w", err)
	}
	return rec, nil
}

// History returns committed sessions newest-first. A limit of 0 returns
// everything; an empty history is an empty slice, not an error.
func (s *Service) History(ctx context.Context, limit int) ([]store.SessionRecord, error) {
	sessions, err := s.repo.Sessions(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return sessions, nil
}

// IsFirstRun reports whether any progress has ever been recorded.
func (s *Service) IsFirstRun(ctx context.Context) (bool, error) {
	return s.repo.IsFirstRun(ctx)
}

// Reset wipes all progress back to the defaults.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
