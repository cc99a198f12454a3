package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/levelup/internal/taxonomy"
)

// SessionKind distinguishes constrained update sessions from baseline
// assessments.
type SessionKind string

const (
	KindUpdate     SessionKind = "update"
	KindAssessment SessionKind = "assessment"
)

// SkillChange is one per-skill level change inside a session.
type SkillChange struct {
	Key      taxonomy.Key
	OldLevel int
	NewLevel int
}

// Gain returns the level delta of the change.
func (c SkillChange) Gain() int {
	return c.NewLevel - c.OldLevel
}

// SessionRecord is one committed (or to-be-committed) session with its
// per-skill changes. Records are immutable once committed.
type SessionRecord struct {
	UID       string
	Timestamp time.Time
	Kind      SessionKind
	TotalGain int
	Note      string
	Changes   []SkillChange
}

// IntegrityIssue describes a persisted value the store could not trust.
// The affected skill falls back to its default level; the issue is
// surfaced to the caller for reporting instead of crashing the process.
type IntegrityIssue struct {
	Key   taxonomy.Key
	Level int
}

func (i IntegrityIssue) String() string {
	return fmt.Sprintf("skill %s has stored level %d outside [1, 100]", i.Key, i.Level)
}

// IntegrityError reports an attempt to write a level outside [1, 100].
type IntegrityError struct {
	Key   taxonomy.Key
	Level int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("refusing to store level %d for %s: outside [1, 100]", e.Level, e.Key)
}

// QueryOpts configures session queries.
type QueryOpts struct {
	Limit     int  // max results (0 = unlimited)
	Ascending bool // oldest-first instead of the default newest-first
}

// ProgressRepo provides typed access to skill levels and the append-only
// session log. Skill levels change only through CommitSession (and
// RestoreLevels during legacy migration).
type ProgressRepo interface {
	// SkillLevels returns the current level of every known skill.
	// Skills missing from the store read as level 1. Stored levels
	// outside [1, 100] also read as 1 and are reported as issues.
	SkillLevels(ctx context.Context) (map[taxonomy.Key]int, []IntegrityIssue, error)

	// CommitSession atomically writes the session row, its per-skill
	// update rows, and the new skill levels: all or nothing. A blank
	// UID or zero Timestamp is filled in before the write.
	CommitSession(ctx context.Context, rec *SessionRecord) error

	// Sessions returns committed sessions, newest-first by default.
	Sessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// IsFirstRun reports whether the store holds no progress: no skill
	// above level 1 and no committed session.
	IsFirstRun(ctx context.Context) (bool, error)

	// Reset wipes all progress: every skill back to level 1 and the
	// session log cleared.
	Reset(ctx context.Context) error

	// RestoreLevels overwrites skill levels without recording a
	// session. Used only by the legacy snapshot importer to restore
	// the final state a v1 file captured.
	RestoreLevels(ctx context.Context, levels map[taxonomy.Key]int) error
}
