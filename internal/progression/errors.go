package progression

import (
	"fmt"

	"github.com/abhisek/levelup/internal/taxonomy"
)

// MaxDeltaPerSession is the largest increase an update session may apply
// to a single skill.
const MaxDeltaPerSession = 10

// ErrUnknownSkill indicates a proposed key that is not in the taxonomy.
type ErrUnknownSkill struct {
	Key taxonomy.Key
}

func (e *ErrUnknownSkill) Error() string {
	return fmt.Sprintf("unknown skill %s", e.Key)
}

// ErrInvalidInput indicates a non-numeric or malformed level value.
type ErrInvalidInput struct {
	Key   taxonomy.Key
	Value string
	Err   error
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid level %q for %s: enter a whole number or leave blank", e.Value, e.Key)
}

func (e *ErrInvalidInput) Unwrap() error { return e.Err }

// ErrLevelDecrease indicates a requested level below the current one.
// Levels only move up in update sessions.
type ErrLevelDecrease struct {
	Key       taxonomy.Key
	Current   int
	Requested int
}

func (e *ErrLevelDecrease) Error() string {
	return fmt.Sprintf("cannot decrease %s from %d to %d", e.Key, e.Current, e.Requested)
}

// ErrDeltaExceeded indicates a requested increase above MaxDeltaPerSession.
type ErrDeltaExceeded struct {
	Key       taxonomy.Key
	Current   int
	Requested int
}

func (e *ErrDeltaExceeded) Error() string {
	return fmt.Sprintf("%s: %d → %d exceeds the maximum increase of %d per session",
		e.Key, e.Current, e.Requested, MaxDeltaPerSession)
}

// ErrLevelCeiling indicates a requested level above the maximum.
type ErrLevelCeiling struct {
	Key       taxonomy.Key
	Requested int
}

func (e *ErrLevelCeiling) Error() string {
	return fmt.Sprintf("%s: requested level %d is above the maximum of 100", e.Key, e.Requested)
}
