// Package legacy imports the v1 single-file JSON format into the
// relational store. The old format serialized everything into one
// document: current skill levels plus the full session log.
package legacy

import "time"

// snapshotFile mirrors the v1 document layout.
type snapshotFile struct {
	SkillLevels map[string]map[string]int `json:"skill_levels"`
	Sessions    []legacySession           `json:"sessions"`
	LastUpdated string                    `json:"last_updated,omitempty"`
}

type legacySession struct {
	Timestamp string                              `json:"timestamp"`
	Updates   map[string]map[string]legacyUpdate  `json:"updates"`
	Notes     string                              `json:"notes,omitempty"`
}

type legacyUpdate struct {
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
	Gain     int `json:"gain"`
}

// timestampLayouts covers the timestamp shapes found in v1 files
// (ISO 8601 with and without fractional seconds or a zone).
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
