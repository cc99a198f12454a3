package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
)

// Report summarizes what an import did and what it had to skip.
type Report struct {
	SessionsImported int
	ChangesImported  int
	SkillsRestored   int

	// Skipped lists entries the importer could not map, one message
	// per anomaly. The import succeeds anyway; history is best-effort
	// for rows the current taxonomy no longer knows.
	Skipped []string
}

// Import reads a v1 snapshot file and replays it into the store: every
// historical session becomes a Session with its SessionUpdates, fields
// unchanged, and the file's current levels become the stored levels.
func Import(ctx context.Context, path string, tax taxonomy.Taxonomy, repo store.ProgressRepo) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	if err := validateFile(raw); err != nil {
		return nil, err
	}

	var file snapshotFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}

	report := &Report{}

	// Replay sessions in file order (the v1 log is append-only, so file
	// order is commit order).
	for i, ls := range file.Sessions {
		rec := store.SessionRecord{
			Kind: store.KindUpdate,
			Note: ls.Notes,
		}
		if ts, ok := parseTimestamp(ls.Timestamp); ok {
			rec.Timestamp = ts
		} else {
			report.Skipped = append(report.Skipped,
				fmt.Sprintf("session %d: unparsable timestamp %q, using import time", i+1, ls.Timestamp))
		}

		for _, k := range tax.Keys() {
			upd, ok := ls.Updates[string(k.Category)][k.Skill]
			if !ok {
				continue
			}
			if upd.NewLevel < 1 || upd.NewLevel > 100 {
				report.Skipped = append(report.Skipped,
					fmt.Sprintf("session %d: %s has new level %d outside [1, 100]", i+1, k, upd.NewLevel))
				continue
			}
			rec.Changes = append(rec.Changes, store.SkillChange{
				Key:      k,
				OldLevel: upd.OldLevel,
				NewLevel: upd.NewLevel,
			})
			rec.TotalGain += upd.NewLevel - upd.OldLevel
			if upd.Gain != upd.NewLevel-upd.OldLevel {
				report.Skipped = append(report.Skipped,
					fmt.Sprintf("session %d: %s records gain %d but levels %d → %d", i+1, k, upd.Gain, upd.OldLevel, upd.NewLevel))
			}
		}
		for cat, skills := range ls.Updates {
			for skill := range skills {
				if !tax.Contains(taxonomy.Key{Category: taxonomy.Category(cat), Skill: skill}) {
					report.Skipped = append(report.Skipped,
						fmt.Sprintf("session %d: unknown skill %s/%s", i+1, cat, skill))
				}
			}
		}

		if err := repo.CommitSession(ctx, &rec); err != nil {
			return nil, fmt.Errorf("import session %d: %w", i+1, err)
		}
		report.SessionsImported++
		report.ChangesImported += len(rec.Changes)
	}

	// The file's skill_levels map is the authoritative final state;
	// restoring it last corrects any drift the replay left behind.
	levels := make(map[taxonomy.Key]int)
	for cat, skills := range file.SkillLevels {
		for skill, lvl := range skills {
			k := taxonomy.Key{Category: taxonomy.Category(cat), Skill: skill}
			if !tax.Contains(k) {
				report.Skipped = append(report.Skipped,
					fmt.Sprintf("skill_levels: unknown skill %s/%s", cat, skill))
				continue
			}
			if lvl < 1 || lvl > 100 {
				report.Skipped = append(report.Skipped,
					fmt.Sprintf("skill_levels: %s has level %d outside [1, 100], keeping default", k, lvl))
				continue
			}
			levels[k] = lvl
		}
	}
	if len(levels) > 0 {
		if err := repo.RestoreLevels(ctx, levels); err != nil {
			return nil, fmt.Errorf("restore levels: %w", err)
		}
	}
	report.SkillsRestored = len(levels)

	return report, nil
}
