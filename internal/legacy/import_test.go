package legacy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
)

// memRepo implements store.ProgressRepo for import tests.
type memRepo struct {
	levels   map[taxonomy.Key]int
	sessions []store.SessionRecord
}

func newMemRepo() *memRepo {
	levels := make(map[taxonomy.Key]int)
	for _, k := range taxonomy.Default().Keys() {
		levels[k] = 1
	}
	return &memRepo{levels: levels}
}

func (m *memRepo) SkillLevels(context.Context) (map[taxonomy.Key]int, []store.IntegrityIssue, error) {
	return m.levels, nil, nil
}

func (m *memRepo) CommitSession(_ context.Context, rec *store.SessionRecord) error {
	for _, ch := range rec.Changes {
		if rec.Kind == store.KindUpdate && ch.Gain() == 0 {
			continue
		}
		m.levels[ch.Key] = ch.NewLevel
	}
	m.sessions = append(m.sessions, *rec)
	return nil
}

func (m *memRepo) Sessions(context.Context, store.QueryOpts) ([]store.SessionRecord, error) {
	return m.sessions, nil
}

func (m *memRepo) IsFirstRun(context.Context) (bool, error) {
	return len(m.sessions) == 0, nil
}

func (m *memRepo) Reset(context.Context) error { return nil }

func (m *memRepo) RestoreLevels(_ context.Context, levels map[taxonomy.Key]int) error {
	for k, v := range levels {
		m.levels[k] = v
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leveling_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleFile = `{
  "skill_levels": {
    "life_skills": {"communication": 12, "time_management": 7},
    "career": {"technical_mastery": 30}
  },
  "sessions": [
    {
      "timestamp": "2024-11-02T18:30:00.123456",
      "updates": {
        "life_skills": {
          "communication": {"old_level": 1, "new_level": 6, "gain": 5}
        }
      }
    },
    {
      "timestamp": "2024-11-09T19:00:00",
      "updates": {
        "life_skills": {
          "communication": {"old_level": 6, "new_level": 12, "gain": 6},
          "time_management": {"old_level": 1, "new_level": 7, "gain": 6}
        },
        "career": {
          "technical_mastery": {"old_level": 1, "new_level": 30, "gain": 29}
        }
      }
    }
  ],
  "last_updated": "2024-11-09T19:00:01"
}`

func TestImportReplaysSessionsAndLevels(t *testing.T) {
	repo := newMemRepo()
	path := writeFile(t, sampleFile)

	report, err := Import(context.Background(), path, taxonomy.Default(), repo)
	require.NoError(t, err)

	assert.Equal(t, 2, report.SessionsImported)
	assert.Equal(t, 4, report.ChangesImported)
	assert.Equal(t, 3, report.SkillsRestored)
	assert.Empty(t, report.Skipped)

	require.Len(t, repo.sessions, 2)
	first := repo.sessions[0]
	assert.Equal(t, store.KindUpdate, first.Kind)
	assert.Equal(t, 5, first.TotalGain)
	assert.Equal(t, 2024, first.Timestamp.Year())
	require.Len(t, first.Changes, 1)
	assert.Equal(t, 1, first.Changes[0].OldLevel)
	assert.Equal(t, 6, first.Changes[0].NewLevel)

	comm := taxonomy.Key{Category: taxonomy.CategoryLifeSkills, Skill: "communication"}
	tech := taxonomy.Key{Category: taxonomy.CategoryCareer, Skill: "technical_mastery"}
	assert.Equal(t, 12, repo.levels[comm])
	assert.Equal(t, 30, repo.levels[tech])
}

func TestImportSkipsUnknownSkills(t *testing.T) {
	repo := newMemRepo()
	path := writeFile(t, `{
	  "skill_levels": {
	    "life_skills": {"dragon_taming": 50, "communication": 8}
	  },
	  "sessions": [
	    {
	      "timestamp": "2024-01-01T10:00:00",
	      "updates": {
	        "life_skills": {"dragon_taming": {"old_level": 1, "new_level": 50, "gain": 49}}
	      }
	    }
	  ]
	}`)

	report, err := Import(context.Background(), path, taxonomy.Default(), repo)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SessionsImported)
	assert.Equal(t, 0, report.ChangesImported)
	assert.Equal(t, 1, report.SkillsRestored)
	assert.Len(t, report.Skipped, 2) // one per unknown-skill occurrence

	comm := taxonomy.Key{Category: taxonomy.CategoryLifeSkills, Skill: "communication"}
	assert.Equal(t, 8, repo.levels[comm])
}

func TestImportReportsGainMismatch(t *testing.T) {
	repo := newMemRepo()
	path := writeFile(t, `{
	  "skill_levels": {},
	  "sessions": [
	    {
	      "timestamp": "2024-01-01T10:00:00",
	      "updates": {
	        "career": {"technical_mastery": {"old_level": 3, "new_level": 9, "gain": 99}}
	      }
	    }
	  ]
	}`)

	report, err := Import(context.Background(), path, taxonomy.Default(), repo)
	require.NoError(t, err)
	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0], "records gain 99")

	// The change itself is still imported with its recorded levels.
	assert.Equal(t, 1, report.ChangesImported)
}

func TestImportRejectsMalformedFile(t *testing.T) {
	repo := newMemRepo()

	path := writeFile(t, `{"skill_levels": "nope"}`)
	_, err := Import(context.Background(), path, taxonomy.Default(), repo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a v1 snapshot file")

	path = writeFile(t, `{not json`)
	_, err = Import(context.Background(), path, taxonomy.Default(), repo)
	require.Error(t, err)

	assert.Empty(t, repo.sessions, "rejected file must import nothing")
}

func TestImportMissingFile(t *testing.T) {
	repo := newMemRepo()
	_, err := Import(context.Background(), filepath.Join(t.TempDir(), "absent.json"), taxonomy.Default(), repo)
	require.Error(t, err)
}

func TestImportUnparsableTimestamp(t *testing.T) {
	repo := newMemRepo()
	path := writeFile(t, `{
	  "skill_levels": {},
	  "sessions": [
	    {"timestamp": "last tuesday", "updates": {}}
	  ]
	}`)

	report, err := Import(context.Background(), path, taxonomy.Default(), repo)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SessionsImported)
	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0], "unparsable timestamp")
}
