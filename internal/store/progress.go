package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/levelup/ent"
	"github.com/abhisek/levelup/ent/session"
	"github.com/abhisek/levelup/ent/skill"
	"github.com/abhisek/levelup/internal/taxonomy"
)

type progressRepo struct {
	client *ent.Client
	tax    taxonomy.Taxonomy
}

func (r *progressRepo) SkillLevels(ctx context.Context) (map[taxonomy.Key]int, []IntegrityIssue, error) {
	rows, err := r.client.Skill.Query().All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query skill levels: %w", err)
	}

	stored := make(map[taxonomy.Key]int, len(rows))
	for _, row := range rows {
		stored[taxonomy.Key{Category: taxonomy.Category(row.Category), Skill: row.Name}] = row.Level
	}

	levels := make(map[taxonomy.Key]int, r.tax.TotalSkills())
	var issues []IntegrityIssue
	for _, k := range r.tax.Keys() {
		lvl, ok := stored[k]
		if !ok {
			// Missing rows read as the default level.
			levels[k] = 1
			continue
		}
		if lvl < 1 || lvl > 100 {
			issues = append(issues, IntegrityIssue{Key: k, Level: lvl})
			levels[k] = 1
			continue
		}
		levels[k] = lvl
	}
	return levels, issues, nil
}

func (r *progressRepo) CommitSession(ctx context.Context, rec *SessionRecord) error {
	for _, ch := range rec.Changes {
		if ch.NewLevel < 1 || ch.NewLevel > 100 {
			return &IntegrityError{Key: ch.Key, Level: ch.NewLevel}
		}
	}

	if rec.UID == "" {
		rec.UID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := commitSessionTx(ctx, tx, rec); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func commitSessionTx(ctx context.Context, tx *ent.Tx, rec *SessionRecord) error {
	sess, err := tx.Session.Create().
		SetUID(rec.UID).
		SetTimestamp(rec.Timestamp).
		SetKind(session.Kind(rec.Kind)).
		SetTotalGain(rec.TotalGain).
		SetNote(rec.Note).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if len(rec.Changes) > 0 {
		creates := make([]*ent.SessionUpdateCreate, 0, len(rec.Changes))
		for _, ch := range rec.Changes {
			creates = append(creates, tx.SessionUpdate.Create().
				SetSession(sess).
				SetCategory(string(ch.Key.Category)).
				SetSkillName(ch.Key.Skill).
				SetOldLevel(ch.OldLevel).
				SetNewLevel(ch.NewLevel).
				SetGain(ch.Gain()))
		}
		if _, err := tx.SessionUpdate.CreateBulk(creates...).Save(ctx); err != nil {
			return fmt.Errorf("save session updates: %w", err)
		}
	}

	for _, ch := range rec.Changes {
		// A zero-gain entry in an update session asserts the current
		// level; there is nothing to write. Assessment entries always
		// overwrite because their old level is the fixed baseline,
		// not the stored value.
		if rec.Kind == KindUpdate && ch.Gain() == 0 {
			continue
		}
		n, err := tx.Skill.Update().
			Where(skill.CategoryEQ(string(ch.Key.Category)), skill.NameEQ(ch.Key.Skill)).
			SetLevel(ch.NewLevel).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update level of %s: %w", ch.Key, err)
		}
		if n == 0 {
			return fmt.Errorf("update level of %s: no skill row", ch.Key)
		}
	}
	return nil
}

func (r *progressRepo) Sessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	q := r.client.Session.Query().WithUpdates()

	if opts.Ascending {
		q = q.Order(ent.Asc(session.FieldTimestamp), ent.Asc(session.FieldID))
	} else {
		q = q.Order(ent.Desc(session.FieldTimestamp), ent.Desc(session.FieldID))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		rec := SessionRecord{
			UID:       row.UID,
			Timestamp: row.Timestamp,
			Kind:      SessionKind(row.Kind),
			TotalGain: row.TotalGain,
			Note:      row.Note,
		}
		for _, u := range row.Edges.Updates {
			rec.Changes = append(rec.Changes, SkillChange{
				Key:      taxonomy.Key{Category: taxonomy.Category(u.Category), Skill: u.SkillName},
				OldLevel: u.OldLevel,
				NewLevel: u.NewLevel,
			})
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *progressRepo) IsFirstRun(ctx context.Context) (bool, error) {
	progressed, err := r.client.Skill.Query().Where(skill.LevelGT(1)).Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("probe skill progress: %w", err)
	}
	if progressed {
		return false, nil
	}

	hasSessions, err := r.client.Session.Query().Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("probe sessions: %w", err)
	}
	return !hasSessions, nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	err = func() error {
		if _, err := tx.SessionUpdate.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete session updates: %w", err)
		}
		if _, err := tx.Session.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if _, err := tx.Skill.Update().SetLevel(1).Save(ctx); err != nil {
			return fmt.Errorf("reset skill levels: %w", err)
		}
		return nil
	}()
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

func (r *progressRepo) RestoreLevels(ctx context.Context, levels map[taxonomy.Key]int) error {
	for k, lvl := range levels {
		if lvl < 1 || lvl > 100 {
			return &IntegrityError{Key: k, Level: lvl}
		}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	err = func() error {
		for _, k := range r.tax.Keys() {
			lvl, ok := levels[k]
			if !ok {
				continue
			}
			if _, err := tx.Skill.Update().
				Where(skill.CategoryEQ(string(k.Category)), skill.NameEQ(k.Skill)).
				SetLevel(lvl).
				Save(ctx); err != nil {
				return fmt.Errorf("restore level of %s: %w", k, err)
			}
		}
		return nil
	}()
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit restore: %w", err)
	}
	return nil
}
