package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/levelup/ent"
	"github.com/abhisek/levelup/internal/taxonomy"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to the progress repository.
type Store struct {
	db     *sql.DB
	client *ent.Client
	tax    taxonomy.Taxonomy
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas, runs auto-migration, and seeds one skill
// row per taxonomy entry (default level 1) if the rows are missing.
func Open(dsn string, tax taxonomy.Taxonomy) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s := &Store{db: db, client: client, tax: tax}
	if err := s.seedSkills(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("seed skills: %w", err)
	}
	return s, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// ProgressRepo returns a ProgressRepo backed by this store.
func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{client: s.client, tax: s.tax}
}

// seedSkills inserts a row for each taxonomy key that has none yet.
// Existing rows (and their levels) are left untouched.
func (s *Store) seedSkills(ctx context.Context) error {
	existing, err := s.client.Skill.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("query skills: %w", err)
	}

	have := make(map[taxonomy.Key]bool, len(existing))
	for _, row := range existing {
		have[taxonomy.Key{Category: taxonomy.Category(row.Category), Skill: row.Name}] = true
	}

	var creates []*ent.SkillCreate
	for _, k := range s.tax.Keys() {
		if have[k] {
			continue
		}
		creates = append(creates, s.client.Skill.Create().
			SetCategory(string(k.Category)).
			SetName(k.Skill))
	}
	if len(creates) == 0 {
		return nil
	}

	if _, err := s.client.Skill.CreateBulk(creates...).Save(ctx); err != nil {
		return fmt.Errorf("create skill rows: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEVELUP_DB environment variable
// 2. $XDG_DATA_HOME/levelup/levelup.db
// 3. ~/.local/share/levelup/levelup.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEVELUP_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "levelup", "levelup.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
