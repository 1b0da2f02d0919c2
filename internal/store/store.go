// Package store implements the Quest Store: durable, versioned storage for
// quests and their map locations over a single embedded SQLite database.
//
// Every quest mutation appends an immutable version snapshot in the same
// transaction as the mutation itself, so the quest row and its history can
// never diverge. The version log is append-only and grows without bound;
// there is no compaction or retention policy.
//
// A Store owns its *sql.DB exclusively and serializes every operation with
// one mutex, so callers on any goroutine observe fully-committed state only.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/questmaster/internal/common"
	"github.com/dmitrijs2005/questmaster/internal/dbx"
	"github.com/dmitrijs2005/questmaster/internal/filex"
	"github.com/dmitrijs2005/questmaster/internal/logging"
	"github.com/dmitrijs2005/questmaster/internal/models"
	"github.com/dmitrijs2005/questmaster/internal/store/migrations"
	"github.com/pressly/goose/v3"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// questFieldOrder fixes the column order for dynamic UPDATE statements so
// the generated SQL is deterministic regardless of map iteration order.
var questFieldOrder = []string{"title", "difficulty", "reward", "description", "deadline"}

// Store is the single owner of the quest database handle. All operations
// lock s.mu for their full duration; mutations additionally run inside one
// transaction together with their version snapshot.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	logger logging.Logger
}

// Open creates the parent directory of path if needed, opens (or creates)
// the SQLite database there and applies the embedded schema migrations.
// Opening an already-initialized database is safe; goose tracks applied
// versions and does nothing the second time.
func Open(ctx context.Context, path string, logger logging.Logger) (*Store, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("failed to prepare database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: the Store serializes access anyway, and a single
	// connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info(ctx, "quest store ready", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// NewWithDB wraps an already-opened database without running migrations.
// Intended for tests that prepare their own schema.
func NewWithDB(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// CreateQuest inserts a new quest and, in the same transaction, appends the
// first version snapshot. Returns the assigned quest id. A title collision
// fails with common.ErrDuplicateTitle, an unknown difficulty with
// common.ErrConstraintViolation.
func (s *Store) CreateQuest(ctx context.Context, title string, difficulty models.Difficulty, reward int, description string, deadline string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO quests (title, difficulty, reward, description, deadline)
			VALUES (?, ?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, query, title, difficulty, reward, description, nullIfEmpty(deadline))
		if err != nil {
			return fmt.Errorf("failed to insert quest: %w", mapSQLiteError(err))
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}
		return insertVersion(ctx, tx, id, title, difficulty, reward, description)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateQuest applies the recognized entries of fields to the quest and
// appends one version snapshot of the post-update state, all in one
// transaction. Unrecognized field names are ignored; if nothing recognized
// remains the call is a no-op. A nonexistent quest id is also a no-op: the
// UPDATE matches no rows, the read-back finds nothing and no snapshot is
// written.
func (s *Store) UpdateQuest(ctx context.Context, questID int64, fields map[string]any) error {
	setParts := make([]string, 0, len(questFieldOrder))
	values := make([]any, 0, len(questFieldOrder)+1)
	for _, name := range questFieldOrder {
		if v, ok := fields[name]; ok {
			setParts = append(setParts, name+" = ?")
			values = append(values, v)
		}
	}
	if len(setParts) == 0 {
		return nil
	}
	values = append(values, questID)

	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := "UPDATE quests SET " + strings.Join(setParts, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, values...); err != nil {
			return fmt.Errorf("failed to update quest: %w", mapSQLiteError(err))
		}

		// Snapshot what is actually in the row now, not what the caller sent.
		row := tx.QueryRowContext(ctx,
			`SELECT title, difficulty, reward, description FROM quests WHERE id = ?`, questID)
		var (
			title       string
			difficulty  models.Difficulty
			reward      int
			description string
		)
		if err := row.Scan(&title, &difficulty, &reward, &description); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to read back quest: %w", err)
		}
		return insertVersion(ctx, tx, questID, title, difficulty, reward, description)
	})
}

// AutosaveField persists a single field change, producing its own version
// snapshot. Unknown field names are a silent no-op, so UI callers can wire
// it to raw input events without filtering first.
func (s *Store) AutosaveField(ctx context.Context, questID int64, field string, value any) error {
	if _, ok := models.AllowedQuestFields[field]; !ok {
		return nil
	}
	return s.UpdateQuest(ctx, questID, map[string]any{field: value})
}

// GetQuest returns the quest with the given id, or nil when absent.
func (s *Store) GetQuest(ctx context.Context, questID int64) (*models.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, difficulty, reward, description, deadline, created_at
		 FROM quests WHERE id = ?`, questID)
	return scanQuest(row)
}

// FindByTitle returns the quest with exactly the given title, or nil.
func (s *Store) FindByTitle(ctx context.Context, title string) (*models.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, difficulty, reward, description, deadline, created_at
		 FROM quests WHERE title = ?`, title)
	return scanQuest(row)
}

// GetAllQuests lists every quest, newest first.
func (s *Store) GetAllQuests(ctx context.Context) ([]models.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, difficulty, reward, description, deadline, created_at
		 FROM quests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select quests: %w", err)
	}
	defer rows.Close()

	var result []models.Quest
	for rows.Next() {
		q, err := scanQuestColumns(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetVersions returns the quest's version snapshots in append order.
func (s *Store) GetVersions(ctx context.Context, questID int64) ([]models.QuestVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, quest_id, title, difficulty, reward, description, created_at
		 FROM quest_versions WHERE quest_id = ? ORDER BY id ASC`, questID)
	if err != nil {
		return nil, fmt.Errorf("failed to select versions: %w", err)
	}
	defer rows.Close()

	var result []models.QuestVersion
	for rows.Next() {
		var (
			v         models.QuestVersion
			createdAt string
		)
		if err := rows.Scan(&v.ID, &v.QuestID, &v.Title, &v.Difficulty, &v.Reward, &v.Description, &createdAt); err != nil {
			return nil, err
		}
		v.CreatedAt, err = parseTimestamp(createdAt)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountVersions returns the number of snapshots recorded for the quest.
func (s *Store) CountVersions(ctx context.Context, questID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM quest_versions WHERE quest_id = ?`, questID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count versions: %w", err)
	}
	return n, nil
}

// AddLocation appends one map annotation for the quest. The quest id is not
// checked for existence; orphan annotations are tolerated.
func (s *Store) AddLocation(ctx context.Context, questID int64, x, y float64, typ models.LocationType, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `INSERT INTO quest_locations (quest_id, x, y, type, label)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, questID, x, y, typ, nullIfEmpty(label)); err != nil {
		return fmt.Errorf("failed to insert location: %w", mapSQLiteError(err))
	}
	return nil
}

// DeleteLastLocation removes the most recently added annotation of the
// quest ("undo last"). A quest with no annotations is a no-op.
func (s *Store) DeleteLastLocation(ctx context.Context, questID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `DELETE FROM quest_locations
		WHERE id = (
			SELECT id FROM quest_locations WHERE quest_id = ? ORDER BY id DESC LIMIT 1
		)`
	if _, err := s.db.ExecContext(ctx, query, questID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// GetLocations returns the quest's annotations in insertion order, so a map
// can be replayed point by point.
func (s *Store) GetLocations(ctx context.Context, questID int64) ([]models.QuestLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, quest_id, x, y, type, label FROM quest_locations
		 WHERE quest_id = ? ORDER BY id ASC`, questID)
	if err != nil {
		return nil, fmt.Errorf("failed to select locations: %w", err)
	}
	defer rows.Close()

	var result []models.QuestLocation
	for rows.Next() {
		var (
			loc   models.QuestLocation
			label sql.NullString
		)
		if err := rows.Scan(&loc.ID, &loc.QuestID, &loc.X, &loc.Y, &loc.Type, &label); err != nil {
			return nil, err
		}
		loc.Label = label.String
		result = append(result, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Close releases the database handle. Safe to call more than once; close
// errors are logged and swallowed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		s.logger.Warn(context.Background(), "error closing quest database", "error", err)
	}
	s.db = nil
	return nil
}

// insertVersion appends one snapshot row. Must run inside the same
// transaction as the mutation it records.
func insertVersion(ctx context.Context, tx dbx.DBTX, questID int64, title string, difficulty models.Difficulty, reward int, description string) error {
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	query := `INSERT INTO quest_versions (quest_id, title, difficulty, reward, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, questID, title, difficulty, reward, description, createdAt); err != nil {
		return fmt.Errorf("failed to insert version snapshot: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuest(row *sql.Row) (*models.Quest, error) {
	q, err := scanQuestColumns(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return q, nil
}

func scanQuestColumns(row rowScanner) (*models.Quest, error) {
	var (
		q         models.Quest
		deadline  sql.NullString
		createdAt string
	)
	if err := row.Scan(&q.ID, &q.Title, &q.Difficulty, &q.Reward, &q.Description, &deadline, &createdAt); err != nil {
		return nil, err
	}
	q.Deadline = deadline.String
	var err error
	q.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// parseTimestamp reads the RFC 3339 strings the schema and the store write.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// mapSQLiteError folds SQLite constraint failures onto the shared sentinel
// errors so callers can match them with errors.Is. Other errors pass through.
func mapSQLiteError(err error) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", common.ErrDuplicateTitle, err)
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%w: %v", common.ErrConstraintViolation, err)
		}
	}
	return err
}
