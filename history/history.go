// Package history keeps a record of deleted network entries, with a
// snapshot of their registry values, so deletions can be undone.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/netprofile"
)

const schema = `
CREATE TABLE IF NOT EXISTS deletions (
	id          TEXT PRIMARY KEY,
	location    INTEGER NOT NULL,
	key         TEXT NOT NULL,
	description TEXT NOT NULL,
	value_data  TEXT,
	deleted_at  TEXT NOT NULL,
	restored_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_deletions_deleted_at ON deletions(deleted_at);
`

// Record is one deleted entry.
type Record struct {
	ID          string
	Location    netprofile.Location
	Key         string
	Description string
	Values      []netprofile.Value
	DeletedAt   time.Time
	RestoredAt  *time.Time
}

// Restorable reports whether the record holds a value snapshot.
func (r *Record) Restorable() bool {
	return len(r.Values) > 0
}

// Entry returns the deleted entry.
func (r *Record) Entry() netprofile.Entry {
	return netprofile.Entry{Description: r.Description, Key: r.Key, Location: r.Location}
}

// Restorer recreates a registry subkey. netprofile.Manager implements it.
type Restorer interface {
	Restore(loc netprofile.Location, key string, values []netprofile.Value) error
}

// Store persists deletion records in a SQLite database.
type Store struct {
	db    *sql.DB
	path  string
	limit int
}

// Open opens (creating when needed) the history database at path.
// At most limit records are kept; limit <= 0 keeps everything.
func Open(path string, limit int) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			common.LogDebug("History pragma %q failed: %v", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create history schema: %w", err)
	}

	return &Store{db: db, path: path, limit: limit}, nil
}

// OpenDefault opens the history database in the application data directory.
func OpenDefault(limit int) (*Store, error) {
	dir, err := common.GetDataDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(dir, common.HistoryFileName), limit)
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a deletion and prunes old records beyond the limit.
func (s *Store) Record(ctx context.Context, d netprofile.Deletion) error {
	var valueData sql.NullString
	if d.Values != nil {
		data, err := json.Marshal(d.Values)
		if err != nil {
			return fmt.Errorf("encoding values: %w", err)
		}
		valueData = sql.NullString{String: string(data), Valid: true}
	}

	deletedAt := d.DeletedAt
	if deletedAt.IsZero() {
		deletedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deletions (id, location, key, description, value_data, deleted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), int(d.Entry.Location), d.Entry.Key, d.Entry.Description,
		valueData, formatTime(deletedAt))
	if err != nil {
		return fmt.Errorf("inserting history record: %w", err)
	}

	if s.limit > 0 {
		if _, err := s.Prune(ctx, s.limit); err != nil {
			common.LogWarn("Failed to prune history: %v", err)
		}
	}
	return nil
}

// List returns all records, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, location, key, description, value_data, deleted_at, restored_at
		 FROM deletions ORDER BY deleted_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Get returns the record whose ID equals or starts with id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	id = stripWildcards(strings.ToLower(strings.TrimSpace(id)))
	if id == "" {
		return nil, common.ErrRecordNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, location, key, description, value_data, deleted_at, restored_at
		 FROM deletions WHERE id = ? OR id LIKE ? ORDER BY deleted_at DESC LIMIT 2`,
		id, id+"%")
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var found []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		if rec.ID == id {
			return rec, nil
		}
		found = append(found, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", common.ErrRecordNotFound, id)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%w: prefix %s matches several records", common.ErrRecordNotFound, id)
	}
}

// MarkRestored stamps the record as restored at t.
func (s *Store) MarkRestored(ctx context.Context, id string, t time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE deletions SET restored_at = ? WHERE id = ?`, formatTime(t), id)
	if err != nil {
		return fmt.Errorf("updating history record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", common.ErrRecordNotFound, id)
	}
	return nil
}

// Restore recreates the registry subkey of record id through r and marks
// the record restored.
func (s *Store) Restore(ctx context.Context, id string, r Restorer) (*Record, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.RestoredAt != nil {
		return rec, common.ErrAlreadyRestored
	}
	if !rec.Restorable() {
		return rec, common.ErrNotRestorable
	}

	if err := r.Restore(rec.Location, rec.Key, rec.Values); err != nil {
		return rec, err
	}

	now := time.Now()
	if err := s.MarkRestored(ctx, rec.ID, now); err != nil {
		return rec, err
	}
	rec.RestoredAt = &now
	return rec, nil
}

// Prune deletes all but the keep newest records.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM deletions WHERE id NOT IN (
			SELECT id FROM deletions ORDER BY deleted_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning history: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		common.LogDebug("Pruned %d history records", n)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec        Record
		loc        int
		valueData  sql.NullString
		deletedAt  string
		restoredAt sql.NullString
	)
	if err := row.Scan(&rec.ID, &loc, &rec.Key, &rec.Description, &valueData, &deletedAt, &restoredAt); err != nil {
		return nil, fmt.Errorf("reading history record: %w", err)
	}
	rec.Location = netprofile.Location(loc)

	if valueData.Valid {
		if err := json.Unmarshal([]byte(valueData.String), &rec.Values); err != nil {
			return nil, fmt.Errorf("decoding values of %s: %w", rec.ID, err)
		}
	}

	t, err := parseTime(deletedAt)
	if err != nil {
		return nil, err
	}
	rec.DeletedAt = t

	if restoredAt.Valid {
		t, err := parseTime(restoredAt.String)
		if err != nil {
			return nil, err
		}
		rec.RestoredAt = &t
	}
	return &rec, nil
}

// Times are stored as fixed-width UTC text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// stripWildcards drops LIKE wildcards; record IDs never contain them.
func stripWildcards(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
