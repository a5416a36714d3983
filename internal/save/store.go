package save

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// ErrNotFound is returned when a slot does not exist.
var ErrNotFound = errors.New("save: slot not found")

// ErrVersionTooNew is returned when a stored document was written by a
// newer build.
var ErrVersionTooNew = errors.New("save: document version not supported")

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot         TEXT PRIMARY KEY,
	save_version INTEGER NOT NULL,
	saved_at     TEXT NOT NULL,
	data         BLOB NOT NULL
);`

// Store keeps save documents in a SQLite database, one row per slot.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open creates or opens the store at the given path, creating parent
// directories as needed.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("save: creating directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("save: opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: initializing schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Save writes a document to a slot, replacing any previous content. The
// document is stamped with the current version and time.
func (s *Store) Save(slot string, doc Document) error {
	doc.SaveVersion = CurrentVersion
	if doc.SavedAt == "" {
		doc.SavedAt = time.Now().Format(time.RFC3339)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("save: encoding document: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO saves (slot, save_version, saved_at, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET save_version=excluded.save_version, saved_at=excluded.saved_at, data=excluded.data`,
		slot, doc.SaveVersion, doc.SavedAt, data,
	)
	if err != nil {
		return fmt.Errorf("save: writing slot %q: %w", slot, err)
	}
	s.log.Info().Str("slot", slot).Msg("game saved")
	return nil
}

// Load reads and decodes a slot. Documents newer than CurrentVersion are
// rejected.
func (s *Store) Load(slot string) (Document, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM saves WHERE slot = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("save: reading slot %q: %w", slot, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("save: decoding slot %q: %w", slot, err)
	}
	if doc.SaveVersion > CurrentVersion {
		return Document{}, fmt.Errorf("%w: %d > %d", ErrVersionTooNew, doc.SaveVersion, CurrentVersion)
	}
	return doc, nil
}

// List returns browser entries for all slots, newest first. Rows whose
// document no longer decodes become placeholder entries instead of
// aborting the listing.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(`SELECT slot, save_version, saved_at, data FROM saves ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("save: listing slots: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		var data []byte
		if err := rows.Scan(&info.Slot, &info.SaveVersion, &info.SavedAt, &data); err != nil {
			return nil, fmt.Errorf("save: scanning slot row: %w", err)
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			info.Corrupt = true
			info.PlayerName = "(corrupt save)"
			s.log.Warn().Str("slot", info.Slot).Err(err).Msg("corrupt save metadata")
		} else {
			info.PlayerName = doc.Player.Name
			info.NetWorthDay = doc.Player.CurrentDay
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a slot.
func (s *Store) Delete(slot string) error {
	res, err := s.db.Exec(`DELETE FROM saves WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("save: deleting slot %q: %w", slot, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
