package store

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/morrilet/GMTK-2022/internal/catalog"
	"github.com/morrilet/GMTK-2022/internal/header"
	"github.com/morrilet/GMTK-2022/wwise"
)

var ErrNoSnapshot = errors.New("no snapshot recorded")

type Snapshot struct {
	ID        string
	Source    string
	Digest    string
	CreatedAt time.Time
	Entries   int
}

// Digest is the blake2b-256 of the canonical header text of t.
func Digest(t *catalog.Table) string {
	sum := blake2b.Sum256([]byte(header.String(t)))
	return hex.EncodeToString(sum[:])
}

// SaveSnapshot records t for source. When the latest snapshot of source has
// the same digest nothing is written and that snapshot is returned.
func SaveSnapshot(db *sql.DB, source string, t *catalog.Table) (*Snapshot, error) {
	digest := Digest(t)

	latest, err := latestSnapshot(db, source)
	if err != nil && !errors.Is(err, ErrNoSnapshot) {
		return nil, err
	}
	if latest != nil && latest.Digest == digest {
		return latest, nil
	}

	snap := &Snapshot{
		ID:        uuid.New().String(),
		Source:    source,
		Digest:    digest,
		CreatedAt: time.Now().UTC(),
		Entries:   t.Len(),
	}

	tx, tErr := db.Begin()
	if tErr != nil {
		return nil, tErr
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO snapshots (id, source, digest, created_at) VALUES (?, ?, ?, ?)",
		snap.ID, snap.Source, snap.Digest, snap.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO snapshot_entries (snapshot_id, category, position, name, value) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return nil, fmt.Errorf("error preparing entry insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range wwise.Categories() {
		for i, e := range t.Entries(c) {
			if _, err := stmt.Exec(snap.ID, int(c), i, e.Name, int64(e.ID)); err != nil {
				return nil, fmt.Errorf("error inserting entry %s %s: %w", c, e.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}

// LatestSnapshot returns the newest snapshot of source with its table.
func LatestSnapshot(db *sql.DB, source string) (*Snapshot, *catalog.Table, error) {
	snap, err := latestSnapshot(db, source)
	if err != nil {
		return nil, nil, err
	}
	t, err := loadEntries(db, snap.ID)
	if err != nil {
		return nil, nil, err
	}
	return snap, t, nil
}

// ListSnapshots returns the snapshots of source, newest first.
func ListSnapshots(db *sql.DB, source string) ([]Snapshot, error) {
	rows, err := db.Query(snapshotQuery+" WHERE s.source = ? GROUP BY s.seq ORDER BY s.seq DESC", source)
	if err != nil {
		return nil, fmt.Errorf("error querying snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *snap)
	}
	return out, rows.Err()
}

const snapshotQuery = `SELECT s.id, s.source, s.digest, s.created_at, COUNT(e.name)
FROM snapshots s LEFT JOIN snapshot_entries e ON e.snapshot_id = s.id`

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var snap Snapshot
	var created int64
	if err := row.Scan(&snap.ID, &snap.Source, &snap.Digest, &created, &snap.Entries); err != nil {
		return nil, err
	}
	snap.CreatedAt = time.Unix(0, created).UTC()
	return &snap, nil
}

func latestSnapshot(db *sql.DB, source string) (*Snapshot, error) {
	row := db.QueryRow(snapshotQuery+" WHERE s.source = ? GROUP BY s.seq ORDER BY s.seq DESC LIMIT 1", source)
	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w for %s", ErrNoSnapshot, source)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying snapshot: %w", err)
	}
	return snap, nil
}

func loadEntries(db *sql.DB, snapshotID string) (*catalog.Table, error) {
	rows, err := db.Query(
		"SELECT category, name, value FROM snapshot_entries WHERE snapshot_id = ? ORDER BY category, position",
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying entries: %w", err)
	}
	defer rows.Close()

	t := catalog.New()
	for rows.Next() {
		var (
			c     int
			name  string
			value int64
		)
		if err := rows.Scan(&c, &name, &value); err != nil {
			return nil, err
		}
		if err := t.Add(wwise.Category(c), name, wwise.UniqueID(value)); err != nil {
			return nil, fmt.Errorf("corrupt snapshot %s: %w", snapshotID, err)
		}
	}
	return t, rows.Err()
}
