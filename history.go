package digitmap

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/digitmap/digits"
	_ "github.com/mattn/go-sqlite3"
)

// History is a database of the digit sources read and images generated.
type History struct {
	db *sql.DB
}

// Record is a single generated image along with its source.
type Record struct {
	Source string
	Digits int
	Result
}

// NewHistory opens or creates the history database in file
func NewHistory(file string) (*History, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, path TEXT NOT NULL, digits INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS render (id INTEGER PRIMARY KEY NOT NULL, source_id INTEGER NOT NULL, scheme TEXT NOT NULL, file TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, sha1 TEXT NOT NULL, FOREIGN KEY(source_id) REFERENCES source(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &History{
		db: db,
	}, nil
}

// Close closes the database
func (h *History) Close() error {
	return h.db.Close()
}

// AddSource records the digits read from path and returns its id. The same
// digits read again, even from a different path, return the existing id.
func (h *History) AddSource(path string, s digits.Sequence) (int64, error) {
	sha := fmt.Sprintf("%X", sha1.Sum([]byte(s.String())))

	var id int64
	switch err := h.db.QueryRow("SELECT id FROM source WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := h.db.Exec("INSERT INTO source (sha1, path, digits) VALUES (?, ?, ?)", sha, path, len(s))
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// AddRender records an image generated from source. An earlier record for
// the same file is replaced.
func (h *History) AddRender(source int64, r Result) error {
	if _, err := h.db.Exec("INSERT OR REPLACE INTO render (source_id, scheme, file, width, height, sha1) VALUES (?, ?, ?, ?, ?, ?)", source, r.Scheme, r.File, r.Width, r.Height, r.SHA1); err != nil {
		return err
	}
	return nil
}

// Renders returns every recorded image, oldest first
func (h *History) Renders() ([]Record, error) {
	rows, err := h.db.Query("SELECT s.path, s.digits, r.scheme, r.file, r.width, r.height, r.sha1 FROM render AS r JOIN source AS s ON r.source_id = s.id ORDER BY r.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Source, &r.Digits, &r.Scheme, &r.File, &r.Width, &r.Height, &r.SHA1); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
