// Package placedb exports a conversion run to SQLite.
package placedb

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

const SCHEMA = `CREATE TABLE IF NOT EXISTS places (idx integer NOT NULL PRIMARY KEY, place_id text, name text, lat text, lon text, display_name text);
CREATE TABLE IF NOT EXISTS placeerrs (chunk integer NOT NULL PRIMARY KEY, place_id text, missing text)`

const IPLACE = `insert into places (idx, place_id, name, lat, lon, display_name) values ($1,$2,$3,$4,$5,$6)`
const IPERR = `insert into placeerrs (chunk, place_id, missing) values ($1,$2,$3)`

// DB holds one open transaction for the lifetime of a run.
type DB struct {
	db *sql.DB
	tx *sql.Tx
}

// Open recreates fn and starts the export transaction.
func Open(fn string) (*DB, error) {
	if err := os.Remove(fn); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("placedb: %w", err)
	}
	db, err := sql.Open("sqlite", fn)
	if err != nil {
		return nil, fmt.Errorf("placedb: open %s: %w", fn, err)
	}
	if _, err = db.Exec(SCHEMA); err != nil {
		db.Close()
		return nil, fmt.Errorf("placedb: schema: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("placedb: begin: %w", err)
	}
	return &DB{db: db, tx: tx}, nil
}

func (d *DB) WritePlace(idx int, placeID sql.NullString, name, lat, lon, displayName string) error {
	if _, err := d.tx.Exec(IPLACE, idx, placeID, name, lat, lon, displayName); err != nil {
		return fmt.Errorf("placedb: place %d: %w", idx, err)
	}
	return nil
}

// WriteSkipped records a place chunk that produced no placemark.
func (d *DB) WriteSkipped(chunk int, placeID sql.NullString, missing []string) error {
	if _, err := d.tx.Exec(IPERR, chunk, placeID, strings.Join(missing, ",")); err != nil {
		return fmt.Errorf("placedb: chunk %d: %w", chunk, err)
	}
	return nil
}

// Close commits when commit is set, otherwise rolls back, and closes the
// database either way.
func (d *DB) Close(commit bool) error {
	var err error
	if commit {
		err = d.tx.Commit()
	} else {
		err = d.tx.Rollback()
	}
	if cerr := d.db.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("placedb: close: %w", err)
	}
	return nil
}
