package placedb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "places.db")
	d, err := Open(fn)
	require.NoError(t, err)
	require.NoError(t, d.WritePlace(1, id("55"), "Spot1", "50.1", "6.9", "Park"))
	require.NoError(t, d.WritePlace(2, sql.NullString{}, "Spot2", "50.2", "7.0", "Zoo"))
	require.NoError(t, d.WriteSkipped(4, id("57"), []string{"lat", "display_name"}))
	require.NoError(t, d.Close(true))

	db, err := sql.Open("sqlite", fn)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`select count(*) from places`).Scan(&n))
	assert.Equal(t, 2, n)

	var lon, desc string
	require.NoError(t, db.QueryRow(`select lon, display_name from places where idx = 1`).Scan(&lon, &desc))
	assert.Equal(t, "6.9", lon)
	assert.Equal(t, "Park", desc)

	var missing string
	require.NoError(t, db.QueryRow(`select missing from placeerrs where chunk = 4`).Scan(&missing))
	assert.Equal(t, "lat,display_name", missing)

	var pid sql.NullString
	require.NoError(t, db.QueryRow(`select place_id from places where idx = 2`).Scan(&pid))
	assert.False(t, pid.Valid, "unknown place_id is stored as NULL")
	require.NoError(t, db.QueryRow(`select place_id from places where idx = 1`).Scan(&pid))
	assert.Equal(t, sql.NullString{String: "55", Valid: true}, pid)
}

func id(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestOpenReplacesExisting(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "places.db")
	d, err := Open(fn)
	require.NoError(t, err)
	require.NoError(t, d.WritePlace(1, id("1"), "a", "1", "2", "x"))
	require.NoError(t, d.Close(true))

	d, err = Open(fn)
	require.NoError(t, err)
	require.NoError(t, d.Close(true))

	db, err := sql.Open("sqlite", fn)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(`select count(*) from places`).Scan(&n))
	assert.Zero(t, n)
}

func TestRollback(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "places.db")
	d, err := Open(fn)
	require.NoError(t, err)
	require.NoError(t, d.WritePlace(1, id("1"), "a", "1", "2", "x"))
	require.NoError(t, d.Close(false))

	db, err := sql.Open("sqlite", fn)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(`select count(*) from places`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "places.db"))
	assert.Error(t, err)
}
