// Package places recognises place records inside tag chunks and pulls their
// attributes out by literal text search.
package places

import (
	"strings"
)

// Marker opens a place element.
const Marker = "<place"

const (
	AttrID   = "place_id"
	AttrLat  = "lat"
	AttrLon  = "lon"
	AttrName = "display_name"
)

const NotFound = -1

var quoteChars = []byte{'"', '\''}

// Classify returns the offset of the first place marker in chunk, or NotFound.
func Classify(chunk string) int {
	return strings.Index(chunk, Marker)
}

// Attr finds name="value" (or name='value') in chunk at or after offset.
// The double quoted form is tried first; the single quoted form is only
// looked for when the double quoted pattern is absent. An empty value is
// valid.
func Attr(chunk string, offset int, name string) (string, bool) {
	if offset < 0 || offset > len(chunk) {
		return "", false
	}
	s := chunk[offset:]
	for _, q := range quoteChars {
		if v, found, ok := quoted(s, name, q); found {
			return v, ok
		}
	}
	return "", false
}

// quoted reports whether the pattern name=<q> exists in s and, if so,
// whether a closing q follows it.
func quoted(s, name string, q byte) (value string, found bool, ok bool) {
	pat := name + "=" + string(q)
	i := strings.Index(s, pat)
	if i < 0 {
		return "", false, false
	}
	s = s[i+len(pat):]
	j := strings.IndexByte(s, q)
	if j < 0 {
		return "", true, false
	}
	return s[:j], true, true
}

// Record is one place record attempt.
type Record struct {
	Offset  int
	ID      string
	Lat     string
	Lon     string
	Name    string
	HasID   bool
	Missing []string
}

// Complete reports whether lat, lon and display_name were all found.
func (r Record) Complete() bool {
	for _, m := range r.Missing {
		if m != AttrID {
			return false
		}
	}
	return true
}

// Extract looks up every attribute of the place starting at offset. All
// lookups are attempted even after one fails; Missing lists the failures in
// lookup order (place_id, lat, lon, display_name). place_id is only looked
// up when withID is set and never makes a record incomplete.
func Extract(chunk string, offset int, withID bool) Record {
	r := Record{Offset: offset}
	get := func(name string) string {
		v, ok := Attr(chunk, offset, name)
		if !ok {
			r.Missing = append(r.Missing, name)
		}
		return v
	}
	if withID {
		r.ID = get(AttrID)
		r.HasID = len(r.Missing) == 0
	}
	r.Lat = get(AttrLat)
	r.Lon = get(AttrLon)
	r.Name = get(AttrName)
	return r
}

// Parse classifies chunk and, for a place chunk, extracts its record.
func Parse(chunk string, withID bool) (Record, bool) {
	off := Classify(chunk)
	if off == NotFound {
		return Record{Offset: NotFound}, false
	}
	return Extract(chunk, off, withID), true
}
