// Package convert runs the single scan from a place-search result to a KML
// document.
package convert

import (
	"database/sql"
	"fmt"
	"io"

	"xml2kml/pkg/idlist"
	"xml2kml/pkg/kmlgen"
	"xml2kml/pkg/places"
	"xml2kml/pkg/tagchunk"
)

// Recorder receives every place record of a run, converted or not.
type Recorder interface {
	WritePlace(idx int, placeID sql.NullString, name, lat, lon, displayName string) error
	WriteSkipped(chunk int, placeID sql.NullString, missing []string) error
}

type Result struct {
	Chunks    int
	Places    int
	Converted int
	Skipped   int
	IDs       []string
	Output    string
	Size      int64
}

// Converter holds the settings and side channels for one conversion. Out
// receives progress (only when Verbose), Errs per-record diagnostics. IDs
// and Rec may be nil.
type Converter struct {
	Name    string
	Unique  bool
	Verbose bool
	Out     io.Writer
	Errs    io.Writer
	IDs     *idlist.Collector
	Rec     Recorder
}

func (c *Converter) logf(format string, a ...any) {
	if c.Verbose && c.Out != nil {
		fmt.Fprintf(c.Out, format, a...)
	}
}

func (c *Converter) diag(format string, a ...any) {
	if c.Errs != nil {
		fmt.Fprintf(c.Errs, format, a...)
	}
}

// Convert scans sc to the end, writing one placemark per complete place
// record to sink. Per-record problems are reported on Errs and never
// returned; errors come only from reading or writing.
func (c *Converter) Convert(sc tagchunk.Scanner, sink kmlgen.Sink) (Result, error) {
	var res Result
	if err := sink.Begin(c.Name); err != nil {
		return res, fmt.Errorf("write: %w", err)
	}
	asm := kmlgen.NewAssembler(sink, c.Name, c.Unique)

	for sc.Next() {
		res.Chunks++
		c.logf("Found xml tag\n")
		rec, ok := places.Parse(sc.Chunk(), c.IDs.Enabled())
		if !ok {
			c.logf("Not a %s\n", places.Marker)
			continue
		}
		res.Places++
		for _, m := range rec.Missing {
			c.diag("Truncated input! %s not found in place %d\n", m, res.Places)
		}
		c.IDs.Add(rec.ID)

		if !rec.Complete() {
			res.Skipped++
			if c.Rec != nil {
				if err := c.Rec.WriteSkipped(res.Chunks, placeID(rec.ID, rec.HasID), rec.Missing); err != nil {
					return res, err
				}
			}
			continue
		}

		c.logf("Converting search result number %d\n", asm.Count()+1)
		p, _, err := asm.Emit(rec)
		if err != nil {
			return res, fmt.Errorf("write: %w", err)
		}
		if c.Rec != nil {
			if err := c.Rec.WritePlace(p.Index, placeID(p.ID, p.HasID), p.Name, p.Lat, p.Lon, p.Description); err != nil {
				return res, err
			}
		}
	}
	res.Converted = asm.Count()
	res.IDs = c.IDs.IDs()

	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read: %w", err)
	}
	if err := sink.End(); err != nil {
		return res, fmt.Errorf("write: %w", err)
	}
	if err := c.IDs.Err(); err != nil {
		return res, fmt.Errorf("write ids: %w", err)
	}
	return res, nil
}

// placeID is NULL unless place_id was looked up and found.
func placeID(id string, ok bool) sql.NullString {
	return sql.NullString{String: id, Valid: ok}
}
