package kmlgen

import (
	"strconv"

	"xml2kml/pkg/places"
)

// Placemark is one converted place as handed to a Sink.
type Placemark struct {
	Index       int
	ID          string
	HasID       bool
	Name        string
	Description string
	Lat         string
	Lon         string
}

// Coordinates renders the KML coordinate tuple lon,lat,0 from the verbatim
// attribute text.
func (p Placemark) Coordinates() string {
	return p.Lon + "," + p.Lat + ",0"
}

// Sink receives a document's folder name, its placemarks in order, and the
// end of the document.
type Sink interface {
	Begin(name string) error
	Add(p Placemark) error
	End() error
}

// Assembler turns complete place records into named placemarks. The running
// count lives here, not in the sink.
type Assembler struct {
	base   string
	unique bool
	sink   Sink
	count  int
}

func NewAssembler(sink Sink, base string, unique bool) *Assembler {
	return &Assembler{base: base, unique: unique, sink: sink}
}

// Emit writes r as the next placemark and returns it. Incomplete records
// are not written and return false.
func (a *Assembler) Emit(r places.Record) (Placemark, bool, error) {
	if !r.Complete() {
		return Placemark{}, false, nil
	}
	a.count++
	name := a.base
	if a.unique {
		name += strconv.Itoa(a.count)
	}
	p := Placemark{
		Index:       a.count,
		ID:          r.ID,
		HasID:       r.HasID,
		Name:        name,
		Description: r.Name,
		Lat:         r.Lat,
		Lon:         r.Lon,
	}
	if err := a.sink.Add(p); err != nil {
		return p, false, err
	}
	return p, true, nil
}

// Count is the number of placemarks emitted so far.
func (a *Assembler) Count() int {
	return a.count
}
