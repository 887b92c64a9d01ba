package kmlgen

import (
	"encoding/xml"
	"io"

	kml "github.com/twpayne/go-kml"
	kmz "github.com/twpayne/go-kmz"
	"golang.org/x/net/html"

	"xml2kml/pkg/geo"
)

// StyledWriter builds the document with go-kml and writes it, indented, when
// End is called. Placemarks are coloured along a gradient in scan order.
type StyledWriter struct {
	w        io.Writer
	kmz      bool
	dms      bool
	gradient int
	name     string
	marks    []Placemark
}

func NewStyledWriter(w io.Writer, asKMZ bool, dms bool, gradient string) *StyledWriter {
	return &StyledWriter{w: w, kmz: asKMZ, dms: dms, gradient: GradientIndex(gradient)}
}

func (s *StyledWriter) Begin(name string) error {
	s.name = name
	return nil
}

func (s *StyledWriter) Add(p Placemark) error {
	s.marks = append(s.marks, p)
	return nil
}

func (s *StyledWriter) End() error {
	d := kml.Folder(kml.Name(s.name)).Add(kml.Open(true))
	d.Add(placeStyles(s.gradient)...)
	for _, p := range s.marks {
		d.Add(s.placemark(p))
	}
	if s.kmz {
		return kmz.NewKMZ(d).WriteIndent(s.w, "", "  ")
	}
	return kml.KML(d).WriteIndent(s.w, "", "  ")
}

func (s *StyledWriter) placemark(p Placemark) kml.Element {
	e := kml.ExtendedData(
		kml.Data(kml.Name("Position"), kml.Value(geo.PositionText(p.Lat, p.Lon, s.dms))),
	)
	if p.HasID {
		e.Add(kml.Data(kml.Name("place_id"), kml.Value(p.ID)))
	}
	// only the description is XML text from the input
	return kml.Placemark(
		kml.Name(p.Name),
		kml.Description(html.UnescapeString(p.Description)),
		kml.StyleURL("#"+gradStyleID(gradStep(p.Index, len(s.marks)))),
		kml.Point(rawCoordinates(p.Coordinates())),
		e,
	)
}

// rawCoordinates keeps the coordinate text exactly as it was read; go-kml's
// Coordinates would reformat it through float64.
func rawCoordinates(value string) *kml.SimpleElement {
	se := &kml.SimpleElement{StartElement: xml.StartElement{Name: xml.Name{Local: "coordinates"}}}
	se.SetString(value)
	return se
}
