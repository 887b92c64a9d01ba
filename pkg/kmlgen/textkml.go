package kmlgen

import (
	"fmt"
	"io"
)

const (
	kmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<kml xmlns="http://www.opengis.net/kml/2.2">` + "\n"
	kmlFooter = "</Folder></kml>\n"
)

// TextWriter streams the plain KML document one placemark per line. Names,
// descriptions and coordinates are copied verbatim: the input is already
// XML text, so no further escaping is applied.
type TextWriter struct {
	w io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (t *TextWriter) Begin(name string) error {
	_, err := fmt.Fprintf(t.w, "%s<Folder><name>%s</name>\n", kmlHeader, name)
	return err
}

func (t *TextWriter) Add(p Placemark) error {
	_, err := fmt.Fprintf(t.w,
		"<Placemark><name>%s</name><description>%s</description><Point><coordinates>%s</coordinates></Point></Placemark>\n",
		p.Name, p.Description, p.Coordinates())
	return err
}

func (t *TextWriter) End() error {
	_, err := io.WriteString(t.w, kmlFooter)
	return err
}
