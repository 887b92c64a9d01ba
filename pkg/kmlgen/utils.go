package kmlgen

import (
	"io"
	"path/filepath"
	"strings"
)

func IsKMZ(fn string) bool {
	return strings.EqualFold(filepath.Ext(fn), ".kmz")
}

// GenKmlName gives outfn the .kml or .kmz extension, replacing any other.
func GenKmlName(outfn string, asKMZ bool) string {
	ext := filepath.Ext(outfn)
	if len(ext) < len(filepath.Base(outfn)) {
		outfn = outfn[0 : len(outfn)-len(ext)]
	}
	if asKMZ {
		return outfn + ".kmz"
	}
	return outfn + ".kml"
}

// NewSink picks the writer for the output: the plain streaming text unless
// styling or KMZ packaging is asked for.
func NewSink(w io.Writer, outfn string, styled, asKMZ, dms bool, gradient string) Sink {
	asKMZ = asKMZ || IsKMZ(outfn)
	if styled || asKMZ {
		return NewStyledWriter(w, asKMZ, dms, gradient)
	}
	return NewTextWriter(w)
}
