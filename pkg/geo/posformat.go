package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// hemisphere letters and degree width for one axis
type axis struct {
	pos, neg byte
	width    int
}

var (
	latAxis = axis{'N', 'S', 2}
	lonAxis = axis{'E', 'W', 3}
)

// PositionText renders a latitude / longitude pair given as text, in decimal
// degrees or as DD:MM:SS.sH. Values that are not numbers are shown as they
// were given.
func PositionText(lat, lon string, dms bool) string {
	fl, err1 := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	fn, err2 := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err1 != nil || err2 != nil {
		return lat + " " + lon
	}
	if !dms {
		return fmt.Sprintf("%.6f %.6f", fl, fn)
	}
	return latAxis.dms(fl) + " " + lonAxis.dms(fn)
}

// dms rounds to a tenth of an arc second before splitting, so no field can
// reach 60.
func (a axis) dms(v float64) string {
	h := a.pos
	if v < 0 {
		h = a.neg
	}
	tenths := int64(math.Round(math.Abs(v) * 36000))
	deg := tenths / 36000
	mins := tenths % 36000 / 600
	sec := float64(tenths%600) / 10
	return fmt.Sprintf("%0*d:%02d:%04.1f%c", a.width, deg, mins, sec, h)
}
