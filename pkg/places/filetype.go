package places

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

const (
	IS_UNKNOWN = -1
	IS_EMPTY   = 0
	IS_SEARCH  = 1
	IS_XML     = 2
)

const sniffLen = 512

// EvinceFileType looks at the start of the stream without consuming it.
func EvinceFileType(fh *bufio.Reader) int {
	sig, err := fh.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return IS_UNKNOWN
	}
	sig = bytes.TrimLeft(sig, "\ufeff \t\r\n")
	switch {
	case len(sig) == 0:
		return IS_EMPTY
	case bytes.Contains(sig, []byte("<searchresults")), bytes.Contains(sig, []byte(Marker)):
		return IS_SEARCH
	case bytes.HasPrefix(sig, []byte("<?xml")), bytes.HasPrefix(sig, []byte("<")):
		return IS_XML
	}
	return IS_UNKNOWN
}
