// Package tagchunk splits a tag-delimited text stream into "tag chunks": the
// text between successive '>' characters. It is a stand-in for a structural
// XML reader; callers only see the Scanner interface.
package tagchunk

import (
	"bufio"
	"errors"
	"io"
)

const Delim = '>'

// Scanner yields chunks in input order, one per call to Next.
type Scanner interface {
	Next() bool
	Chunk() string
	Err() error
}

// DelimScanner reads chunks of any length; nothing is capped.
type DelimScanner struct {
	r     *bufio.Reader
	chunk string
	err   error
	done  bool
}

// NewScanner returns a Scanner over r. Trailing text after the last '>' is
// never returned as a chunk.
func NewScanner(r io.Reader) *DelimScanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &DelimScanner{r: br}
}

func (s *DelimScanner) Next() bool {
	s.chunk = ""
	if s.done {
		return false
	}
	line, err := s.r.ReadString(Delim)
	if err != nil {
		// an unterminated tail is dropped
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return false
	}
	s.chunk = line[:len(line)-1]
	return true
}

func (s *DelimScanner) Chunk() string {
	return s.chunk
}

func (s *DelimScanner) Err() error {
	return s.err
}
