// Package idlist collects place identifiers into a comma terminated list.
package idlist

import (
	"io"
	"strings"
)

// Collector writes each identifier followed by a comma as it is added. A nil
// *Collector is valid and collects nothing.
type Collector struct {
	w   io.Writer
	ids []string
	err error
}

func New(w io.Writer) *Collector {
	return &Collector{w: w}
}

// Add records id; an empty id still produces a (empty) token. The first
// write error is kept and later adds only update the in-memory list.
func (c *Collector) Add(id string) {
	if c == nil {
		return
	}
	c.ids = append(c.ids, id)
	if c.err == nil && c.w != nil {
		_, c.err = io.WriteString(c.w, id+",")
	}
}

func (c *Collector) Enabled() bool {
	return c != nil
}

func (c *Collector) IDs() []string {
	if c == nil {
		return nil
	}
	return c.ids
}

func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// String renders the list exactly as written, e.g. "123,456,".
func (c *Collector) String() string {
	if c == nil || len(c.ids) == 0 {
		return ""
	}
	return strings.Join(c.ids, ",") + ","
}

func (c *Collector) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}
