package navigate

import "github.com/erraggy/jsonnav/internal/pathutil"

// Cursor tracks the position within one navigation path's ordered segments
// as the navigator descends through a document tree.
//
// A cursor is created fresh for each top-level path and cloned on array
// fan-out so that every array element resumes matching from the same
// position independently of its siblings. The segment sequence is fixed at
// construction; only the position advances.
type Cursor struct {
	origin   string
	segments []string
	pos      int
}

// newCursor builds a cursor over the segments of a dot-delimited path.
func newCursor(path string) *Cursor {
	return &Cursor{
		origin:   path,
		segments: pathutil.SplitPath(path),
	}
}

// HasNext reports whether any segments remain to be consumed.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.segments)
}

// Next returns the segment at the current position and advances past it.
// Calling Next on an exhausted cursor is a contract violation and panics.
func (c *Cursor) Next() string {
	if c.pos >= len(c.segments) {
		panic("navigate: Next called on exhausted cursor for path '" + c.origin + "'")
	}
	seg := c.segments[c.pos]
	c.pos++
	return seg
}

// Origin returns the original full path string, for diagnostics.
func (c *Cursor) Origin() string {
	return c.origin
}

// Position returns the number of segments consumed so far.
func (c *Cursor) Position() int {
	return c.pos
}

// Current returns the most recently consumed segment, or "" if no segment
// has been consumed yet.
func (c *Cursor) Current() string {
	if c.pos == 0 {
		return ""
	}
	return c.segments[c.pos-1]
}

// Consumed returns a copy of the segments consumed so far.
func (c *Cursor) Consumed() []string {
	if c.pos == 0 {
		return nil
	}
	out := make([]string, c.pos)
	copy(out, c.segments[:c.pos])
	return out
}

// Remaining returns a copy of the segments not yet consumed.
func (c *Cursor) Remaining() []string {
	if c.pos >= len(c.segments) {
		return nil
	}
	out := make([]string, len(c.segments)-c.pos)
	copy(out, c.segments[c.pos:])
	return out
}

// Clone returns a new cursor with the same segment sequence and the same
// current position. Advancing either cursor does not affect the other.
// The segment slice is shared; it is never mutated after construction.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}
