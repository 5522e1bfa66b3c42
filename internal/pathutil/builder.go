package pathutil

import (
	"strconv"
	"strings"
)

// LocationBuilder assembles display locations such as "items[2].sku" with
// push/pop semantics, materializing the string only when asked. Key
// segments join with dots; index segments attach directly to the segment
// before them.
type LocationBuilder struct {
	segments []string
	size     int // running length of the rendered string
}

// Push appends a key segment.
func (b *LocationBuilder) Push(segment string) {
	b.segments = append(b.segments, segment)
	if len(b.segments) > 1 {
		b.size++ // joining dot
	}
	b.size += len(segment)
}

// PushIndex appends an array index segment, rendered as "[i]".
func (b *LocationBuilder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	b.segments = append(b.segments, seg)
	b.size += len(seg) // brackets attach without a dot
}

// Pop removes the most recent segment.
func (b *LocationBuilder) Pop() {
	if len(b.segments) == 0 {
		return
	}
	last := b.segments[len(b.segments)-1]
	b.segments = b.segments[:len(b.segments)-1]
	b.size -= len(last)
	if len(b.segments) > 0 && (len(last) == 0 || last[0] != '[') {
		b.size-- // the joining dot goes with it
	}
}

// Reset clears the builder for reuse.
func (b *LocationBuilder) Reset() {
	b.segments = b.segments[:0]
	b.size = 0
}

// String renders the accumulated location.
func (b *LocationBuilder) String() string {
	if len(b.segments) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.size)
	sb.WriteString(b.segments[0])
	for _, seg := range b.segments[1:] {
		if len(seg) > 0 && seg[0] == '[' {
			sb.WriteString(seg)
			continue
		}
		sb.WriteByte('.')
		sb.WriteString(seg)
	}
	return sb.String()
}
