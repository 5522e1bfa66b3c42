package navigate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTraversal(t *testing.T) {
	cur := newCursor("a.b.c")
	assert.Equal(t, "a.b.c", cur.Origin())
	assert.Equal(t, "", cur.Current())
	assert.Equal(t, 0, cur.Position())

	require.True(t, cur.HasNext())
	assert.Equal(t, "a", cur.Next())
	assert.Equal(t, "a", cur.Current())
	assert.Equal(t, 1, cur.Position())

	assert.Equal(t, "b", cur.Next())
	assert.Equal(t, "c", cur.Next())
	assert.False(t, cur.HasNext())
}

func TestCursorConsumedRemaining(t *testing.T) {
	cur := newCursor("a.b.c")
	cur.Next()
	assert.Equal(t, []string{"a"}, cur.Consumed())
	assert.Equal(t, []string{"b", "c"}, cur.Remaining())

	// returned slices are copies
	cur.Consumed()[0] = "mutated"
	assert.Equal(t, []string{"a"}, cur.Consumed())
}

func TestCursorClone(t *testing.T) {
	cur := newCursor("a.b.c")
	cur.Next()

	clone := cur.Clone()
	assert.Equal(t, "b", clone.Next())
	// advancing the clone leaves the original untouched
	assert.Equal(t, 1, cur.Position())
	assert.Equal(t, "b", cur.Next())
}

func TestCursorEmptySegmentsDropped(t *testing.T) {
	cur := newCursor("a..b.")
	assert.Equal(t, "a", cur.Next())
	assert.Equal(t, "b", cur.Next())
	assert.False(t, cur.HasNext())
}

func TestCursorNextPanicsWhenExhausted(t *testing.T) {
	cur := newCursor("a")
	cur.Next()
	assert.Panics(t, func() { cur.Next() })
}
