package pathutil

import "sync"

// Builders are pooled because a location is rendered once per matched leaf,
// which in fan-out heavy documents means thousands of renders per walk.
const (
	defaultSegmentCap = 8  // covers typical navigation path depth
	maxPooledCap      = 64 // anything deeper goes back to the GC
)

var builderPool = sync.Pool{
	New: func() any {
		return &LocationBuilder{
			segments: make([]string, 0, defaultSegmentCap),
		}
	},
}

// Get returns a reset LocationBuilder from the pool.
func Get() *LocationBuilder {
	b := builderPool.Get().(*LocationBuilder)
	b.Reset()
	return b
}

// Put hands a LocationBuilder back to the pool, discarding any that grew
// past the pooling cap.
func Put(b *LocationBuilder) {
	if b == nil || cap(b.segments) > maxPooledCap {
		return
	}
	builderPool.Put(b)
}
