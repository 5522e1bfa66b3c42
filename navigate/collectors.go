package navigate

import (
	"errors"

	"github.com/erraggy/jsonnav/internal/pathutil"
	"github.com/erraggy/jsonnav/naverrors"
)

// Leaf describes one matched leaf value.
type Leaf struct {
	// Path is the navigation path that matched.
	Path string

	// Location is the rendered position of the value in the document.
	// A scalar matched directly inside an array carries its index, as in
	// "tags[2]" for path "tags"; leaves reached through object fan-out
	// render without indices, as in "items.sku".
	Location string

	// Index is the position within the enclosing array, or -1 for a leaf
	// reached directly under an object.
	Index int

	// Value is the matched leaf value.
	Value any
}

// LeafCollector holds leaves collected during a navigation.
type LeafCollector struct {
	// All contains every matched leaf in traversal order.
	All []*Leaf

	// ByPath groups matched leaves by the navigation path that produced
	// them. Paths that matched nothing have no entry.
	ByPath map[string][]*Leaf
}

// CollectLeaves navigates the given paths through root and collects every
// matched leaf value. The collection is best-effort: a path that fails to
// match reports nothing rather than failing the call. Illegal document
// shapes (an array nested directly inside an array) are surfaced as an
// error.
func CollectLeaves(root map[string]any, paths ...string) (*LeafCollector, error) {
	collector := &LeafCollector{
		All:    make([]*Leaf, 0),
		ByPath: make(map[string][]*Leaf),
	}

	var currentPath string
	record := func(leaf *Leaf) {
		collector.All = append(collector.All, leaf)
		collector.ByPath[leaf.Path] = append(collector.ByPath[leaf.Path], leaf)
	}

	hooks := &Hooks{
		NextPath: func(path string) bool {
			currentPath = path
			return true
		},
		ObjectLeaf: func(cur *Cursor, value any) error {
			record(&Leaf{
				Path:     currentPath,
				Location: renderLocation(cur.Consumed(), -1),
				Index:    -1,
				Value:    value,
			})
			return nil
		},
		ArrayLeaf: func(index int, value any) error {
			record(&Leaf{
				Path:     currentPath,
				Location: renderLocation(pathutil.SplitPath(currentPath), index),
				Index:    index,
				Value:    value,
			})
			return nil
		},
		PathFailure: surfaceStructureErrors,
	}

	nav, err := New(hooks, paths...)
	if err != nil {
		return nil, err
	}
	if err := nav.Navigate(root); err != nil {
		return nil, err
	}
	return collector, nil
}

// PathMiss describes a navigated path the document could not satisfy.
type PathMiss struct {
	// Path is the navigation path that missed.
	Path string

	// MissingAt is the path segment at which the tree ended.
	MissingAt string
}

// PathLocator holds the outcome of locating a path set in a document.
type PathLocator struct {
	// Found contains the paths whose walk reported no mismatch, in path-set
	// order.
	Found []string

	// Missing contains one entry per path that hit a premature branch end.
	// A path fanning out across an array appears here if any element
	// missed.
	Missing []*PathMiss
}

// LocatePaths navigates the given paths through root and reports which
// exist in the document and which end prematurely. Like CollectLeaves it is
// best-effort apart from illegal document shapes.
func LocatePaths(root map[string]any, paths ...string) (*PathLocator, error) {
	locator := &PathLocator{
		Found:   make([]string, 0),
		Missing: make([]*PathMiss, 0),
	}

	var currentPath string
	var missed bool

	hooks := &Hooks{
		NextPath: func(path string) bool {
			currentPath = path
			missed = false
			return true
		},
		PrematureBranch: func(cur *Cursor, _ any) error {
			if !missed {
				missed = true
				locator.Missing = append(locator.Missing, &PathMiss{
					Path:      currentPath,
					MissingAt: cur.Current(),
				})
			}
			return nil
		},
		PathEnd: func(path string) {
			if !missed {
				locator.Found = append(locator.Found, path)
			}
		},
		PathFailure: surfaceStructureErrors,
	}

	nav, err := New(hooks, paths...)
	if err != nil {
		return nil, err
	}
	if err := nav.Navigate(root); err != nil {
		return nil, err
	}
	return locator, nil
}

// surfaceStructureErrors is the failure policy shared by the collectors:
// propagate illegal document shapes, swallow anything else.
func surfaceStructureErrors(_ string, err error) FailureDecision {
	if errors.Is(err, naverrors.ErrStructure) {
		return FailFast
	}
	return ContinueToNextPath
}

// renderLocation renders a display location from path segments and an
// optional trailing array index (index < 0 means none).
func renderLocation(segments []string, index int) string {
	loc := pathutil.Get()
	defer pathutil.Put(loc)
	for _, seg := range segments {
		loc.Push(seg)
	}
	if index >= 0 {
		loc.PushIndex(index)
	}
	return loc.String()
}
