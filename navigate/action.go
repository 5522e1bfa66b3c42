package navigate

import "fmt"

// FailureDecision controls how the navigator proceeds after a path fails.
type FailureDecision int

const (
	// ContinueToNextPath swallows the failure and moves on to the next path
	// in the set.
	ContinueToNextPath FailureDecision = iota

	// AbortRemainingPaths stops processing the entire remaining path set
	// without propagating the failure.
	AbortRemainingPaths

	// FailFast propagates the failure out of Navigate immediately.
	// OnNavigationEnd is not invoked on this route.
	FailFast
)

// IsValid returns true if the decision is one of the defined constants.
func (d FailureDecision) IsValid() bool {
	return d >= ContinueToNextPath && d <= FailFast
}

// String returns a string representation of the decision.
func (d FailureDecision) String() string {
	switch d {
	case ContinueToNextPath:
		return "ContinueToNextPath"
	case AbortRemainingPaths:
		return "AbortRemainingPaths"
	case FailFast:
		return "FailFast"
	default:
		return fmt.Sprintf("FailureDecision(%d)", d)
	}
}

// Action is the callback capability a Navigator invokes at every traversal
// event. It is the sole mechanism for observing or short-circuiting a
// navigation; the navigator manages no state on its behalf.
//
// Boolean returns are explicit continue/prune signals: returning false from
// a steering hook prunes the corresponding scope without being an error.
// The hooks that deliver terminal events (OnObjectLeaf, OnArrayLeaf,
// OnPrematureBranchEnd) return an error instead; a non-nil error aborts the
// current path's walk and is routed through OnPathFailure.
//
// Embed [NoOpAction] to implement only the hooks a use case needs, or use
// [Hooks] to supply individual handler funcs.
type Action interface {
	// OnNavigationStart is invoked once before any path is processed.
	// Returning false skips the entire path set; OnNavigationEnd still fires.
	OnNavigationStart(root map[string]any, paths []string) bool

	// OnNextPath is invoked before each path is walked.
	// Returning false skips this path only.
	OnNextPath(path string) bool

	// OnPathEnd is invoked after a path's walk completes without failure.
	OnPathEnd(path string)

	// OnNavigationEnd is invoked once after the path loop, regardless of how
	// it ended, unless a FailFast decision propagated a failure.
	OnNavigationEnd()

	// OnObjectStart is invoked when the walk reaches an object node.
	// Returning false prunes recursion into that object; the pruned node
	// is then treated like a leaf, reported through OnPrematureBranchEnd
	// when path segments remain, or OnObjectLeaf (OnArrayLeaf for an array
	// element) when the path is exhausted.
	OnObjectStart(cur *Cursor, obj map[string]any) bool

	// OnArrayStart is invoked when the walk reaches an array node.
	// Returning false prunes the fan-out across that array; the pruned
	// array is then treated like a leaf, reported through
	// OnPrematureBranchEnd when path segments remain, or OnObjectLeaf when
	// the path is exhausted.
	OnArrayStart(cur *Cursor, arr []any) bool

	// OnObjectLeaf delivers a leaf value matched under an object, with the
	// cursor positioned at the path's final segment.
	OnObjectLeaf(cur *Cursor, value any) error

	// OnArrayLeaf delivers a leaf value matched inside an array, with its
	// zero-based index within that array.
	OnArrayLeaf(index int, value any) error

	// OnPrematureBranchEnd reports that the tree ended (missing field or
	// unexpected leaf) before the path's segments were exhausted. The node
	// argument is the node reached at the point of mismatch.
	OnPrematureBranchEnd(cur *Cursor, node any) error

	// OnObjectEnd is invoked when an object branch finishes, informational.
	OnObjectEnd(cur *Cursor)

	// OnArrayEnd is invoked when an array's elements are exhausted,
	// informational.
	OnArrayEnd(cur *Cursor)

	// OnPathFailure decides how to proceed after a path's walk failed,
	// whether from an illegal document shape or an error returned by one of
	// the hooks above.
	OnPathFailure(path string, err error) FailureDecision
}

// NoOpAction is an Action implementation that observes nothing: every
// steering hook continues, every event hook succeeds, and every path failure
// is swallowed. Embed it to override only the hooks a use case needs.
type NoOpAction struct{}

// OnNavigationStart implements Action.
func (NoOpAction) OnNavigationStart(_ map[string]any, _ []string) bool { return true }

// OnNextPath implements Action.
func (NoOpAction) OnNextPath(_ string) bool { return true }

// OnPathEnd implements Action.
func (NoOpAction) OnPathEnd(_ string) {}

// OnNavigationEnd implements Action.
func (NoOpAction) OnNavigationEnd() {}

// OnObjectStart implements Action.
func (NoOpAction) OnObjectStart(_ *Cursor, _ map[string]any) bool { return true }

// OnArrayStart implements Action.
func (NoOpAction) OnArrayStart(_ *Cursor, _ []any) bool { return true }

// OnObjectLeaf implements Action.
func (NoOpAction) OnObjectLeaf(_ *Cursor, _ any) error { return nil }

// OnArrayLeaf implements Action.
func (NoOpAction) OnArrayLeaf(_ int, _ any) error { return nil }

// OnPrematureBranchEnd implements Action.
func (NoOpAction) OnPrematureBranchEnd(_ *Cursor, _ any) error { return nil }

// OnObjectEnd implements Action.
func (NoOpAction) OnObjectEnd(_ *Cursor) {}

// OnArrayEnd implements Action.
func (NoOpAction) OnArrayEnd(_ *Cursor) {}

// OnPathFailure implements Action.
func (NoOpAction) OnPathFailure(_ string, _ error) FailureDecision { return ContinueToNextPath }

// Ensure NoOpAction implements Action at compile time.
var _ Action = NoOpAction{}

// Hooks adapts individual handler funcs into an Action. Nil funcs take the
// NoOpAction behavior: steering hooks continue, event hooks succeed, and
// path failures are swallowed.
type Hooks struct {
	NavigationStart func(root map[string]any, paths []string) bool
	NextPath        func(path string) bool
	PathEnd         func(path string)
	NavigationEnd   func()
	ObjectStart     func(cur *Cursor, obj map[string]any) bool
	ArrayStart      func(cur *Cursor, arr []any) bool
	ObjectLeaf      func(cur *Cursor, value any) error
	ArrayLeaf       func(index int, value any) error
	PrematureBranch func(cur *Cursor, node any) error
	ObjectEnd       func(cur *Cursor)
	ArrayEnd        func(cur *Cursor)
	PathFailure     func(path string, err error) FailureDecision
}

// OnNavigationStart implements Action.
func (h *Hooks) OnNavigationStart(root map[string]any, paths []string) bool {
	if h.NavigationStart == nil {
		return true
	}
	return h.NavigationStart(root, paths)
}

// OnNextPath implements Action.
func (h *Hooks) OnNextPath(path string) bool {
	if h.NextPath == nil {
		return true
	}
	return h.NextPath(path)
}

// OnPathEnd implements Action.
func (h *Hooks) OnPathEnd(path string) {
	if h.PathEnd != nil {
		h.PathEnd(path)
	}
}

// OnNavigationEnd implements Action.
func (h *Hooks) OnNavigationEnd() {
	if h.NavigationEnd != nil {
		h.NavigationEnd()
	}
}

// OnObjectStart implements Action.
func (h *Hooks) OnObjectStart(cur *Cursor, obj map[string]any) bool {
	if h.ObjectStart == nil {
		return true
	}
	return h.ObjectStart(cur, obj)
}

// OnArrayStart implements Action.
func (h *Hooks) OnArrayStart(cur *Cursor, arr []any) bool {
	if h.ArrayStart == nil {
		return true
	}
	return h.ArrayStart(cur, arr)
}

// OnObjectLeaf implements Action.
func (h *Hooks) OnObjectLeaf(cur *Cursor, value any) error {
	if h.ObjectLeaf == nil {
		return nil
	}
	return h.ObjectLeaf(cur, value)
}

// OnArrayLeaf implements Action.
func (h *Hooks) OnArrayLeaf(index int, value any) error {
	if h.ArrayLeaf == nil {
		return nil
	}
	return h.ArrayLeaf(index, value)
}

// OnPrematureBranchEnd implements Action.
func (h *Hooks) OnPrematureBranchEnd(cur *Cursor, node any) error {
	if h.PrematureBranch == nil {
		return nil
	}
	return h.PrematureBranch(cur, node)
}

// OnObjectEnd implements Action.
func (h *Hooks) OnObjectEnd(cur *Cursor) {
	if h.ObjectEnd != nil {
		h.ObjectEnd(cur)
	}
}

// OnArrayEnd implements Action.
func (h *Hooks) OnArrayEnd(cur *Cursor) {
	if h.ArrayEnd != nil {
		h.ArrayEnd(cur)
	}
}

// OnPathFailure implements Action.
func (h *Hooks) OnPathFailure(path string, err error) FailureDecision {
	if h.PathFailure == nil {
		return ContinueToNextPath
	}
	return h.PathFailure(path, err)
}

// Ensure Hooks implements Action at compile time.
var _ Action = (*Hooks)(nil)
