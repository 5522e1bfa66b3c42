package navigate

import (
	"github.com/erraggy/jsonnav/naverrors"
)

// Navigator walks only the branches of a document tree that match its
// configured paths, invoking its Action at every traversal event.
//
// A Navigator holds no per-walk state beyond its configuration, so one
// instance may be reused across documents. Concurrent Navigate calls are
// safe only insofar as the Action implementation is; the navigator itself
// never mutates the tree.
type Navigator struct {
	action Action
	paths  []string
}

// New creates a Navigator from one Action implementation and an ordered set
// of dot-delimited paths. A nil action is a configuration error. A nil or
// empty path set is valid and navigates nothing, though the start and end
// events still fire.
func New(action Action, paths ...string) (*Navigator, error) {
	if action == nil {
		return nil, &naverrors.ConfigError{
			Option:  "action",
			Message: "action cannot be nil",
		}
	}
	return &Navigator{
		action: action,
		paths:  paths,
	}, nil
}

// Navigate walks the configured paths through root, in path-set order.
//
// For each path the navigator descends the matching branch, delivering
// events to the Action. When a path's walk fails, the Action's
// OnPathFailure decides whether to continue with the next path, abort the
// remaining path set silently, or propagate the failure; only the FailFast
// route returns a non-nil error, and it bypasses OnNavigationEnd.
func (n *Navigator) Navigate(root map[string]any) error {
	if n.action.OnNavigationStart(root, n.paths) {
		for _, path := range n.paths {
			if path == "" {
				continue
			}
			if !n.action.OnNextPath(path) {
				continue
			}
			if err := n.navigatePath(root, path); err != nil {
				decision := n.action.OnPathFailure(path, err)
				if decision == AbortRemainingPaths {
					break
				}
				if decision == FailFast {
					return err
				}
				// ContinueToNextPath (or anything unrecognized) swallows
				// the failure for this path.
			}
		}
	}
	n.action.OnNavigationEnd()
	return nil
}

// navigatePath walks a single path from the root. OnPathEnd fires only when
// the walk completed without failure.
func (n *Navigator) navigatePath(root map[string]any, path string) error {
	if err := n.walkObject(root, newCursor(path)); err != nil {
		return err
	}
	n.action.OnPathEnd(path)
	return nil
}

// walkObject descends one path segment into an object node.
//
// A nil node ends the branch silently: no events fire for this call, not
// even the trailing object-end. Otherwise the next segment selects a child,
// and the child's kind decides between recursion, fan-out, a premature
// branch end, or a matched leaf. A container whose start hook declines
// recursion falls through that same chain, so a pruned child still reports
// as a premature end or a leaf depending on the remaining path.
func (n *Navigator) walkObject(obj map[string]any, cur *Cursor) error {
	if obj == nil {
		return nil
	}
	if cur.HasNext() {
		key := cur.Next()
		child, ok := obj[key]
		childObj, isObj := child.(map[string]any)
		childArr, isArr := child.([]any)
		switch {
		case !ok:
			// The tree ends before the path does.
			if err := n.action.OnPrematureBranchEnd(cur, obj); err != nil {
				return err
			}
		case isObj && n.action.OnObjectStart(cur, childObj):
			if err := n.walkObject(childObj, cur); err != nil {
				return err
			}
		case isArr && n.action.OnArrayStart(cur, childArr):
			if err := n.walkArray(childArr, cur); err != nil {
				return err
			}
		case cur.HasNext():
			// The branch ends here, either at a leaf or a pruned container,
			// but the path expects to go deeper.
			if err := n.action.OnPrematureBranchEnd(cur, child); err != nil {
				return err
			}
		default:
			// Path exhausted at this child; a pruned container counts as
			// the matched value too.
			if err := n.action.OnObjectLeaf(cur, child); err != nil {
				return err
			}
		}
	}
	n.action.OnObjectEnd(cur)
	return nil
}

// walkArray fans one path position out across an array's elements.
//
// Each object element continues the walk on its own cursor clone, so sibling
// elements resume from the same path position independently; a pruned object
// element is treated as a leaf when the path is exhausted. Arrays nested
// directly inside arrays are an illegal shape. A leaf element while the path
// still expects deeper segments is skipped silently, unlike the object
// case's premature-end report.
func (n *Navigator) walkArray(arr []any, cur *Cursor) error {
	if arr == nil {
		return nil
	}
	for i, item := range arr {
		itemObj, isObj := item.(map[string]any)
		_, isArr := item.([]any)
		switch {
		case isObj && n.action.OnObjectStart(cur, itemObj):
			if err := n.walkObject(itemObj, cur.Clone()); err != nil {
				return err
			}
		case isArr:
			return &naverrors.StructureError{
				Origin:  cur.Origin(),
				Index:   i,
				Message: "array nested inside array",
			}
		case !cur.HasNext():
			// Matched leaf, or a pruned object element standing in for one.
			if err := n.action.OnArrayLeaf(i, item); err != nil {
				return err
			}
		}
	}
	n.action.OnArrayEnd(cur)
	return nil
}
