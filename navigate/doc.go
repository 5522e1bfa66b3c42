// Package navigate provides path-driven selective traversal of JSON document
// trees.
//
// The navigator visits only the branches of a decoded document that match a
// set of dot-delimited paths, calling back into a caller-supplied [Action]
// at each significant traversal event. This supports extraction, masking,
// validation, and transformation over a subset of a document without a
// hand-written recursive walker per use case.
//
// Documents are plain decoded trees: objects are map[string]any, arrays are
// []any, and everything else is a leaf. The parser package produces trees in
// this form from JSON or YAML sources, but any tree the caller owns works.
//
// # Quick Start
//
// Collect the values under a set of paths:
//
//	leaves, err := navigate.CollectLeaves(root, "customer.name", "items.sku")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, leaf := range leaves.All {
//	    fmt.Printf("%s = %v\n", leaf.Location, leaf.Value)
//	}
//
// # Flow Control
//
// Steering hooks return a bool to continue or prune:
//
//   - OnNavigationStart: false skips the whole path set
//   - OnNextPath: false skips one path
//   - OnObjectStart: false prunes recursion into an object
//   - OnArrayStart: false prunes fan-out across an array
//
// A pruned container is then treated like a leaf: with path segments still
// remaining it reports a premature branch end, and with the path exhausted
// it is delivered as the matched leaf value.
//
// Event hooks (OnObjectLeaf, OnArrayLeaf, OnPrematureBranchEnd) return an
// error; a non-nil error aborts the current path's walk and is routed to
// OnPathFailure, whose [FailureDecision] selects one of three outcomes:
//
//   - [ContinueToNextPath]: swallow the failure, keep going
//   - [AbortRemainingPaths]: stop the remaining path set silently
//   - [FailFast]: propagate the failure out of Navigate
//
// # Array Fan-Out
//
// When a path segment resolves to an array of objects, each element resumes
// matching the remaining path suffix on its own [Cursor] clone. A path like
// "items.sku" over {"items":[{"sku":1},{"sku":2}]} therefore delivers two
// OnObjectLeaf events, one per element, in array order.
//
// Arrays nested directly inside arrays are not a supported document shape;
// reaching one fails the path with a naverrors.StructureError.
//
// # Overlapping Paths
//
// The path set carries no uniqueness constraint. Duplicate or overlapping
// paths are each navigated independently and may deliver redundant events;
// callers that care must deduplicate themselves.
package navigate
