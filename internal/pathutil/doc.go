// Package pathutil provides path splitting and rendering utilities for
// jsonnav's dot-delimited navigation paths.
//
// The primary type is [LocationBuilder], which uses push/pop semantics to
// build display locations incrementally without allocating intermediate
// strings. This is useful when reporting where a matched value was found,
// including array indices the navigation path itself cannot express.
//
// # LocationBuilder Usage
//
// Use [Get] to obtain a pooled LocationBuilder, and [Put] to return it:
//
//	loc := pathutil.Get()
//	defer pathutil.Put(loc)
//
//	loc.Push("items")
//	loc.PushIndex(2)
//	loc.Push("sku")
//	loc.String() // "items[2].sku"
//
// [SplitPath] tokenizes a dot-delimited navigation path into its segments,
// dropping empty tokens produced by doubled or trailing dots.
package pathutil
