// Package jsonnav provides selective, path-driven navigation of JSON document trees.
//
// jsonnav traverses only the branches of a decoded JSON object that match a set
// of caller-supplied dot-delimited paths, invoking callback hooks at each
// significant traversal event. Callers implement extraction, masking,
// validation, or transformation over a subset of a document without writing a
// recursive-descent walker for each use case.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - navigate: the core path-driven navigator and its callback contract
//   - parser: load JSON or YAML documents into the tree form the navigator consumes
//   - naverrors: structured error types shared across the module
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/jsonnav
//
// # Quick Start
//
// Collect the values at a set of paths:
//
//	import (
//		"github.com/erraggy/jsonnav/navigate"
//		"github.com/erraggy/jsonnav/parser"
//	)
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("order.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	leaves, err := navigate.CollectLeaves(result.Data, "customer.name", "items.sku")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, leaf := range leaves.All {
//		fmt.Printf("%s = %v\n", leaf.Location, leaf.Value)
//	}
//
// Drive the navigator with a custom callback:
//
//	type printer struct{ navigate.NoOpAction }
//
//	func (printer) OnObjectLeaf(cur *navigate.Cursor, value any) error {
//		fmt.Printf("%s = %v\n", cur.Origin(), value)
//		return nil
//	}
//
//	nav, err := navigate.New(printer{}, "customer.name", "customer.address.city")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := nav.Navigate(result.Data); err != nil {
//		log.Fatal(err)
//	}
//
// # Command Line
//
// The jsonnav CLI exposes the collector operations:
//
//	jsonnav extract order.json customer.name items.sku
//	jsonnav locate order.json customer.vat
//	jsonnav mcp
//
// The mcp subcommand starts an MCP (Model Context Protocol) server over stdio
// exposing the same operations as tools.
package jsonnav
