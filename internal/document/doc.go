// Package document parses TOML into an untyped tree that keeps declaration
// order.
//
// go-toml decodes tables into Go maps, which forget the order keys were
// written in. Workstyle needs that order: icon rules are matched first to
// last. Parse therefore runs two passes over the same bytes:
//
//  1. toml.Unmarshal into map[string]any validates the document and decodes
//     every scalar (strings, integers, floats, booleans, datetimes).
//  2. The unstable.Parser expression stream is walked to record the order in
//     which each table's keys first appear, following [table] headers,
//     [[array]] headers, dotted keys and inline tables.
//
// The two are joined into a Value whose Entries follow the document.
//
//	v, err := document.Parse([]byte("b = \"1\"\na = \"2\"\n"))
//	// v.Entries[0].Key == "b", v.Entries[1].Key == "a"
//
// Syntax errors are reported as *SyntaxError with the line and column go-toml
// reports.
package document
