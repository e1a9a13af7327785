package document

import (
	"fmt"
	"maps"
	"slices"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindTable
	KindString
	KindInteger
	KindFloat
	KindBool
	KindDatetime
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindDatetime:
		return "datetime"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is an untyped configuration tree. Tables keep their entries in
// declaration order.
type Value struct {
	Kind    Kind
	Text    string  // KindString
	Entries []Entry // KindTable
	Items   []Value // KindArray
	Scalar  any     // numbers, booleans and datetimes as decoded by go-toml
}

// Entry is one key of a table.
type Entry struct {
	Key   string
	Value Value
}

// NewTable returns a table value holding entries in the given order.
func NewTable(entries ...Entry) Value {
	return Value{Kind: KindTable, Entries: entries}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// IsTable reports whether v is a table.
func (v Value) IsTable() bool {
	return v.Kind == KindTable
}

// Lookup returns the value stored under key in a table.
func (v Value) Lookup(key string) (Value, bool) {
	for _, e := range v.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Without returns a copy of the table with key removed. Non-table values are
// returned unchanged.
func (v Value) Without(key string) Value {
	if v.Kind != KindTable {
		return v
	}
	out := Value{Kind: KindTable, Entries: make([]Entry, 0, len(v.Entries))}
	for _, e := range v.Entries {
		if e.Key != key {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

// GoString renders scalars the way they appear in diagnostics.
func (v Value) GoString() string {
	switch v.Kind {
	case KindString:
		return fmt.Sprintf("%q", v.Text)
	case KindTable:
		return fmt.Sprintf("table(%d entries)", len(v.Entries))
	case KindArray:
		return fmt.Sprintf("array(%d items)", len(v.Items))
	default:
		return fmt.Sprintf("%v", v.Scalar)
	}
}

func build(v any, path string, order map[string][]string) Value {
	switch x := v.(type) {
	case map[string]any:
		keys := orderedKeys(x, order[path])
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, Entry{Key: k, Value: build(x[k], childPath(path, k), order)})
		}
		return Value{Kind: KindTable, Entries: entries}
	case []any:
		items := make([]Value, 0, len(x))
		for i, item := range x {
			items = append(items, build(item, elementPath(path, i), order))
		}
		return Value{Kind: KindArray, Items: items}
	case []map[string]any:
		items := make([]Value, 0, len(x))
		for i, item := range x {
			items = append(items, build(item, elementPath(path, i), order))
		}
		return Value{Kind: KindArray, Items: items}
	case string:
		return Value{Kind: KindString, Text: x}
	case int64, int:
		return Value{Kind: KindInteger, Scalar: x}
	case float64, float32:
		return Value{Kind: KindFloat, Scalar: x}
	case bool:
		return Value{Kind: KindBool, Scalar: x}
	case time.Time, toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return Value{Kind: KindDatetime, Scalar: x}
	default:
		return Value{Kind: KindInvalid, Scalar: x}
	}
}

// orderedKeys lists the keys of m in declaration order. Keys the order walk
// did not see are appended sorted.
func orderedKeys(m map[string]any, declared []string) []string {
	keys := make([]string, 0, len(m))
	listed := make(map[string]struct{}, len(declared))
	for _, k := range declared {
		if _, ok := m[k]; !ok {
			continue
		}
		if _, dup := listed[k]; dup {
			continue
		}
		listed[k] = struct{}{}
		keys = append(keys, k)
	}
	if len(keys) == len(m) {
		return keys
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if _, ok := listed[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}
