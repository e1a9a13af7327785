package document

import (
	"errors"
	"fmt"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

const (
	rootPath      = ""
	pathSeparator = "\x1f"
	indexMarker   = "\x1e"
)

// SyntaxError describes TOML that could not be parsed.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func newSyntaxError(err error) error {
	se := &SyntaxError{Message: err.Error(), Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		se.Line, se.Column = de.Position()
	}
	return se
}

// Parse decodes TOML into a Value whose tables list their keys in the order
// they are declared in data.
func Parse(data []byte) (Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Value{}, newSyntaxError(err)
	}

	order, err := declarationOrder(data)
	if err != nil {
		return Value{}, newSyntaxError(err)
	}

	return build(raw, rootPath, order), nil
}

// tracker records, for every table path, the keys in first-seen order.
type tracker struct {
	order  map[string][]string
	seen   map[string]struct{}
	arrays map[string]int // array-of-tables path -> elements so far
}

func declarationOrder(data []byte) (map[string][]string, error) {
	t := &tracker{
		order:  make(map[string][]string),
		seen:   make(map[string]struct{}),
		arrays: make(map[string]int),
	}

	var p unstable.Parser
	p.Reset(data)

	current := rootPath
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			current = t.addKey(rootPath, expr.Key())
		case unstable.ArrayTable:
			arr := t.addKey(rootPath, expr.Key())
			idx := t.arrays[arr]
			t.arrays[arr] = idx + 1
			current = elementPath(arr, idx)
		case unstable.KeyValue:
			t.value(t.addKey(current, expr.Key()), expr.Value())
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return t.order, nil
}

func (t *tracker) add(parent, key string) string {
	child := childPath(parent, key)
	if _, ok := t.seen[child]; !ok {
		t.seen[child] = struct{}{}
		t.order[parent] = append(t.order[parent], key)
	}
	return child
}

// addKey records a possibly dotted key under parent and returns its path.
// Intermediate segments naming an array of tables resolve to its last element.
func (t *tracker) addKey(parent string, it unstable.Iterator) string {
	path := parent
	for it.Next() {
		path = t.add(path, string(it.Node().Data))
		if !it.IsLast() {
			path = t.descend(path)
		}
	}
	return path
}

func (t *tracker) descend(path string) string {
	if n, ok := t.arrays[path]; ok && n > 0 {
		return elementPath(path, n-1)
	}
	return path
}

func (t *tracker) value(path string, n *unstable.Node) {
	switch n.Kind {
	case unstable.InlineTable:
		it := n.Children()
		for it.Next() {
			kv := it.Node()
			if kv.Kind != unstable.KeyValue {
				continue
			}
			t.value(t.addKey(path, kv.Key()), kv.Value())
		}
	case unstable.Array:
		it := n.Children()
		i := 0
		for it.Next() {
			item := it.Node()
			if item.Kind == unstable.Comment {
				continue
			}
			t.value(elementPath(path, i), item)
			i++
		}
	}
}

func childPath(parent, key string) string {
	return parent + pathSeparator + key
}

func elementPath(parent string, idx int) string {
	return parent + indexMarker + strconv.Itoa(idx)
}
