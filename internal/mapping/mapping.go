// Package mapping holds the ordered icon mapping and its decoder.
package mapping

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/five82/workstyle/internal/document"
)

var (
	// ErrNotATable indicates the decoded root value is not a table.
	ErrNotATable = errors.New("expected a table of icon mappings")

	// ErrNonStringValue indicates a mapping entry whose value is not a string.
	ErrNonStringValue = errors.New("expected mapping value to be a string")
)

// NonStringValueError carries the key whose value is not a string.
type NonStringValueError struct {
	Key   string
	Value document.Value
}

func (e *NonStringValueError) Error() string {
	return fmt.Sprintf("%s: key %q holds %s %#v", ErrNonStringValue, e.Key, e.Value.Kind, e.Value)
}

func (e *NonStringValueError) Is(target error) bool {
	return target == ErrNonStringValue
}

// Pair is a single window-name to icon rule.
type Pair struct {
	Key   string
	Value string
}

// Mapping is an ordered list of rules. The first matching rule wins.
type Mapping []Pair

// Decode converts a table of string values into a Mapping, keeping the
// table's entry order.
func Decode(v document.Value) (Mapping, error) {
	if v.Kind != document.KindTable {
		return nil, fmt.Errorf("%w, found %s", ErrNotATable, v.Kind)
	}
	m := make(Mapping, 0, len(v.Entries))
	for _, e := range v.Entries {
		if e.Value.Kind != document.KindString {
			return nil, &NonStringValueError{Key: e.Key, Value: e.Value}
		}
		m = append(m, Pair{Key: e.Key, Value: e.Value.Text})
	}
	return m, nil
}

// Keys returns the rule keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}
	return keys
}

// Match returns the first rule matching name. Keys written as /pattern/ are
// regular expressions; any other key matches when name contains it, ignoring
// case.
func (m Mapping) Match(name string) (Pair, bool) {
	lowered := strings.ToLower(name)
	for _, p := range m {
		if pattern, ok := regexKey(p.Key); ok {
			if re := compileRule(pattern); re != nil && re.MatchString(name) {
				return p, true
			}
			continue
		}
		if p.Key != "" && strings.Contains(lowered, strings.ToLower(p.Key)) {
			return p, true
		}
	}
	return Pair{}, false
}

// Icon returns the icon of the first rule matching name, or fallback.
func (m Mapping) Icon(name, fallback string) string {
	if p, ok := m.Match(name); ok {
		return p.Value
	}
	return fallback
}

// compiled memoizes regex rules by pattern. Invalid patterns are stored as nil.
var compiled sync.Map

func compileRule(pattern string) *regexp.Regexp {
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	actual, _ := compiled.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

func regexKey(key string) (string, bool) {
	if len(key) > 2 && strings.HasPrefix(key, "/") && strings.HasSuffix(key, "/") {
		return key[1 : len(key)-1], true
	}
	return "", false
}
