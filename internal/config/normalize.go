package config

import (
	"fmt"
	"sort"
	"strings"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

// enumNormalizer maps case-insensitive strings onto a closed set of values.
type enumNormalizer[T comparable] struct {
	field  string
	values map[string]T
	keys   []string
}

func newEnumNormalizer[T comparable](field string, values map[string]T) *enumNormalizer[T] {
	n := &enumNormalizer[T]{field: field, values: make(map[string]T, len(values))}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

func (n *enumNormalizer[T]) parse(raw string) (T, error) {
	if v, ok := n.values[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, derrors.ValidationFailed(n.field,
		fmt.Sprintf("unsupported value %q, valid options: %s", raw, strings.Join(n.keys, ", ")))
}

func clean(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
