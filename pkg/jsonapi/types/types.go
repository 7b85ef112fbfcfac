package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type multiplicity int

const (
	absent multiplicity = iota
	one
	many
)

// Multiple holds either nothing, a single value or an ordered sequence of values.
// The zero value is absent.
type Multiple[T any] struct {
	kind  multiplicity
	items []T
}

func Absent[T any]() Multiple[T] {
	return Multiple[T]{}
}

func One[T any](value T) Multiple[T] {
	return Multiple[T]{kind: one, items: []T{value}}
}

// Many returns a sequence, an empty sequence is still a sequence and not absent
func Many[T any](values ...T) Multiple[T] {
	items := make([]T, len(values))
	copy(items, values)
	return Multiple[T]{kind: many, items: items}
}

func (m Multiple[T]) IsAbsent() bool { return m.kind == absent }
func (m Multiple[T]) IsOne() bool    { return m.kind == one }
func (m Multiple[T]) IsMany() bool   { return m.kind == many }

// Single returns the value of a to-one multiple
func (m Multiple[T]) Single() (T, bool) {
	if m.kind != one {
		var zero T
		return zero, false
	}
	return m.items[0], true
}

// Items returns the contained values in order, nil when absent
func (m Multiple[T]) Items() []T {
	if m.kind == absent {
		return nil
	}
	items := make([]T, len(m.items))
	copy(items, m.items)
	return items
}

func (m Multiple[T]) Len() int {
	return len(m.items)
}

// Map applies fn to every value while keeping the shape of m
func Map[T, R any](m Multiple[T], fn func(T) R) Multiple[R] {
	switch m.kind {
	case one:
		return One(fn(m.items[0]))
	case many:
		result := Multiple[R]{kind: many, items: make([]R, 0, len(m.items))}
		for _, item := range m.items {
			result.items = append(result.items, fn(item))
		}
		return result
	default:
		return Absent[R]()
	}
}

// TryMap is Map for transformations that can fail. The first error stops the mapping.
func TryMap[T, R any](m Multiple[T], fn func(T) (R, error)) (Multiple[R], error) {
	var err error

	result := Map(m, func(item T) R {
		var r R
		if err != nil {
			return r
		}
		r, err = fn(item)
		return r
	})

	if err != nil {
		return Absent[R](), err
	}

	return result, nil
}

func (m Multiple[T]) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case one:
		return json.Marshal(m.items[0])
	case many:
		return json.Marshal(m.items)
	default:
		return []byte("null"), nil
	}
}

func (m *Multiple[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = Absent[T]()
		return nil
	}

	if trimmed[0] == '[' {
		items := []T{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("failed to unmarshal sequence: %w", err)
		}
		*m = Many(items...)
		return nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	*m = One(item)

	return nil
}

// ResourceID identifies a resource across a whole document
type ResourceID struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (rid ResourceID) String() string {
	return rid.Type + "/" + rid.ID
}
