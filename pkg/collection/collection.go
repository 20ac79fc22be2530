// Package collection provides an ordered, queryable set of records.
package collection

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gnames/gnrating/pkg/record"
)

// Record is anything that exposes its fields through a typed
// selector.
type Record interface {
	Value(record.Field) (any, error)
}

// Collection is an ordered set of records of one kind.
type Collection[T Record] struct {
	items []T
}

// New creates a collection. The slice is not copied.
func New[T Record](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Items returns the records in order. Callers must not modify the
// returned slice.
func (c *Collection[T]) Items() []T {
	return c.items
}

// At returns the record at index i.
func (c *Collection[T]) At(i int) T {
	return c.items[i]
}

// Criterion requires a field to equal a value. A nil Value selects
// records where the field is absent.
type Criterion struct {
	Field record.Field
	Value any
}

// Eq creates a Criterion.
func Eq(f record.Field, v any) Criterion {
	return Criterion{Field: f, Value: normalize(v)}
}

// Select returns a new collection with the records matching all
// criteria. Without criteria the receiver itself is returned, not a
// copy.
func (c *Collection[T]) Select(criteria ...Criterion) (*Collection[T], error) {
	if len(criteria) == 0 {
		return c, nil
	}
	if err := checkFields[T](criteria); err != nil {
		return nil, err
	}

	var res []T
	for _, item := range c.items {
		ok, err := matches(item, criteria)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, item)
		}
	}
	return New(res), nil
}

// MatchSubstring returns records where the string field contains
// pattern, ignoring case. Records with the field absent never
// match. Criteria, if given, are applied first.
func (c *Collection[T]) MatchSubstring(
	f record.Field,
	pattern string,
	criteria ...Criterion,
) (*Collection[T], error) {
	sel, err := c.Select(criteria...)
	if err != nil {
		return nil, err
	}
	if err = checkFields[T]([]Criterion{{Field: f}}); err != nil {
		return nil, err
	}

	pattern = strings.ToLower(pattern)
	var res []T
	for _, item := range sel.items {
		v, err := item.Value(f)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, FieldTypeError(f, "string")
		}
		if strings.Contains(strings.ToLower(s), pattern) {
			res = append(res, item)
		}
	}
	return New(res), nil
}

// Filter returns a new collection of records for which keep is true.
func (c *Collection[T]) Filter(keep func(T) bool) *Collection[T] {
	var res []T
	for _, item := range c.items {
		if keep(item) {
			res = append(res, item)
		}
	}
	return New(res)
}

// ValueCount is the number of occurrences of a field value.
type ValueCount struct {
	Value any
	Count int
}

// UniqueValueCounts counts occurrences of every distinct value of a
// field. The result is sorted by value, absent first.
func (c *Collection[T]) UniqueValueCounts(f record.Field) ([]ValueCount, error) {
	if err := checkFields[T]([]Criterion{{Field: f}}); err != nil {
		return nil, err
	}

	counts := make(map[any]int)
	for _, item := range c.items {
		v, err := item.Value(f)
		if err != nil {
			return nil, err
		}
		counts[v]++
	}

	res := make([]ValueCount, 0, len(counts))
	for k, v := range counts {
		res = append(res, ValueCount{Value: k, Count: v})
	}
	slices.SortFunc(res, func(a, b ValueCount) int {
		return compareValues(a.Value, b.Value)
	})
	return res, nil
}

// Index groups records by the value of a field. Records with the
// field absent are left out.
func (c *Collection[T]) Index(f record.Field) (map[any][]T, error) {
	if err := checkFields[T]([]Criterion{{Field: f}}); err != nil {
		return nil, err
	}
	res := make(map[any][]T)
	for _, item := range c.items {
		v, err := item.Value(f)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		res[v] = append(res[v], item)
	}
	return res, nil
}

// checkFields fails on fields the record kind does not declare,
// even if the collection is empty.
func checkFields[T Record](criteria []Criterion) error {
	var zero T
	for _, c := range criteria {
		if _, err := zero.Value(c.Field); err != nil {
			return err
		}
	}
	return nil
}

func matches[T Record](item T, criteria []Criterion) (bool, error) {
	for _, c := range criteria {
		v, err := item.Value(c.Field)
		if err != nil {
			return false, err
		}
		if v != normalize(c.Value) {
			return false, nil
		}
	}
	return true, nil
}

// normalize brings criterion values to the types returned by
// Record.Value.
func normalize(v any) any {
	switch t := v.(type) {
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return float64(t)
	case record.PubType:
		if t == record.PubTypeAbsent {
			return nil
		}
		return string(t)
	case record.SubArea:
		if t == record.SubAreaAbsent {
			return nil
		}
		return string(t)
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *int:
		if t == nil {
			return nil
		}
		return *t
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	default:
		return v
	}
}

func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}
