package cache

import (
	"cmp"
	"fmt"
	"reflect"
)

// Pair is an immutable ordered 2-tuple used as a composite key.
//
// Pair[A, B] is comparable whenever A and B are, so two pairs built separately
// from equal components are the same map key.
type Pair[A, B any] struct {
	First  A
	Second B
}

func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ComparePairs orders pairs lexicographically, for callers that need a sorted
// view of pair keys.
//
// Components are compared as follows: nil sorts before non-nil; values of the
// same integer, float, string or bool kind compare naturally; any other
// combination compares as equal. The last rule makes this a partial order, so
// distinct pairs can compare as 0. Never use it as the identity of a key; the
// stores in this package rely on == only.
func ComparePairs[A, B any](p, q Pair[A, B]) int {
	if c := compareComponents(p.First, q.First); c != 0 {
		return c
	}
	return compareComponents(p.Second, q.Second)
}

func compareComponents(a, b any) int {
	an, bn := isNil(a), isNil(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		return 0
	}
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case reflect.Bool:
		switch {
		case va.Bool() == vb.Bool():
			return 0
		case va.Bool():
			return 1
		default:
			return -1
		}
	}
	return 0
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// PairMap is Map keyed by the Pair of two arguments.
type PairMap[A, B comparable, V any] struct {
	entries *Map[Pair[A, B], V]
}

func NewPairMap[A, B comparable, V any]() *PairMap[A, B, V] {
	return &PairMap[A, B, V]{entries: NewMap[Pair[A, B], V]()}
}

func (m *PairMap[A, B, V]) Get(a A, b B, compute func() V) V {
	return m.entries.Get(PairOf(a, b), compute)
}

func (m *PairMap[A, B, V]) Peek(a A, b B) (V, bool) {
	return m.entries.Peek(PairOf(a, b))
}

func (m *PairMap[A, B, V]) Len() int {
	return m.entries.Len()
}
