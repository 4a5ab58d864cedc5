package coll

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// CompareWith compares a and b with c, falling back to natural order when c is nil.
func CompareWith[K Scalar](c Comparator[K], a, b K) int {
	if c == nil {
		return cmp.Compare(a, b)
	}
	return c(a, b)
}

// ScalarEqual compares two scalars with ==, except that NaN equals NaN so float
// keys and elements can be found again.
func ScalarEqual[T Scalar](a, b T) bool {
	return a == b || (a != a && b != b)
}

// Equal reports value equality for arbitrary value types. Nil interfaces and nil
// pointers compare equal to each other; types that are not comparable with ==
// fall back to reflect.DeepEqual.
func Equal[V any](a, b V) bool {
	ra, rb := any(a), any(b)
	if ra == nil || rb == nil {
		return ra == nil && rb == nil
	}
	va, vb := reflect.ValueOf(ra), reflect.ValueOf(rb)
	if va.Type() == vb.Type() && va.Comparable() && vb.Comparable() {
		return ra == rb
	}
	return reflect.DeepEqual(ra, rb)
}

// SkipN advances it by up to n elements using Next.
func SkipN[T any](it Iterator[T], n int) int {
	i := 0
	for i < n && it.HasNext() {
		if _, err := it.Next(); err != nil {
			break
		}
		i++
	}
	return i
}

// BackN moves it backward by up to n elements using Previous.
func BackN[T any](it BidiIterator[T], n int) int {
	i := 0
	for i < n && it.HasPrevious() {
		if _, err := it.Previous(); err != nil {
			break
		}
		i++
	}
	return i
}

// Seq adapts an Iterator to a range-over-func sequence.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Seq2 adapts an EntryIterator to a range-over-func key/value sequence.
func Seq2[K, V any](it EntryIterator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it.HasNext() {
			e, err := it.Next()
			if err != nil || !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

// FormatMap renders a map as {k=>v, k=>v}.
func FormatMap[K, V any](m Map[K, V]) string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v=>%v", k, v)
	}
	sb.WriteString("}")
	return sb.String()
}

// FormatSeq renders a sequence as [a, b, c].
func FormatSeq[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("]")
	return sb.String()
}

// MapsEqual reports whether a and b hold the same keys mapped to equal values.
func MapsEqual[K, V any](a, b Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		w, ok := b.Lookup(k)
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}
