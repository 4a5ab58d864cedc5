package list

import (
	"reflect"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Sentinels
// --------------------------------------------------------------------------

// empties holds one immutable empty list per element type
var empties = xsync.NewMapOf[reflect.Type, any]()

type emptyStore[T coll.Scalar] struct{}

func (emptyStore[T]) Len() int { return 0 }

func (emptyStore[T]) At(i int) (T, error) {
	var zero T
	return zero, coll.IndexOutOfBounds(i, 0)
}

// Empty returns the shared immutable empty list of element type T.
func Empty[T coll.Scalar]() coll.List[T] {
	l, _ := empties.LoadOrCompute(reflect.TypeFor[T](), func() any {
		return New[T](emptyStore[T]{})
	})
	return l.(coll.List[T])
}

type singletonStore[T coll.Scalar] struct {
	v T
}

func (s singletonStore[T]) Len() int { return 1 }

func (s singletonStore[T]) At(int) (T, error) { return s.v, nil }

// Singleton returns an immutable list holding exactly v.
func Singleton[T coll.Scalar](v T) coll.List[T] {
	return New[T](singletonStore[T]{v: v})
}
