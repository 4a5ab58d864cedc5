package list

import "github.com/ValentinKolb/dColl/lib/coll"

// --------------------------------------------------------------------------
// Storage Contract
// --------------------------------------------------------------------------

// Backend is the storage a Base list is built on. Base validates every index
// before it reaches a backend, so implementations may assume 0 <= i < Len().
type Backend[T coll.Scalar] interface {
	Len() int
	At(i int) (T, error)
}

// Inserter is implemented by backends that can insert at 0 <= i <= Len().
type Inserter[T coll.Scalar] interface {
	InsertAt(i int, v T) error
}

// Replacer is implemented by backends that can replace an element in place.
type Replacer[T coll.Scalar] interface {
	SetAt(i int, v T) (T, error)
}

// Remover is implemented by backends that can remove a single element.
type Remover[T coll.Scalar] interface {
	RemoveAt(i int) (T, error)
}

// BulkInserter inserts a whole slice at i.
type BulkInserter[T coll.Scalar] interface {
	InsertSlice(i int, vs []T) error
}

// BulkRemover removes the elements in [from, to).
type BulkRemover[T coll.Scalar] interface {
	RemoveSlice(from, to int) error
}

// BulkGetter copies len(dst) elements starting at from into dst.
type BulkGetter[T coll.Scalar] interface {
	CopyTo(from int, dst []T) error
}

// Featured lets a backend report its capabilities itself. Without it the features
// are derived from the interfaces the backend implements.
type Featured interface {
	Features() coll.Feature
}

// iteratorSource is implemented by backends that need their own list iterator.
type iteratorSource[T coll.Scalar] interface {
	listIterator(i int) coll.ListIterator[T]
}

func featuresOf[T coll.Scalar](b Backend[T]) coll.Feature {
	if f, ok := b.(Featured); ok {
		return f.Features()
	}

	var f coll.Feature
	if _, ok := b.(Inserter[T]); ok {
		f |= coll.FeatureInsert
	}
	if _, ok := b.(Replacer[T]); ok {
		f |= coll.FeatureReplace
	}
	if _, ok := b.(Remover[T]); ok {
		f |= coll.FeatureRemove
	}
	if _, ok := b.(BulkInserter[T]); ok {
		f |= coll.FeatureBulkInsert
	}
	if _, ok := b.(BulkRemover[T]); ok {
		f |= coll.FeatureBulkRemove
	}
	if _, ok := b.(BulkGetter[T]); ok {
		f |= coll.FeatureBulkGet
	}
	return f
}
