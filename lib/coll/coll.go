package coll

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// --------------------------------------------------------------------------
// Element Types
// --------------------------------------------------------------------------

// Scalar is the set of fixed-width element types the containers are specialized for.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Comparator orders two keys. It returns a negative number if a < b, zero if a == b
// and a positive number if a > b. A nil Comparator means natural ordering.
type Comparator[K any] func(a, b K) int

// --------------------------------------------------------------------------
// Capability Traits
// --------------------------------------------------------------------------

// Sized is implemented by every container.
type Sized interface {
	// Len returns the number of elements.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}

// Indexable is implemented by containers with random access by position.
type Indexable[T any] interface {
	Sized
	// Get returns the element at index i (0 <= i < Len()).
	Get(i int) (T, error)
	// Set replaces the element at index i and returns the previous element.
	Set(i int, v T) (T, error)
}

// Ordered is implemented by containers whose keys follow a total order.
type Ordered[K any] interface {
	// Comparator returns the ordering of the container, nil for natural ordering.
	Comparator() Comparator[K]
}

// FastIterable is implemented by maps offering non-allocating entry iteration.
type FastIterable[K, V any] interface {
	// FastIterator returns an iterator that may return the same Entry instance on
	// every call to Next. Callers must not retain an entry past the next call.
	FastIterator() EntryIterator[K, V]
}

// --------------------------------------------------------------------------
// Iterator Protocol
// --------------------------------------------------------------------------

// Iterator is a pull-based cursor over the elements of a container.
type Iterator[T any] interface {
	// HasNext reports whether Next would return an element.
	HasNext() bool
	// Next returns the next element or an ErrNoSuchElement error when exhausted.
	Next() (T, error)
	// Remove deletes the element returned by the last call to Next (or Previous)
	// from the backing container. It fails with ErrIllegalState when there is no
	// such element and with ErrUnsupportedOperation when removal is not supported.
	Remove() error
	// Skip advances the cursor by up to n elements and returns how many were skipped.
	Skip(n int) int
}

// BidiIterator is an Iterator that can also move backward.
type BidiIterator[T any] interface {
	Iterator[T]
	HasPrevious() bool
	Previous() (T, error)
	// Back moves the cursor backward by up to n elements and returns how many were passed.
	Back(n int) int
}

// ListIterator is a BidiIterator over an indexed sequence.
type ListIterator[T any] interface {
	BidiIterator[T]
	NextIndex() int
	PreviousIndex() int
	// Set replaces the element returned by the last Next or Previous.
	Set(v T) error
	// Add inserts v before the element that would be returned by Next.
	Add(v T) error
}

// EntryKind tells whether an entry iterator hands out independent entries or
// reuses a single mutable instance.
type EntryKind int

const (
	StableEntries   EntryKind = iota // every Next returns a new entry
	ReusedEntryView                  // every Next returns the same, mutated entry
)

func (k EntryKind) String() string {
	switch k {
	case StableEntries:
		return "StableEntries"
	case ReusedEntryView:
		return "ReusedEntryView"
	default:
		return "Unknown"
	}
}

// EntryIterator iterates over map entries.
type EntryIterator[K, V any] interface {
	Iterator[Entry[K, V]]
	Kind() EntryKind
}

// --------------------------------------------------------------------------
// Containers
// --------------------------------------------------------------------------

// Collection is a group of elements with iteration.
type Collection[T any] interface {
	Sized
	Contains(v T) bool
	// Add adds v and reports whether the collection changed.
	Add(v T) (bool, error)
	// Remove removes one occurrence of v and reports whether the collection changed.
	Remove(v T) (bool, error)
	Clear() error
	Iterator() Iterator[T]
	All() iter.Seq[T]
	ToSlice() []T
}

// Set is a Collection without duplicate elements.
type Set[T any] interface {
	Collection[T]
}

// Stack exposes the tail of a sequence as a stack.
type Stack[T any] interface {
	Push(v T) error
	// Pop removes the last element. Fails with ErrNoSuchElement when empty.
	Pop() (T, error)
	// Top returns the last element. Fails with ErrNoSuchElement when empty.
	Top() (T, error)
	// Peek returns the element i positions below the top.
	Peek(i int) (T, error)
}

// List is an insertion-ordered, indexable sequence of scalars.
type List[T Scalar] interface {
	Collection[T]
	Indexable[T]
	Stack[T]

	Insert(i int, v T) error
	RemoveAt(i int) (T, error)
	IndexOf(v T) int
	LastIndexOf(v T) int

	// InsertAll inserts vs at index i.
	InsertAll(i int, vs []T) error
	// RemoveRange removes the elements in [from, to).
	RemoveRange(from, to int) error
	// GetRange copies len(dst) elements starting at from into dst.
	GetRange(from int, dst []T) error
	// Resize grows the list with zero values or truncates its tail.
	Resize(n int) error

	// SubList returns a live view of [from, to).
	SubList(from, to int) (List[T], error)
	ListIterator() ListIterator[T]
	ListIteratorAt(i int) (ListIterator[T], error)

	// Equal reports element-wise equality with other.
	Equal(other List[T]) bool
	// Compare orders lists lexicographically; a strict prefix is smaller.
	Compare(other List[T]) int
	SupportsFeature(f Feature) bool
}

// Entry is a key/value pair of a map.
type Entry[K, V any] interface {
	Key() K
	Value() V
	// SetValue writes through to the backing map when supported.
	SetValue(v V) (V, error)
}

// Map is an associative container. Get returns the default return value for
// absent keys, which cannot be told apart from a stored value equal to it; use
// Lookup when the distinction matters.
type Map[K, V any] interface {
	Sized
	Get(k K) V
	Lookup(k K) (V, bool)
	ContainsKey(k K) bool
	ContainsValue(v V) bool
	// Put associates v with k and returns the previous value or the default return value.
	Put(k K, v V) (V, error)
	// Remove deletes k and returns its value or the default return value.
	Remove(k K) (V, error)
	Clear() error

	DefaultReturnValue() V
	SetDefaultReturnValue(v V) error

	KeySet() Set[K]
	Values() Collection[V]
	EntrySet() Set[Entry[K, V]]
	// Iterator returns an entry iterator with StableEntries semantics.
	Iterator() EntryIterator[K, V]
	All() iter.Seq2[K, V]
}

// SortedMap is a Map ordered by its keys. Range views share the storage of the
// map they were created from.
type SortedMap[K, V any] interface {
	Map[K, V]
	Ordered[K]
	FirstKey() (K, error)
	LastKey() (K, error)
	// SubMap returns the view of keys in [from, to).
	SubMap(from, to K) (SortedMap[K, V], error)
	// HeadMap returns the view of keys strictly less than to.
	HeadMap(to K) (SortedMap[K, V], error)
	// TailMap returns the view of keys greater than or equal to from.
	TailMap(from K) (SortedMap[K, V], error)
}

// --------------------------------------------------------------------------
// Feature Flags
// --------------------------------------------------------------------------

// Feature represents optional container capabilities as bit flags
type Feature uint64

const (
	FeatureInsert       Feature = 1 << iota // Support for Insert / Add
	FeatureReplace                          // Support for Set
	FeatureRemove                           // Support for RemoveAt / Remove
	FeatureBulkInsert                       // InsertAll without per-element shifting
	FeatureBulkRemove                       // RemoveRange without per-element shifting
	FeatureBulkGet                          // GetRange as a single copy
	FeatureRandomAccess                     // Get in constant time
)

func (f Feature) String() string {
	switch f {
	case FeatureInsert:
		return "Insert"
	case FeatureReplace:
		return "Replace"
	case FeatureRemove:
		return "Remove"
	case FeatureBulkInsert:
		return "BulkInsert"
	case FeatureBulkRemove:
		return "BulkRemove"
	case FeatureBulkGet:
		return "BulkGet"
	case FeatureRandomAccess:
		return "RandomAccess"
	default:
		return "Unknown"
	}
}
