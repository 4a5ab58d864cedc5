// Package list provides insertion-ordered, indexable sequences of scalars.
//
// Every list is a Base built on a Backend, a minimal storage contract made of Len
// and At. A backend opts into mutation by implementing the primitive interfaces
// Inserter, Replacer and Remover; everything else (stack operations, bulk ranges,
// searching, comparison, list iterators and sublist views) is derived from those
// primitives. A backend that can move whole ranges at once additionally implements
// BulkInserter, BulkRemover or BulkGetter and Base uses them instead of the naive
// element-by-element fallbacks.
//
// Implementations:
//   - ArrayList: a growable slice, supports every primitive and bulk operation
//   - LinkedList: a doubly linked chain of nodes, primitives only
//   - FixedList: wraps a caller supplied slice, elements can only be replaced
//   - Empty and Singleton: immutable shared sentinels
//
// Sublists returned by SubList are live windows over their parent. Structural
// changes made through the view are applied to the parent and the window follows
// them. Changes made directly through the parent are not tracked by the view.
//
// Thread-safety: lists are not thread-safe. Use decorate.SynchronizedList for
// concurrent access.
package list
