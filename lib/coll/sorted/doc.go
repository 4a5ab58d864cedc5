// Package sorted provides sorted maps with scalar keys and their range views.
//
// TreeMap keeps its entries in a B-tree (github.com/google/btree) ordered by
// a coll.Comparator, or by the natural order of the key type when the comparator
// is nil. SubMap, HeadMap and TailMap return range views that share the storage
// of the map they were created from; a view of a view intersects both ranges.
// Views check their bounds on every access, so entries added to the backing map
// later appear in every view whose range covers them.
//
// Empty and Singleton are immutable sentinels. Their range operations never
// allocate: they return either themselves or the shared Empty instance.
//
// Thread-safety: maps and views are not thread-safe. Use
// decorate.SynchronizedSortedMap for concurrent access.
package sorted
