// Package views provides live KeySet, Values and EntrySet adapters for any
// coll.Map, and read-only wrappers for iterators and collections.
//
// The adapters hold a reference to the map, never a copy: every call reads the
// current state of the map and removals through an adapter or its iterators
// are applied to the map immediately.
package views
