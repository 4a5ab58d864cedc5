// Package decorate provides Synchronized and Unmodifiable wrappers for maps,
// sorted maps and lists.
//
// A synchronized wrapper acquires one lock for the duration of every call.
// Views derived from it (SubMap, SubList, KeySet, iterators, ...) are
// synchronized with the same lock, so a whole view tree forms one lock domain.
// Several containers can share a domain by passing the same sync.Locker with
// WithLocker; without it an xsync.RBMutex is used, which lets readers proceed
// in parallel.
//
// Iteration is not atomic: every step of an iterator takes the lock on its own.
// To iterate consistently use Do, which runs a function on the undecorated
// container while holding the lock:
//
//	m := decorate.SynchronizedMap[int32, string](arraymap.New[int32, string]())
//	m.Do(func(inner coll.Map[int32, string]) {
//		for k, v := range inner.All() {
//			...
//		}
//	})
//
// The lock is not reentrant; calling methods of the synchronized wrapper from
// within Do deadlocks.
//
// An unmodifiable wrapper forwards every read and fails every mutation with
// coll.ErrUnsupportedOperation. Views and iterators derived from it are
// unmodifiable as well.
package decorate
