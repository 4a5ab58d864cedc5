// Package coll defines the shared vocabulary of the dColl containers: small
// capability traits, the iterator protocol, the container interfaces and the
// typed error taxonomy.
//
// The package focuses on:
//   - Capability traits (Sized, Indexable, Ordered, FastIterable) that concrete
//     containers compose instead of one deep interface hierarchy
//   - A pull-based iterator protocol with removal through the cursor
//   - Error codes for bounds, state, unsupported-operation, exhaustion and
//     argument violations, usable with errors.Is
//   - Feature flags that capability-limited lists advertise through SupportsFeature
//
// Related Packages:
//
//   - arraymap: the compact array map with linear-scan lookup
//   - list: the abstract sequential container, array/linked lists and sublist views
//   - sorted: the tree map and the sorted-map view algebra with its sentinels
//   - views: generic live key-set, values and entry-set adapters
//   - decorate: synchronized and unmodifiable wrappers
//   - codec: element codecs for the persisted form
//   - testing: conformance suites and benchmarks for all of the above
//
// Thread-safety: no container in this module synchronizes internally. Concurrent
// mutation without external coordination is a data race. Use the decorate package
// for mutual exclusion.
package coll
