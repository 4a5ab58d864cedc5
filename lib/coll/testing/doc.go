// Package testing provides standardised tests and benchmarks for container
// implementations that satisfy the coll.List, coll.Map and coll.SortedMap
// interfaces.
//
// The package contains:
//   - testing: conformance suites for the list, map and sorted map contracts,
//     including live views, iterator removal and the sublist bookkeeping
//   - benchmark: throughput of common container operations, usable both from
//     go test and from the perf command (see ListBenchmarks and MapBenchmarks)
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() coll.List[int32] {
//		return NewMyList[int32]()
//	}
//
//	// Running the standard test suite
//	testing.RunListTests(t, "MyList", factory)
//
//	// Running performance benchmarks
//	testing.RunListBenchmarks(b, "MyList", factory)
package testing
