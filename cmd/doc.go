// Package cmd implements the dcoll command-line tool. It is not needed to use
// the collections; it benchmarks them and inspects their persisted form.
//
// The package is organized into several subpackages:
//
//   - perf: Benchmarks every container and prints ns/op, a latency table and Prometheus metrics
//   - dump: Prints a persisted ArrayMap[int64, string]
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set as an environment variable DCOLL_<FLAG>, read from
// the process environment or from .env and .env.local.
//
// See dcoll -help for a list of all commands.
package cmd
