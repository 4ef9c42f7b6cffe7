// Package purefn wraps pure functions in closures that add behavior without
// changing what the function computes.
//
// Two wrappers are provided:
//
//	→ memoization: CacheFunction and the Tableize family remember results by
//	  argument list, so a repeated call never re-runs the wrapped function.
//	→ call limiting: LimitCallCount and LimitI1O1 let the wrapped function run
//	  at most n times.
//
// Memoization assumes purity, not just determinism. Wrapping a function that
// depends on time, I/O or mutable state will serve stale answers.
//
// Features:
//   - CacheFunction: variadic memoizer keyed by the whole argument list.
//   - TableizeI1O1, TableizeI2O1, TableizeI1O2, TableizeI2O2: typed memoizers.
//   - Table: trie-based bounded cache with two-generation rotation.
//   - Arguments key by value when comparable, by String() for fmt.Stringers,
//     and by an xxhash digest of their Go syntax otherwise.
//
// See tableize_test.go and tableize_bench_test.go for usage and benchmarks.
package purefn
