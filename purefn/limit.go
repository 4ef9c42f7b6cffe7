package purefn

import "sync/atomic"

// LimitCallCount returns a function that invokes cb at most n times. Once the
// budget is spent it returns the zero value and false without calling cb.
// The budget is shared safely between concurrent callers.
func LimitCallCount[O any](cb func(args ...any) O, n int) func(args ...any) (O, bool) {
	var invoked atomic.Int64
	limit := int64(max(n, 0))
	return func(args ...any) (O, bool) {
		for {
			cur := invoked.Load()
			if cur >= limit {
				var zero O
				return zero, false
			}
			if invoked.CompareAndSwap(cur, cur+1) {
				return cb(args...), true
			}
		}
	}
}

// LimitI1O1 is the single-argument, typed form of LimitCallCount.
func LimitI1O1[I1, O1 any](fn func(I1) O1, n int) func(I1) (O1, bool) {
	limited := LimitCallCount(func(args ...any) O1 {
		return fn(argAs[I1](args[0]))
	}, n)
	return func(i1 I1) (O1, bool) {
		return limited(i1)
	}
}
