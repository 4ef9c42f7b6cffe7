package purefn

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

type ComparableOrStringer any

// hashedKey stands in for arguments that are neither comparable nor Stringers.
type hashedKey uint64

// CacheFunction memoizes cb by its argument list. cb runs once per distinct
// argument list for as long as that list stays in the table; the table keeps
// up to two generations of maxTableSize entries.
func CacheFunction[O any](
	cb func(args ...any) O,
	maxTableSize uint32,
) func(args ...any) O {
	return tableize(cb, maxTableSize)
}

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(argAs[I1](args[0]))
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(argAs[I1](args[0]), argAs[I2](args[1]))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

// stringerKey keeps Stringer arguments apart from plain strings and from
// Stringers of other types that render the same text.
type stringerKey struct {
	t reflect.Type
	s string
}

func tableKey(arg any) TableKey {
	if arg == nil {
		return nil
	}
	rv := reflect.ValueOf(arg)
	if stringer, ok := arg.(fmt.Stringer); ok && !(rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return stringerKey{t: rv.Type(), s: stringer.String()}
	}
	// NaN (also inside complex numbers or structs) never equals itself and
	// would miss on every lookup, so it is keyed by its rendering instead.
	if rv.Comparable() && arg == arg {
		return arg
	}
	return hashedKey(xxhash.Sum64String(fmt.Sprintf("%T|%#v", arg, arg)))
}

// tableKeys prefixes the argument keys with the arity so that argument lists
// of different lengths never share a path, and f() still has a key.
func tableKeys(args []any) []TableKey {
	keys := make([]TableKey, len(args)+1)
	keys[0] = len(args)
	for i, arg := range args {
		keys[i+1] = tableKey(arg)
	}
	return keys
}

func tableize[O any](
	pureFn func(...any) O,
	maxTableSize uint32,
) func(...any) O {
	memo := NewTable[O](maxTableSize)
	return func(args ...any) O {
		keys := tableKeys(args)
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}

// argAs narrows a boxed argument back to its parameter type. A nil interface
// argument becomes the zero value instead of panicking.
func argAs[T any](arg any) T {
	v, _ := arg.(T)
	return v
}
