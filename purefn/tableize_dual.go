package purefn

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	tableized := tableizeDualOutput(
		func(args ...any) (O1, O2) {
			return pureFn(argAs[I1](args[0]))
		},
		maxTableSize,
	)
	return func(i1 I1) (O1, O2) {
		return tableized(i1)
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	tableized := tableizeDualOutput(
		func(args ...any) (O1, O2) {
			return pureFn(argAs[I1](args[0]), argAs[I2](args[1]))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		return tableized(i1, i2)
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func tableizeDualOutput[O1, O2 any](
	pureFn func(...any) (O1, O2),
	maxTableSize uint32,
) func(...any) (O1, O2) {
	tableized := tableize(func(args ...any) result[O1, O2] {
		v1, v2 := pureFn(args...)
		return result[O1, O2]{O1: v1, O2: v2}
	}, maxTableSize)
	return func(args ...any) (O1, O2) {
		res := tableized(args...)
		return res.O1, res.O2
	}
}
