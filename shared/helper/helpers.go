package helper

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a document whose shape does not fit the operation.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrUnexpectedType = errors.New("unexpected type")
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedType, res)
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// AsSequence narrows a decoded document to a nested sequence.
func AsSequence(doc any) ([]any, error) {
	seq, err := GetTypedValueOf[[]any](valueOf(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: expected a sequence: %w", ErrInvalidArgument, err)
	}
	return seq, nil
}

// AsStructure narrows a decoded document to a nested keyed structure.
func AsStructure(doc any) (map[string]any, error) {
	obj, err := GetTypedValueOf[map[string]any](valueOf(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: expected a keyed structure: %w", ErrInvalidArgument, err)
	}
	return obj, nil
}

func valueOf(v any) func() (any, error) {
	return func() (any, error) { return v, nil }
}
