package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum map[string]T
	values []T
}

// New registers a value of the enum type T and returns it unchanged, so it can
// be used directly in a var declaration.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	t := v.Type()
	if _, ok := enumManager[t.Name()]; !ok {
		enumManager[t.Name()] = &enum[T]{toEnum: make(map[string]T)}
	}

	e := enumManager[t.Name()].(*enum[T])
	if _, ok := e.toEnum[v.String()]; !ok {
		e.toEnum[v.String()] = value
		e.values = append(e.values, value)
	}

	return value
}

// ToEnum parses s into a registered value of T.
func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(*enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// All returns every registered value of T in registration order.
func All[T comparable]() []T {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return nil
	}

	values := e.(*enum[T]).values
	result := make([]T, len(values))
	copy(result, values)
	return result
}
