package infra

import "reflect"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator
// Assume i is the new key.
//  1. i == j (i-j == 0, return 0)
//  2. i > j (i-j > 0, return 1), turn to right part.
//  3. i < j (i-j < 0, return -1), turn to left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// Comparator is the OrderedKeyComparator for any element type.
// The result follows the same sign convention.
type Comparator[T any] func(i, j T) int64

// OrderedKeyCompare is the natural order comparator of the ordered keys.
// NaN compares greater than every float, NaN included, so keep NaN out
// of the trees.
func OrderedKeyCompare[K OrderedKey](i, j K) int64 {
	if i == j {
		return 0
	} else if i < j {
		return -1
	}
	return 1
}

// ReverseComparator flips the order of cmp.
func ReverseComparator[T any](cmp Comparator[T]) Comparator[T] {
	return func(i, j T) int64 {
		return cmp(j, i)
	}
}

// IsNilValue reports whether v holds no value at all. Only the nillable
// kinds (pointer, interface, map, slice, chan, func) may be nil.
func IsNilValue[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		// nil interface
		return true
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
	}
	return false
}

// IsNillableType reports whether a value of T may be nil.
func IsNillableType[T any]() bool {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	switch typ.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
	}
	return false
}
