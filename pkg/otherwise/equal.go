package otherwise

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// DeepEqual compares a and b structurally, unexported fields included.
// Values of different dynamic types are never equal.
func DeepEqual(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// LooseEqual is the default equality for raw-value conditions. Numbers are
// compared by value regardless of their Go kind, so 42 matches int64(42) and
// 42.0. An integer equals a float only when the float is whole and the two
// are the same number exactly; everything else falls back to DeepEqual.
func LooseEqual(a, b any) bool {
	if eq, ok := numericEqual(a, b); ok {
		return eq
	}
	return DeepEqual(a, b)
}

type number struct {
	i    int64
	u    uint64
	f    float64
	kind reflect.Kind // Int, Uint or Float64
}

func numberOf(v any) (number, bool) {
	if v == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int(), kind: reflect.Int}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{u: rv.Uint(), kind: reflect.Uint}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), kind: reflect.Float64}, true
	}
	return number{}, false
}

func numericEqual(a, b any) (equal bool, ok bool) {
	x, okA := numberOf(a)
	y, okB := numberOf(b)
	if !okA || !okB {
		return false, false
	}

	switch {
	case x.kind == reflect.Float64 && y.kind == reflect.Float64:
		return x.f == y.f, true
	case x.kind == reflect.Float64:
		return wholeEqual(x.f, y), true
	case y.kind == reflect.Float64:
		return wholeEqual(y.f, x), true
	case x.kind == reflect.Int && y.kind == reflect.Int:
		return x.i == y.i, true
	case x.kind == reflect.Uint && y.kind == reflect.Uint:
		return x.u == y.u, true
	case x.kind == reflect.Int:
		return x.i >= 0 && uint64(x.i) == y.u, true
	default:
		return y.i >= 0 && uint64(y.i) == x.u, true
	}
}

// wholeEqual compares a float with an integer without rounding the integer
// through float64.
func wholeEqual(f float64, n number) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}
	if n.kind == reflect.Int {
		if f < -(1<<63) || f >= 1<<63 {
			return false
		}
		return int64(f) == n.i
	}
	if f < 0 || f >= 1<<64 {
		return false
	}
	return uint64(f) == n.u
}
