package otherwise

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/ib-77/otherwise/pkg/rop"
)

// TypeOf returns the type descriptor for T, for WhenInstanceOf and for error
// specs that name a type to construct.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// raise turns an error spec into the error to return. The spec is matched
// the same way a subject is: a producer wins over a ready error, which wins
// over a type to construct.
func (m *Matcher[S, R]) raise(spec any) error {
	// the nested matcher has no throwing clauses and no fallible conditions,
	// so its own error is always nil
	err, _ := New[any, error](spec).
		WhenFunc(isProducer[S], func(v any, _ ...any) error { return m.produce(v) }).
		WhenFunc(isError, func(v any, _ ...any) error { return v.(error) }).
		WhenFunc(isType, func(v any, _ ...any) error { return construct(v.(reflect.Type)) }).
		OtherwiseFunc(func(v any, _ ...any) error {
			panic(errors.Wrapf(ErrInvalidErrorSpec, "%T", v))
		})
	return err
}

func isProducer[S any](spec any) bool {
	switch spec.(type) {
	case func(S, ...any) error, func(S) error, func() error:
		return !rop.IsNil(spec)
	}
	return false
}

func isError(spec any) bool {
	_, ok := spec.(error)
	return ok && !rop.IsNil(spec)
}

func isType(spec any) bool {
	t, ok := spec.(reflect.Type)
	return ok && t != nil
}

func (m *Matcher[S, R]) produce(spec any) error {
	var err error
	switch fn := spec.(type) {
	case func(S, ...any) error:
		err = fn(m.subject, m.context...)
	case func(S) error:
		err = fn(m.subject)
	case func() error:
		err = fn()
	}

	if rop.IsNil(err) {
		panic(errors.Wrap(ErrInvalidErrorSpec, "error producer returned nil"))
	}
	return err
}

// construct builds a default instance of an error type: new(T) for *T, the
// zero value otherwise.
func construct(typ reflect.Type) error {
	var v reflect.Value
	switch typ.Kind() {
	case reflect.Interface:
		panic(errors.Wrapf(ErrNotConstructible, "%s is an interface", typ))
	case reflect.Pointer:
		v = reflect.New(typ.Elem())
	default:
		v = reflect.New(typ).Elem()
	}

	err, ok := v.Interface().(error)
	if !ok {
		panic(errors.Wrapf(ErrNotConstructible, "%s does not implement error", typ))
	}
	return err
}
