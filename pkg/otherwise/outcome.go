package otherwise

import "github.com/pkg/errors"

type outcomeKind uint8

const (
	outcomeValue outcomeKind = iota
	outcomeFunc
	outcomeThrow
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeValue:
		return "value"
	case outcomeFunc:
		return "func"
	case outcomeThrow:
		return "throw"
	}
	return "unknown"
}

// outcome is the payload of a clause or a fallback. Nothing in it runs until
// resolve is called, and it runs again on every call.
type outcome[S, R any] struct {
	kind  outcomeKind
	value R
	fn    func(S, ...any) (R, error)
	spec  any
}

func valueOf[S, R any](v R) outcome[S, R] {
	return outcome[S, R]{kind: outcomeValue, value: v}
}

func funcOf[S, R any](fn func(S, ...any) R) outcome[S, R] {
	if fn == nil {
		panic(errors.WithStack(ErrNilFunc))
	}
	return outcome[S, R]{kind: outcomeFunc, fn: func(s S, ctx ...any) (R, error) {
		return fn(s, ctx...), nil
	}}
}

func tryOf[S, R any](fn func(S, ...any) (R, error)) outcome[S, R] {
	if fn == nil {
		panic(errors.WithStack(ErrNilFunc))
	}
	return outcome[S, R]{kind: outcomeFunc, fn: fn}
}

func throwOf[S, R any](spec any) outcome[S, R] {
	return outcome[S, R]{kind: outcomeThrow, spec: spec}
}

func (o outcome[S, R]) resolve(m *Matcher[S, R]) (R, error) {
	switch o.kind {
	case outcomeFunc:
		return o.fn(m.subject, m.context...)
	case outcomeThrow:
		var zero R
		return zero, m.raise(o.spec)
	}
	return o.value, nil
}
