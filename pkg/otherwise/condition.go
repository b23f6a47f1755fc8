package otherwise

import (
	"reflect"

	"github.com/pkg/errors"
)

type conditionKind uint8

const (
	conditionLiteral conditionKind = iota
	conditionPredicate
	conditionEqual
)

// Condition decides whether a clause applies to the subject. Any condition
// passed to When is classified into one of these; build one explicitly with
// Is, If, IfTry, Satisfies or Eq when the raw form would be ambiguous, e.g.
// to compare a bool subject against false.
type Condition[S any] struct {
	kind    conditionKind
	literal bool
	pred    func(S) (bool, error)
	target  any
}

// ValueMatcher is anything with a gomega-style Match method. gomega
// matchers satisfy it without an adapter.
type ValueMatcher interface {
	Match(actual any) (success bool, err error)
}

// Is is a condition with a fixed outcome.
func Is[S any](b bool) Condition[S] {
	return Condition[S]{kind: conditionLiteral, literal: b}
}

// If is a condition decided by a predicate on the subject.
func If[S any](pred func(S) bool) Condition[S] {
	if pred == nil {
		panic(errors.Wrap(ErrNilFunc, "If"))
	}
	return IfTry(func(s S) (bool, error) { return pred(s), nil })
}

// IfTry is a condition decided by a predicate that may fail. A failure stops
// the chain and is returned by the terminal call.
func IfTry[S any](pred func(S) (bool, error)) Condition[S] {
	if pred == nil {
		panic(errors.Wrap(ErrNilFunc, "IfTry"))
	}
	return Condition[S]{kind: conditionPredicate, pred: pred}
}

// Satisfies is a condition decided by a ValueMatcher.
func Satisfies[S any](m ValueMatcher) Condition[S] {
	if m == nil {
		panic(errors.Wrap(ErrNilFunc, "Satisfies"))
	}
	return IfTry(func(s S) (bool, error) { return m.Match(s) })
}

// Eq is a condition that holds when the subject equals target.
func Eq[S any](target any) Condition[S] {
	return Condition[S]{kind: conditionEqual, target: target}
}

func (Condition[S]) condition() {}

func (c Condition[S]) holds(subject S, equal func(a, b any) bool) (bool, error) {
	switch c.kind {
	case conditionLiteral:
		return c.literal, nil
	case conditionPredicate:
		return c.pred(subject)
	default:
		return equal(c.target, subject), nil
	}
}

// conditionOf classifies a raw condition. Order matters: an explicit
// Condition wins, then bool, then the supported callable shapes. A Condition
// or func built for another subject type panics; any other value is an
// equality target.
func conditionOf[S any](c any) Condition[S] {
	switch v := c.(type) {
	case Condition[S]:
		return v
	case bool:
		return Is[S](v)
	case func(S) bool:
		return If(v)
	case func(S) (bool, error):
		return IfTry(v)
	case ValueMatcher:
		return Satisfies[S](v)
	}

	if _, ok := c.(interface{ condition() }); ok {
		panic(errors.Wrapf(ErrInvalidCondition, "%T cannot be applied to a %s subject", c, reflect.TypeOf((*S)(nil)).Elem()))
	}

	if c != nil && reflect.TypeOf(c).Kind() == reflect.Func {
		panic(errors.Wrapf(ErrInvalidCondition, "%T cannot be applied to a %s subject", c, reflect.TypeOf((*S)(nil)).Elem()))
	}

	return Eq[S](c)
}
