package otherwise

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ib-77/otherwise/pkg/rop"
)

// Matcher resolves a subject against an ordered list of clauses. The first
// clause whose condition holds wins; later clauses are not evaluated.
//
// A Matcher belongs to the expression that built it and is not safe for
// concurrent use.
type Matcher[S, R any] struct {
	subject S
	context []any
	matched bool
	pending outcome[S, R]
	err     error
	clauses int

	equal func(a, b any) bool
	log   zerolog.Logger
	id    uuid.UUID
}

// New creates a matcher for subject. The context values are passed to every
// result, fallback and error-producer callback after the subject.
func New[S, R any](subject S, context ...any) *Matcher[S, R] {
	return &Matcher[S, R]{
		subject: subject,
		context: context,
		equal:   LooseEqual,
		log:     zerolog.Nop(),
	}
}

// Match is New with the result type first, so the subject type is inferred:
//
//	label, err := otherwise.Match[string](code).
//		When(200, "ok").
//		When(404, "missing").
//		Otherwise("unknown")
func Match[R, S any](subject S, context ...any) *Matcher[S, R] {
	return New[S, R](subject, context...)
}

// WithEqual replaces the equality used for raw-value conditions.
func (m *Matcher[S, R]) WithEqual(equal func(a, b any) bool) *Matcher[S, R] {
	if equal == nil {
		panic(errors.Wrap(ErrNilFunc, "WithEqual"))
	}
	m.equal = equal
	return m
}

// WithLogger traces clause matches and resolutions at debug level. Each
// traced matcher gets its own id.
func (m *Matcher[S, R]) WithLogger(log zerolog.Logger) *Matcher[S, R] {
	if m.id == uuid.Nil {
		m.id = uuid.New()
	}
	m.log = log.With().Str("matcher", m.id.String()).Logger()
	return m
}

// ID is the tracing id, uuid.Nil until WithLogger is called.
func (m *Matcher[S, R]) ID() uuid.UUID {
	return m.id
}

func (m *Matcher[S, R]) Subject() S {
	return m.subject
}

func (m *Matcher[S, R]) Context() []any {
	return m.context
}

// Matched reports whether a clause has matched.
func (m *Matcher[S, R]) Matched() bool {
	return m.matched
}

// Err returns the error of a failed condition, if any.
func (m *Matcher[S, R]) Err() error {
	return m.err
}

// When adds a clause resolving to result.
//
// The condition may be a bool, a func(S) bool, a func(S) (bool, error), a
// ValueMatcher, a Condition, or any other value, which is compared to the
// subject. It is evaluated immediately unless an earlier clause matched.
func (m *Matcher[S, R]) When(condition any, result R) *Matcher[S, R] {
	return m.register(condition, valueOf[S](result))
}

// WhenFunc adds a clause resolving to fn(subject, context...).
func (m *Matcher[S, R]) WhenFunc(condition any, fn func(S, ...any) R) *Matcher[S, R] {
	return m.register(condition, funcOf(fn))
}

// WhenTry adds a clause resolving to fn(subject, context...), error included.
func (m *Matcher[S, R]) WhenTry(condition any, fn func(S, ...any) (R, error)) *Matcher[S, R] {
	return m.register(condition, tryOf(fn))
}

// WhenInstanceOf adds a clause that holds when the subject's dynamic type is
// assignable to typ. For an interface typ that means implementing it. A nil
// subject, typed nil pointers included, never matches.
func (m *Matcher[S, R]) WhenInstanceOf(typ reflect.Type, result R) *Matcher[S, R] {
	return m.register(m.instanceOf(typ), valueOf[S](result))
}

func (m *Matcher[S, R]) WhenInstanceOfFunc(typ reflect.Type, fn func(S, ...any) R) *Matcher[S, R] {
	return m.register(m.instanceOf(typ), funcOf(fn))
}

// WhenThrow adds a clause that makes resolution fail. The error spec is
// resolved only when the chain is resolved, on every resolution:
//   - func(S, ...any) error, func(S) error or func() error: called, its
//     error is returned
//   - an error: returned as is
//   - a reflect.Type of an error type (see TypeOf): a new default instance
func (m *Matcher[S, R]) WhenThrow(condition any, errSpec any) *Matcher[S, R] {
	return m.register(condition, throwOf[S, R](errSpec))
}

// Otherwise resolves the chain, returning fallback if nothing matched.
func (m *Matcher[S, R]) Otherwise(fallback R) (R, error) {
	return m.resolve(valueOf[S](fallback))
}

// OtherwiseFunc resolves the chain, returning fn(subject, context...) if
// nothing matched.
func (m *Matcher[S, R]) OtherwiseFunc(fn func(S, ...any) R) (R, error) {
	return m.resolve(funcOf(fn))
}

func (m *Matcher[S, R]) OtherwiseTry(fn func(S, ...any) (R, error)) (R, error) {
	return m.resolve(tryOf(fn))
}

// OtherwiseThrow resolves the chain, failing with errSpec (see WhenThrow) if
// nothing matched. A matched clause is returned as Otherwise would.
func (m *Matcher[S, R]) OtherwiseThrow(errSpec any) (R, error) {
	return m.resolve(throwOf[S, R](errSpec))
}

// Result resolves like Otherwise into a rop.Result.
func (m *Matcher[S, R]) Result(fallback R) rop.Result[R] {
	return rop.From[R](m.Otherwise(fallback))
}

// ResultThrow resolves like OtherwiseThrow into a rop.Result.
func (m *Matcher[S, R]) ResultThrow(errSpec any) rop.Result[R] {
	return rop.From[R](m.OtherwiseThrow(errSpec))
}

func (m *Matcher[S, R]) register(condition any, o outcome[S, R]) *Matcher[S, R] {
	m.clauses++
	if m.matched || m.err != nil {
		return m
	}

	ok, err := conditionOf[S](condition).holds(m.subject, m.equal)
	if err != nil {
		m.err = err
		m.log.Debug().Int("clause", m.clauses).Err(err).Msg("condition failed")
		return m
	}

	if ok {
		m.matched = true
		m.pending = o
		m.log.Debug().Int("clause", m.clauses).Str("outcome", o.kind.String()).Msg("clause matched")
	}

	return m
}

func (m *Matcher[S, R]) resolve(fallback outcome[S, R]) (R, error) {
	if m.err != nil {
		var zero R
		return zero, m.err
	}

	if m.matched {
		m.log.Debug().Str("outcome", m.pending.kind.String()).Msg("resolved by clause")
		return m.pending.resolve(m)
	}

	m.log.Debug().Str("outcome", fallback.kind.String()).Msg("resolved by fallback")
	return fallback.resolve(m)
}

func (m *Matcher[S, R]) instanceOf(typ reflect.Type) bool {
	if typ == nil {
		panic(errors.WithStack(ErrInvalidType))
	}

	subject := any(m.subject)
	if rop.IsNil(subject) {
		return false
	}
	return reflect.TypeOf(subject).AssignableTo(typ)
}
