// Package otherwise provides Matcher, a fluent conditional expression: a
// subject is tested against an ordered list of clauses and the chain
// resolves to the result of the first clause that holds, or to a fallback.
//
//	kind, err := otherwise.Match[string](v).
//		WhenInstanceOf(otherwise.TypeOf[int](), "int").
//		WhenInstanceOf(otherwise.TypeOf[fmt.Stringer](), "stringer").
//		WhenThrow(nil, ErrNilValue).
//		Otherwise("other")
//
// Key operations:
// - New/Match: start a matcher for a subject plus optional context values
// - When/WhenFunc/WhenTry: clause with a value, a callback or a fallible callback
// - WhenInstanceOf: clause on the subject's dynamic type
// - WhenThrow: clause that fails the resolution with a lazily built error
// - Otherwise/OtherwiseFunc/OtherwiseTry: resolve with a fallback
// - OtherwiseThrow: resolve or fail with a lazily built error
// - Result/ResultThrow: resolve into a rop.Result
//
// Conditions run when the clause is added and never again; once a clause has
// matched, later clauses are ignored. Results, fallbacks and errors are built
// by the terminal call, every time it is called. Callbacks receive the subject
// followed by the context values; conditions receive only the subject.
//
// Malformed expressions (a func condition of the wrong shape, a nil callback,
// an error spec that cannot produce an error) panic with one of the Err*
// sentinels.
package otherwise
