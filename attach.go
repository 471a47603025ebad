// attach.go — attaching loggable-value behavior to caller-defined error types.
//
// Two ways to give an error type chain-aware logging without repeating the
// delegation boilerplate:
//
//  1. Delegation from the type's own method, one line per type (the
//     errchain-gen tool under cmd/ emits exactly these):
//
//     func (e *ParseError) LogValue() slog.Value { return xgxerrchain.InlineValue(e) }
//
//  2. Wrapping a value you cannot add methods to:
//
//     logger.Info("save failed", "error", xgxerrchain.Valuer{Err: err})
//
// Neither path walks the chain itself; both defer to the inline/structured
// renderers at emission time.
package xgxerrchain

import "log/slog"

// InlineValue renders err's chain as a single slog string value. Intended for
// one-line LogValue delegation methods on user error types.
func InlineValue(err error) slog.Value { return slog.StringValue(Inline(err).String()) }

// ArrayValue renders err's chain as a structured slog value: an array of
// strings under structured handlers, the inline fallback under plain-text
// handlers. Intended for one-line LogValue delegation methods.
func ArrayValue(err error) slog.Value { return slog.AnyValue(arrayValue{err: err}) }

// Valuer adapts any error into a slog.LogValuer with inline rendering, for
// errors whose types the caller cannot extend.
type Valuer struct{ Err error }

// LogValue implements slog.LogValuer.
func (v Valuer) LogValue() slog.Value { return InlineValue(v.Err) }

// ArrayValuer adapts any error into a slog.LogValuer with structured
// rendering and inline fallback.
type ArrayValuer struct{ Err error }

// LogValue implements slog.LogValuer.
func (v ArrayValuer) LogValue() slog.Value { return ArrayValue(v.Err) }

var (
	_ slog.LogValuer = Valuer{}
	_ slog.LogValuer = ArrayValuer{}
)
