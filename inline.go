// inline.go — single-string rendering of an error chain.
//
// Behavior:
//
//	Inline(err).String() == err.Error()                          // no cause
//	Inline(err).String() == err.Error() + ": " + <cause chain>   // otherwise
//
// Each chain element is joined by the literal ": ", root to deepest, with no
// leading or trailing separator. The rendering is pure: same error, same
// string, every call.
package xgxerrchain

import (
	"log/slog"
	"strings"
)

// DefaultKey is the implicit attribute key the Attr helpers use when the
// caller does not choose one.
const DefaultKey = "error"

// InlineChain is a borrowed view over an error and its cause chain that
// renders as one ": "-joined string. The view holds a reference to the error:
// build it at the logging call site and let it go. Use OwnedChain when the
// rendered chain must outlive the error.
//
// The zero value renders as "".
type InlineChain struct{ err error }

// Inline wraps err in an InlineChain view. No walking or allocation happens
// until the view is rendered.
func Inline(err error) InlineChain { return InlineChain{err: err} }

// String renders the chain joined by ": ", root first.
func (c InlineChain) String() string {
	var b strings.Builder
	writeChain(&b, c.err)
	return b.String()
}

// Error lets the view be used anywhere an error string is expected; it is
// identical to String.
func (c InlineChain) Error() string { return c.String() }

// LogValue implements slog.LogValuer: the chain is emitted as a single string
// value, rendered when the handler processes the record.
func (c InlineChain) LogValue() slog.Value { return slog.StringValue(c.String()) }

// Attr returns a slog attribute holding err's inline chain under the implicit
// "error" key. Rendering is deferred to emission time.
func Attr(err error) slog.Attr { return AttrKey(DefaultKey, err) }

// AttrKey is Attr with a caller-chosen key.
func AttrKey(key string, err error) slog.Attr { return slog.Any(key, Inline(err)) }

// writeChain writes the ": "-joined chain rooted at err. Shared by the inline
// view and the structured views' fallback path so both render identically by
// construction.
func writeChain(b *strings.Builder, err error) {
	first := true
	Walk(err, func(e error) bool {
		if !first {
			b.WriteString(": ")
		}
		first = false
		b.WriteString(e.Error())
		return true
	})
}

var _ slog.LogValuer = InlineChain{}
