// array.go — structured (per-cause sequence) rendering of an error chain.
//
// Behavior follows the sink's capability:
//   - Structured sinks (slog JSONHandler, anything that drives json.Marshaler)
//     receive a literal array of strings, one element per chain entry, root
//     first: ["error b","error a","test error"].
//   - Plain-text sinks (slog TextHandler, anything that drives
//     encoding.TextMarshaler or fmt) receive the fallback form, byte-identical
//     to InlineChain's output.
//
// Both paths walk the live chain at emission time; nothing is copied unless
// the caller asks for an OwnedChain.
package xgxerrchain

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// ArrayChain is a borrowed view over an error and its cause chain that renders
// as an ordered sequence of per-element strings where the sink supports
// structured values, and as the inline string where it does not. Like
// InlineChain, it must not outlive the error it references.
type ArrayChain struct{ err error }

// Array wraps err in an ArrayChain view.
func Array(err error) ArrayChain { return ArrayChain{err: err} }

// Strings returns the display string of each chain element, root first. The
// sequence length equals the chain length; nil err yields nil.
func (c ArrayChain) Strings() []string { return Strings(c.err) }

// String renders the fallback form, identical to Inline(err).String().
func (c ArrayChain) String() string {
	var b strings.Builder
	writeChain(&b, c.err)
	return b.String()
}

// Error is identical to String.
func (c ArrayChain) Error() string { return c.String() }

// MarshalJSON serializes the chain as a JSON array of strings in
// root-to-deepest order. A nil err serializes as [].
func (c ArrayChain) MarshalJSON() ([]byte, error) {
	s := Strings(c.err)
	if s == nil {
		s = []string{}
	}
	return json.Marshal(s)
}

// MarshalText renders the plain-text fallback; handlers that cannot emit
// structured values consume the view through this path.
func (c ArrayChain) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// LogValue implements slog.LogValuer. The resolved value is a borrowed
// wrapper (not itself a LogValuer) that structured handlers consume via
// MarshalJSON and plain-text handlers via MarshalText; no copy of the chain
// is made.
func (c ArrayChain) LogValue() slog.Value { return slog.AnyValue(arrayValue(c)) }

// Owned eagerly detaches the chain into an OwnedChain snapshot.
func (c ArrayChain) Owned() *OwnedChain { return Owned(c.err) }

// ArrayAttr returns a slog attribute holding err's structured chain under the
// implicit "error" key.
func ArrayAttr(err error) slog.Attr { return ArrayAttrKey(DefaultKey, err) }

// ArrayAttrKey is ArrayAttr with a caller-chosen key.
func ArrayAttrKey(key string, err error) slog.Attr { return slog.Any(key, Array(err)) }

// arrayValue is the resolved form of ArrayChain.LogValue. It carries the same
// marshaling behavior but is not a slog.LogValuer, so handlers do not resolve
// it again.
type arrayValue ArrayChain

func (v arrayValue) String() string               { return ArrayChain(v).String() }
func (v arrayValue) MarshalJSON() ([]byte, error) { return ArrayChain(v).MarshalJSON() }
func (v arrayValue) MarshalText() ([]byte, error) { return ArrayChain(v).MarshalText() }

var _ slog.LogValuer = ArrayChain{}
var _ json.Marshaler = ArrayChain{}
