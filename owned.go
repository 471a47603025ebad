// owned.go — detached snapshot of a rendered error chain.
//
// OwnedChain is the costly counterpart of the borrowed views: construction
// walks the chain once and copies every display string, after which the
// snapshot holds no reference to the source error. It exists for the case the
// borrowed views cannot serve — handing a rendered chain to a different
// goroutine or keeping it past the originating call (async sink workers,
// deferred emission). Once built it is immutable; moving or sharing it needs
// no locking, and Clone gives an independent copy when two owners must each
// mutate-by-replace.
package xgxerrchain

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
)

// OwnedChain is a fully detached copy of an error chain's display strings,
// root first. The zero value is an empty chain rendering "".
type OwnedChain struct {
	chain []string
}

// Owned eagerly renders err's chain into a snapshot: one walk, one string per
// element. It never panics for any acyclic chain; a chain of length 1 yields
// the one-element sequence holding the root's display string, and Owned(nil)
// yields an empty snapshot.
func Owned(err error) *OwnedChain {
	return &OwnedChain{chain: Strings(err)}
}

// Clone returns an independent deep copy of the snapshot.
func (o *OwnedChain) Clone() *OwnedChain {
	return &OwnedChain{chain: slices.Clone(o.chain)}
}

// Strings returns a copy of the per-element display strings, root first
// (copy-on-read: mutating the result does not affect the snapshot).
func (o *OwnedChain) Strings() []string { return slices.Clone(o.chain) }

// Len returns the number of chain elements in the snapshot.
func (o *OwnedChain) Len() int { return len(o.chain) }

// String renders the chain joined by ": ", identical to the inline rendering
// of the error the snapshot was taken from.
func (o *OwnedChain) String() string { return strings.Join(o.chain, ": ") }

// Error is identical to String.
func (o *OwnedChain) Error() string { return o.String() }

// MarshalJSON serializes the snapshot as a JSON array of strings in
// root-to-deepest order. An empty snapshot serializes as [].
func (o *OwnedChain) MarshalJSON() ([]byte, error) {
	s := o.chain
	if s == nil {
		s = []string{}
	}
	return json.Marshal(s)
}

// MarshalText renders the plain-text fallback, identical to String.
func (o *OwnedChain) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// LogValue implements slog.LogValuer with the same dual rendering as
// ArrayChain: array of strings under structured handlers, inline fallback
// under plain-text handlers.
func (o *OwnedChain) LogValue() slog.Value { return slog.AnyValue(ownedValue{o}) }

// ownedValue is the resolved form of OwnedChain.LogValue; see arrayValue.
type ownedValue struct{ o *OwnedChain }

func (v ownedValue) String() string               { return v.o.String() }
func (v ownedValue) MarshalJSON() ([]byte, error) { return v.o.MarshalJSON() }
func (v ownedValue) MarshalText() ([]byte, error) { return v.o.MarshalText() }

var _ slog.LogValuer = (*OwnedChain)(nil)
var _ json.Marshaler = (*OwnedChain)(nil)
