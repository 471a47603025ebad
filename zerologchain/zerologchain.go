// zerologchain.go — zerolog sink adapter for xgx-errchain.
//
// zerolog speaks marshaler interfaces rather than values, so the adapter
// exposes LogArrayMarshaler/LogObjectMarshaler implementations over the core
// views:
//
//	log.Error().Array("error", zerologchain.Array(err)).Msg("save failed")
//	log.Error().Str("error", zerologchain.Inline(err)).Msg("save failed")
package zerologchain

import (
	"github.com/rs/zerolog"

	xgxerrchain "github.com/xgx-io/xgx-errchain"
)

// Inline renders err's cause chain as one ": "-joined string, for Str fields.
func Inline(err error) string { return xgxerrchain.Inline(err).String() }

// Array returns a marshaler appending one string per chain element, root
// first.
func Array(err error) zerolog.LogArrayMarshaler { return arrayMarshaler{err: err} }

// Object returns a marshaler emitting the inline chain under the implicit
// "error" key, for embedding the rendering as a sub-object.
func Object(err error) zerolog.LogObjectMarshaler { return objectMarshaler{err: err} }

// OwnedArray is Array over a detached snapshot, for events emitted after the
// source error is gone.
func OwnedArray(o *xgxerrchain.OwnedChain) zerolog.LogArrayMarshaler {
	return ownedMarshaler{o: o}
}

type arrayMarshaler struct{ err error }

func (m arrayMarshaler) MarshalZerologArray(a *zerolog.Array) {
	xgxerrchain.Walk(m.err, func(e error) bool {
		a.Str(e.Error())
		return true
	})
}

type objectMarshaler struct{ err error }

func (m objectMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str(xgxerrchain.DefaultKey, Inline(m.err))
}

type ownedMarshaler struct{ o *xgxerrchain.OwnedChain }

func (m ownedMarshaler) MarshalZerologArray(a *zerolog.Array) {
	for _, s := range m.o.Strings() {
		a.Str(s)
	}
}
