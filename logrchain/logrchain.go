// logrchain.go — logr sink adapter for xgx-errchain.
//
// logr exposes structured values through logr.Marshaler; the adapter maps the
// inline rendering to a string and the structured rendering to a []string:
//
//	log.Error(nil, "save failed", "error", logrchain.Array(err))
package logrchain

import (
	"github.com/go-logr/logr"

	xgxerrchain "github.com/xgx-io/xgx-errchain"
)

// Inline returns a marshaler rendering err's cause chain as one ": "-joined
// string.
func Inline(err error) logr.Marshaler { return inlineMarshaler{err: err} }

// Array returns a marshaler rendering err's cause chain as a []string, one
// element per chain entry, root first.
func Array(err error) logr.Marshaler { return arrayMarshaler{err: err} }

type inlineMarshaler struct{ err error }

func (m inlineMarshaler) MarshalLog() any { return xgxerrchain.Inline(m.err).String() }

type arrayMarshaler struct{ err error }

func (m arrayMarshaler) MarshalLog() any {
	s := xgxerrchain.Strings(m.err)
	if s == nil {
		s = []string{}
	}
	return s
}
