// zapchain.go — zap sink adapter for xgx-errchain.
//
// Scope:
//   - Field constructors mapping the inline/structured/owned renderings onto
//     go.uber.org/zap fields.
//   - No chain logic here; everything defers to the core walk and views.
//
// The structured fields use zapcore.ArrayMarshaler, so every zap encoder
// (JSON, console, custom) decides its own array representation; the inline
// fields go through zap.Stringer and stay lazy until encoding.
package zapchain

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxerrchain "github.com/xgx-io/xgx-errchain"
)

// Inline returns a field rendering err's cause chain as one ": "-joined
// string under the implicit "error" key.
func Inline(err error) zap.Field { return InlineKey(xgxerrchain.DefaultKey, err) }

// InlineKey is Inline with a caller-chosen key.
func InlineKey(key string, err error) zap.Field {
	return zap.Stringer(key, xgxerrchain.Inline(err))
}

// Array returns a field rendering err's cause chain as an array of strings,
// one element per chain entry, under the implicit "error" key.
func Array(err error) zap.Field { return ArrayKey(xgxerrchain.DefaultKey, err) }

// ArrayKey is Array with a caller-chosen key.
func ArrayKey(key string, err error) zap.Field {
	return zap.Array(key, chainMarshaler{err: err})
}

// Owned returns a field over a detached snapshot, for records whose encoding
// may happen after the source error is gone (async cores, sampling).
func Owned(o *xgxerrchain.OwnedChain) zap.Field {
	return OwnedKey(xgxerrchain.DefaultKey, o)
}

// OwnedKey is Owned with a caller-chosen key.
func OwnedKey(key string, o *xgxerrchain.OwnedChain) zap.Field {
	return zap.Array(key, ownedMarshaler{o: o})
}

// AppendChain appends each element of err's cause chain to enc as a string,
// root first. Generated MarshalLogArray methods delegate here.
func AppendChain(enc zapcore.ArrayEncoder, err error) error {
	xgxerrchain.Walk(err, func(e error) bool {
		enc.AppendString(e.Error())
		return true
	})
	return nil
}

// chainMarshaler is the borrowed structured view; it must not outlive err.
type chainMarshaler struct{ err error }

func (m chainMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	return AppendChain(enc, m.err)
}

// ownedMarshaler renders a detached snapshot.
type ownedMarshaler struct{ o *xgxerrchain.OwnedChain }

func (m ownedMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, s := range m.o.Strings() {
		enc.AppendString(s)
	}
	return nil
}

var (
	_ zapcore.ArrayMarshaler = chainMarshaler{}
	_ zapcore.ArrayMarshaler = ownedMarshaler{}
)
