// doc.go — package documentation for xgx-errchain
//
// Package xgxerrchain renders error cause chains for structured logging. It is
// the logging adapter sibling of the xgx error core: the core stays policy-free,
// and this module owns the one policy the core refuses to carry — how a chain
// of wrapped errors is presented to a log sink.
//
// Given any error whose causes are reachable through the stdlib Unwrap() error
// relation, the package produces two renderings:
//
//   - Inline: one string, each chain element joined by ": "
//     ("error b: error a: test error")
//   - Structured: an ordered sequence of per-element strings
//     (["error b","error a","test error"]), with an automatic fallback to the
//     inline form when the destination sink does not speak structured values.
//
// # Borrowed vs. Owned
//
// The default views are BORROWED: InlineChain and ArrayChain hold a reference
// to the error and render lazily at emission time, allocating nothing up
// front. They are built per logging call and discarded; never store one beyond
// the error's lifetime.
//
// OwnedChain is the explicit, costlier alternative: construction walks the
// chain once and copies every display string, after which the snapshot is
// fully detached from the source error. Use it when the rendered chain must
// outlive the error or cross a goroutine boundary (async sink workers). The
// cheap path never copies implicitly; detachment is always an explicit call.
//
// # Sinks
//
//   - log/slog is the primary sink: InlineChain renders as a string value,
//     ArrayChain as an array of strings under slog.NewJSONHandler and as the
//     inline fallback under slog.NewTextHandler. The Attr/ArrayAttr helpers
//     attach either under the implicit "error" key.
//   - zapchain, zerologchain and logrchain adapt the same renderings to
//     go.uber.org/zap, github.com/rs/zerolog and github.com/go-logr/logr.
//
// # Attaching Behavior to Your Own Error Types
//
// A type gains chain-aware logging with a one-line delegation method:
//
//	func (e *ParseError) LogValue() slog.Value { return xgxerrchain.ArrayValue(e) }
//
// The errchain-gen tool under cmd/ emits these methods mechanically for a list
// of types; see attach.go for the manual surface.
//
// # Contract and Caveats
//
// The only requirement imposed on error types is the stdlib one: Error()
// string, plus Unwrap() error for types that carry a cause. Multi-error
// containers (Unwrap() []error) terminate the linear chain and render through
// their own Error() string. Cause chains must be acyclic; the walk does not
// detect cycles. Rendering never fails — the only failure surface is the
// sink's own emission, which this package neither wraps nor retries.
package xgxerrchain
