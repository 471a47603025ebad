// chain.go — cause-chain traversal for xgx-errchain.
//
// Scope (tiny core):
//   - Lazy, allocation-free walk over the linear cause chain of an error.
//   - Eager helpers (Len, Strings) feeding the owned snapshot and sink adapters.
//   - No policy, no logging — callers decide how to render the visited chain.
//
// Chain semantics:
//   - The cause relation is the stdlib one: Unwrap() error. The walk starts at
//     the root error itself and follows Unwrap until it returns nil (or is not
//     implemented).
//   - Multi-error containers (Unwrap() []error, e.g. errors.Join) are not part
//     of a LINEAR chain; errors.Unwrap ignores them, so such a node terminates
//     the walk and renders through its own Error() string.
//   - Cyclic chains are a caller contract violation. The walk follows the
//     chain as given and does not detect cycles, so a cyclic Unwrap never
//     terminates. Keep cause graphs acyclic.
package xgxerrchain

import "errors"

// Walk calls visit for each error in the chain rooted at err, in
// root-to-deepest order, starting with err itself. Traversal stops early when
// visit returns false. A nil err is a no-op. Walk allocates nothing by itself;
// each step only reads the Unwrap relation.
func Walk(err error, visit func(error) bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if !visit(e) {
			return
		}
	}
}

// Len returns the number of errors in the chain rooted at err (0 for nil).
func Len(err error) int {
	n := 0
	Walk(err, func(error) bool { n++; return true })
	return n
}

// Strings eagerly collects the Error() string of each chain element in
// root-to-deepest order. It returns nil for a nil err. One allocation per
// element plus the slice; prefer Walk when a single lazy pass suffices.
func Strings(err error) []string {
	if err == nil {
		return nil
	}
	out := make([]string, 0, 4)
	Walk(err, func(e error) bool {
		out = append(out, e.Error())
		return true
	})
	return out
}
