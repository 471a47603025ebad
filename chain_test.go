package xgxerrchain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures shared across the package tests: a two-level wrapping of a
// plain root error, mirroring the canonical "error b: error a: test error"
// chain.

type errorA struct{ cause error }

func (e *errorA) Error() string { return "error a" }
func (e *errorA) Unwrap() error { return e.cause }

type errorB struct{ cause error }

func (e *errorB) Error() string { return "error b" }
func (e *errorB) Unwrap() error { return e.cause }

// chain3 builds errorB → errorA → "test error".
func chain3() error {
	return &errorB{cause: &errorA{cause: errors.New("test error")}}
}

func TestWalk_VisitsRootToDeepest(t *testing.T) {
	var got []string
	Walk(chain3(), func(e error) bool {
		got = append(got, e.Error())
		return true
	})
	assert.Equal(t, []string{"error b", "error a", "test error"}, got)
}

func TestWalk_StopsWhenVisitReturnsFalse(t *testing.T) {
	var got []string
	Walk(chain3(), func(e error) bool {
		got = append(got, e.Error())
		return len(got) < 2
	})
	assert.Equal(t, []string{"error b", "error a"}, got)
}

func TestWalk_NilIsNoOp(t *testing.T) {
	calls := 0
	Walk(nil, func(error) bool { calls++; return true })
	assert.Zero(t, calls)
}

func TestWalk_SingleElement(t *testing.T) {
	var got []string
	Walk(errors.New("test error"), func(e error) bool {
		got = append(got, e.Error())
		return true
	})
	assert.Equal(t, []string{"test error"}, got)
}

func TestWalk_JoinedErrorTerminatesLinearChain(t *testing.T) {
	// errors.Join produces Unwrap() []error, which the linear walk treats as
	// a leaf: it renders through its own Error() string and has no single
	// cause to follow.
	joined := errors.Join(errors.New("one"), errors.New("two"))
	root := fmt.Errorf("wrapper: %w", joined)

	var got []string
	Walk(root, func(e error) bool {
		got = append(got, e.Error())
		return true
	})
	require.Len(t, got, 2)
	assert.Equal(t, "one\ntwo", got[1])
}

func TestLen(t *testing.T) {
	assert.Zero(t, Len(nil))
	assert.Equal(t, 1, Len(errors.New("test error")))
	assert.Equal(t, 3, Len(chain3()))
}

func TestStrings(t *testing.T) {
	assert.Nil(t, Strings(nil))
	assert.Equal(t, []string{"test error"}, Strings(errors.New("test error")))
	assert.Equal(t, []string{"error b", "error a", "test error"}, Strings(chain3()))
}
