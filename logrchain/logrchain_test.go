package logrchain

import (
	"errors"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

type errorA struct{ cause error }

func (e *errorA) Error() string { return "error a" }
func (e *errorA) Unwrap() error { return e.cause }

type errorB struct{ cause error }

func (e *errorB) Error() string { return "error b" }
func (e *errorB) Unwrap() error { return e.cause }

func chain3() error {
	return &errorB{cause: &errorA{cause: errors.New("test error")}}
}

// jsonLine captures one record through funcr's JSON formatter.
func jsonLine(kv ...any) string {
	var got string
	log := funcr.NewJSON(func(obj string) { got = obj }, funcr.Options{})
	log.Info("boom", kv...)
	return got
}

func TestInline(t *testing.T) {
	line := jsonLine("error", Inline(chain3()))
	assert.Contains(t, line, `"error":"error b: error a: test error"`)
}

func TestArray(t *testing.T) {
	line := jsonLine("error", Array(chain3()))
	assert.Contains(t, line, `"error":["error b","error a","test error"]`)
}

func TestArray_SingleElement(t *testing.T) {
	line := jsonLine("error", Array(errors.New("test error")))
	assert.Contains(t, line, `"error":["test error"]`)
}

func TestArray_NilIsEmpty(t *testing.T) {
	line := jsonLine("error", Array(nil))
	assert.Contains(t, line, `"error":[]`)
}
