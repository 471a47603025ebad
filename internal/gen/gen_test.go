package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_InlineSlogGolden(t *testing.T) {
	cfg := Config{
		Package: "myerrors",
		Types:   []TypeConfig{{Name: "ParseError"}},
	}
	require.NoError(t, cfg.Validate())

	got, err := Generate(cfg)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("testdata", "inline_slog.go.golden"))
	require.NoError(t, err)
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("generated source mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ArrayAllSinks(t *testing.T) {
	cfg := Config{
		Package: "myerrors",
		Types: []TypeConfig{{
			Name:    "StoreError",
			Variant: VariantArray,
			Sinks:   []Sink{SinkSlog, SinkZap, SinkZerolog, SinkLogr},
		}},
	}
	require.NoError(t, cfg.Validate())

	got, err := Generate(cfg)
	require.NoError(t, err)
	src := string(got)

	assert.Contains(t, src, "// Code generated by errchain-gen. DO NOT EDIT.")
	assert.Contains(t, src, "package myerrors")
	for _, frag := range []string{
		`"log/slog"`,
		`"go.uber.org/zap/zapcore"`,
		`"github.com/rs/zerolog"`,
		`xgxerrchain "github.com/xgx-io/xgx-errchain"`,
		`"github.com/xgx-io/xgx-errchain/zapchain"`,
		`"github.com/xgx-io/xgx-errchain/zerologchain"`,
		`"github.com/xgx-io/xgx-errchain/logrchain"`,
	} {
		assert.Contains(t, src, frag)
	}
	for _, frag := range []string{
		"func (e *StoreError) LogValue() slog.Value { return xgxerrchain.ArrayValue(e) }",
		"func (e *StoreError) MarshalJSON() ([]byte, error) { return xgxerrchain.Array(e).MarshalJSON() }",
		"func (e *StoreError) MarshalText() ([]byte, error) { return xgxerrchain.Array(e).MarshalText() }",
		"func (e *StoreError) MarshalLogArray(enc zapcore.ArrayEncoder) error { return zapchain.AppendChain(enc, e) }",
		"func (e *StoreError) MarshalZerologArray(a *zerolog.Array) { zerologchain.Array(e).MarshalZerologArray(a) }",
		"func (e *StoreError) MarshalLog() any { return logrchain.Array(e).MarshalLog() }",
	} {
		assert.Contains(t, src, frag)
	}
}

func TestGenerate_ValueReceiver(t *testing.T) {
	cfg := Config{
		Package: "myerrors",
		Types:   []TypeConfig{{Name: "CodeError", Value: true}},
	}
	require.NoError(t, cfg.Validate())

	got, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(got),
		"func (e CodeError) LogValue() slog.Value { return xgxerrchain.InlineValue(e) }")
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := Config{
		Package: "myerrors",
		Types: []TypeConfig{
			{Name: "ParseError", Variant: VariantArray, Sinks: []Sink{SinkSlog, SinkZerolog}},
			{Name: "StoreError"},
		},
	}
	require.NoError(t, cfg.Validate())

	first, err := Generate(cfg)
	require.NoError(t, err)
	second, err := Generate(cfg)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(string(first), string(second)))
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "errchain.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "myerrors", cfg.Package)
	assert.Equal(t, "chains_gen.go", cfg.Output)
	require.Len(t, cfg.Types, 2)
	assert.Equal(t, VariantArray, cfg.Types[0].Variant)
	assert.Equal(t, []Sink{SinkSlog, SinkZap}, cfg.Types[0].Sinks)
	// Defaults applied by Validate.
	assert.Equal(t, VariantInline, cfg.Types[1].Variant)
	assert.Equal(t, []Sink{SinkSlog}, cfg.Types[1].Sinks)
}

func TestLoadConfig_UnknownFieldIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: x\nbogus: true\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing package", Config{Types: []TypeConfig{{Name: "E"}}}},
		{"bad package identifier", Config{Package: "my-errors", Types: []TypeConfig{{Name: "E"}}}},
		{"no types", Config{Package: "x"}},
		{"bad type identifier", Config{Package: "x", Types: []TypeConfig{{Name: "Parse Error"}}}},
		{"unknown variant", Config{Package: "x", Types: []TypeConfig{{Name: "E", Variant: "both"}}}},
		{"unknown sink", Config{Package: "x", Types: []TypeConfig{{Name: "E", Sinks: []Sink{"syslog"}}}}},
		{"zap requires array", Config{Package: "x", Types: []TypeConfig{{Name: "E", Sinks: []Sink{SinkZap}}}}},
		{"zerolog requires array", Config{Package: "x", Types: []TypeConfig{{Name: "E", Sinks: []Sink{SinkZerolog}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Config{Package: "x", Types: []TypeConfig{{Name: "E"}}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "errchain_gen.go", cfg.Output)
	assert.Equal(t, VariantInline, cfg.Types[0].Variant)
	assert.Equal(t, []Sink{SinkSlog}, cfg.Types[0].Sinks)
}
