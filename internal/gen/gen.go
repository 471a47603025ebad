// gen.go — source emission for errchain-gen.
//
// The generator does no chain-walking and no type checking of the target
// package: it mechanically emits one-line delegation methods per configured
// type, the same shape a developer would write by hand against the attach.go
// surface. Output is passed through go/format, so the emitted text only needs
// to be syntactically canonical, not byte-perfect.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
)

const (
	modulePath       = "github.com/xgx-io/xgx-errchain"
	zapchainPath     = modulePath + "/zapchain"
	zerologchainPath = modulePath + "/zerologchain"
	logrchainPath    = modulePath + "/logrchain"
)

// Generate renders the generated file for cfg, which must have been
// validated.
func Generate(cfg Config) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by errchain-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", cfg.Package)
	writeImports(&b, cfg)

	for _, t := range cfg.Types {
		writeType(&b, t)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		// Should not happen for a validated config; surface the raw text to
		// make the fault findable.
		return nil, fmt.Errorf("format generated source: %w\n%s", err, b.String())
	}
	return src, nil
}

func writeImports(b *bytes.Buffer, cfg Config) {
	std := map[string]bool{}
	third := map[string]bool{}
	local := map[string]bool{}

	for _, t := range cfg.Types {
		if t.uses(SinkSlog) {
			std["log/slog"] = true
			local[modulePath] = true
		}
		if t.Variant == VariantArray {
			local[modulePath] = true
		}
		if t.uses(SinkZap) {
			third["go.uber.org/zap/zapcore"] = true
			local[zapchainPath] = true
		}
		if t.uses(SinkZerolog) {
			third["github.com/rs/zerolog"] = true
			local[zerologchainPath] = true
		}
		if t.uses(SinkLogr) {
			local[logrchainPath] = true
		}
	}

	fmt.Fprintf(b, "import (\n")
	first := true
	for _, group := range []map[string]bool{std, third, local} {
		if len(group) == 0 {
			continue
		}
		if !first {
			fmt.Fprintf(b, "\n")
		}
		first = false
		for _, path := range sortedKeys(group) {
			if path == modulePath {
				// The root package name differs from the import path's last
				// element; alias it the way goimports would.
				fmt.Fprintf(b, "\txgxerrchain %q\n", path)
				continue
			}
			fmt.Fprintf(b, "\t%q\n", path)
		}
	}
	fmt.Fprintf(b, ")\n\n")
}

func writeType(b *bytes.Buffer, t TypeConfig) {
	recv := fmt.Sprintf("e *%s", t.Name)
	if t.Value {
		recv = fmt.Sprintf("e %s", t.Name)
	}

	if t.uses(SinkSlog) {
		switch t.Variant {
		case VariantInline:
			fmt.Fprintf(b, "// LogValue renders %s and its cause chain as a single \": \"-joined string.\n", t.Name)
			fmt.Fprintf(b, "func (%s) LogValue() slog.Value { return xgxerrchain.InlineValue(e) }\n\n", recv)
		case VariantArray:
			fmt.Fprintf(b, "// LogValue renders %s and its cause chain as an array of strings under\n", t.Name)
			fmt.Fprintf(b, "// structured handlers, with a \": \"-joined fallback elsewhere.\n")
			fmt.Fprintf(b, "func (%s) LogValue() slog.Value { return xgxerrchain.ArrayValue(e) }\n\n", recv)
		}
	}

	if t.Variant == VariantArray {
		fmt.Fprintf(b, "// MarshalJSON serializes the cause chain of %s as a JSON array of strings.\n", t.Name)
		fmt.Fprintf(b, "func (%s) MarshalJSON() ([]byte, error) { return xgxerrchain.Array(e).MarshalJSON() }\n\n", recv)
		fmt.Fprintf(b, "// MarshalText renders the \": \"-joined fallback form of %s.\n", t.Name)
		fmt.Fprintf(b, "func (%s) MarshalText() ([]byte, error) { return xgxerrchain.Array(e).MarshalText() }\n\n", recv)
	}

	if t.uses(SinkZap) {
		fmt.Fprintf(b, "// MarshalLogArray appends each cause chain element of %s to enc as a string.\n", t.Name)
		fmt.Fprintf(b, "func (%s) MarshalLogArray(enc zapcore.ArrayEncoder) error { return zapchain.AppendChain(enc, e) }\n\n", recv)
	}

	if t.uses(SinkZerolog) {
		fmt.Fprintf(b, "// MarshalZerologArray appends each cause chain element of %s as a string.\n", t.Name)
		fmt.Fprintf(b, "func (%s) MarshalZerologArray(a *zerolog.Array) { zerologchain.Array(e).MarshalZerologArray(a) }\n\n", recv)
	}

	if t.uses(SinkLogr) {
		fmt.Fprintf(b, "// MarshalLog renders the cause chain of %s for logr sinks.\n", t.Name)
		switch t.Variant {
		case VariantInline:
			fmt.Fprintf(b, "func (%s) MarshalLog() any { return logrchain.Inline(e).MarshalLog() }\n\n", recv)
		case VariantArray:
			fmt.Fprintf(b, "func (%s) MarshalLog() any { return logrchain.Array(e).MarshalLog() }\n\n", recv)
		}
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
