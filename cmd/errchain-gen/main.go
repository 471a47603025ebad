// Package main implements errchain-gen, a code generator that attaches
// chain-aware logging methods to error types. Each configured type gets
// one-line methods delegating to the xgxerrchain renderers, the same shape a
// developer would write by hand:
//
//	//go:generate errchain-gen --type ParseError,StoreError --variant array
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-errchain/internal/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

type options struct {
	configPath string
	pkg        string
	output     string
	types      []string
	variant    string
	sinks      []string
	value      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "errchain-gen",
		Short: "Generate chain-aware logging methods for error types",
		Long: `errchain-gen emits a Go file attaching error-chain logging methods to the
named error types: slog.LogValue delegation always, plus JSON/text marshaling
and zap/zerolog/logr marshalers for the array variant. The tool only emits
delegation code; all chain walking lives in the xgxerrchain package.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			src, err := gen.Generate(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", cfg.Output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d types)\n", cfg.Output, len(cfg.Types))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "yaml config file (replaces the flags below)")
	f.StringVar(&opts.pkg, "package", os.Getenv("GOPACKAGE"), "package name for the generated file (defaults to $GOPACKAGE under go generate)")
	f.StringVar(&opts.output, "output", "", "output file path (default errchain_gen.go)")
	f.StringSliceVar(&opts.types, "type", nil, "error type names to attach methods to")
	f.StringVar(&opts.variant, "variant", "", "rendering variant: inline or array (default inline)")
	f.StringSliceVar(&opts.sinks, "sinks", nil, "target sinks: slog, zap, zerolog, logr (default slog)")
	f.BoolVar(&opts.value, "value", false, "attach methods to value receivers instead of pointer receivers")
	return cmd
}

// resolve builds a validated config from either the yaml file or the flags.
func (o *options) resolve() (gen.Config, error) {
	var cfg gen.Config
	if o.configPath != "" {
		var err error
		cfg, err = gen.LoadConfig(o.configPath)
		if err != nil {
			return gen.Config{}, err
		}
	} else {
		cfg = gen.Config{Package: o.pkg, Output: o.output}
		sinks := make([]gen.Sink, 0, len(o.sinks))
		for _, s := range o.sinks {
			sinks = append(sinks, gen.Sink(s))
		}
		for _, name := range o.types {
			cfg.Types = append(cfg.Types, gen.TypeConfig{
				Name:    name,
				Variant: gen.Variant(o.variant),
				Sinks:   sinks,
				Value:   o.value,
			})
		}
	}
	if err := cfg.Validate(); err != nil {
		return gen.Config{}, err
	}
	return cfg, nil
}
