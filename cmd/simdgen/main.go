// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// simdgen generates the fea SIMD API headers, one per x86 instruction set
// tier, from the offline Intel Intrinsics Guide dataset.
//
// Usage:
//
//	simdgen --input tests_data/intelintrinsicsguide.js --output include/fea/performance
//	simdgen --tiers mmx,sse,sse2 --check
//	simdgen tiers
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fea-lib/simdgen/simd"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:           "simdgen",
		Short:         "Generate the fea SIMD API headers from the Intel Intrinsics Guide",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			logger, err := newLogger(stderr, cfg.LogFormat, cfg.Verbose)
			if err != nil {
				return err
			}
			gen := &Generator{Config: cfg, Logger: logger, Out: stdout}
			return gen.Run()
		},
	}
	bindFlags(cmd.Flags(), &cfg)
	cmd.PersistentFlags().StringVarP(&cfg.Tiers, "tiers", "t", cfg.Tiers, "Comma separated tiers, 'default' or 'all'")
	cmd.AddCommand(newTiersCmd(stdout, &cfg))
	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.Input, "input", "i", cfg.Input, "Intrinsics Guide dataset (JSON wrapped XML)")
	fs.StringVar(&cfg.Cache, "cache", cfg.Cache, "XML cache file (default: next to the input)")
	fs.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "Output directory for the headers")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail on intrinsics without a descriptor")
	fs.BoolVar(&cfg.NoCache, "no-cache", cfg.NoCache, "Neither read nor write the XML cache")
	fs.BoolVar(&cfg.RefreshCache, "refresh-cache", cfg.RefreshCache, "Rebuild the XML cache")
	fs.BoolVar(&cfg.HostOnly, "host-only", cfg.HostOnly, "Only emit tiers supported by this machine")
	fs.BoolVar(&cfg.Check, "check", cfg.Check, "Diff against the existing headers instead of writing")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging")
}

func newTiersCmd(stdout io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the instruction set tiers",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			enabled, err := simd.ParseTiers(cfg.Tiers)
			if err != nil {
				return err
			}
			return printTiers(stdout, enabled)
		},
	}
}

func printTiers(w io.Writer, enabled []simd.Tier) error {
	on := make(map[simd.Tier]bool, len(enabled))
	for _, t := range enabled {
		on[t] = true
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tCPUID\tHEADER\tENABLED\tHOST")
	for _, t := range simd.AllTiers() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%v\n", t, t.CPUID(), t.Filename(), on[t], simd.HostSupports(t))
	}
	return tw.Flush()
}
