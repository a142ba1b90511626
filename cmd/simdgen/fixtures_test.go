package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
	"github.com/fea-lib/simdgen/simd"
)

// fixture returns one file of testdata/intrinsics.txtar.
func fixture(t *testing.T, name string) string {
	t.Helper()

	ar, err := txtar.ParseFile(filepath.Join("testdata", "intrinsics.txtar"))
	require.NoError(t, err)
	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("fixture %q not found", name)
	return ""
}

// wrapDataset escapes xml the way the Intrinsics Guide ships it, as one
// JavaScript string literal with line continuations.
func wrapDataset(xml string) string {
	s := strings.ReplaceAll(xml, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", "\\n\\\n")
	return "var data_js = \"" + s + "\";\n"
}

// writeDataset writes the wrapped fixture into dir and returns its path.
func writeDataset(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, "intelintrinsicsguide.js")
	require.NoError(t, os.WriteFile(path, []byte(wrapDataset(fixture(t, name))), 0644))
	return path
}

func fixtureDoc(t *testing.T, name string) *etree.Document {
	t.Helper()

	doc, err := parseDocument(fixture(t, name))
	require.NoError(t, err)
	return doc
}

func extractFixture(t *testing.T, tiers ...simd.Tier) ir.Registry {
	t.Helper()

	if len(tiers) == 0 {
		tiers = simd.DefaultTiers()
	}
	reg, err := Extract(fixtureDoc(t, "intrinsics.xml"), simd.NewCPUIDSet(tiers), nil)
	require.NoError(t, err)
	return reg
}

func findIntrinsic(t *testing.T, reg ir.Registry, name string) ir.IntrinInfo {
	t.Helper()

	for _, tier := range reg.Tiers() {
		for _, in := range reg[tier] {
			if in.Intrinsic == name {
				return in
			}
		}
	}
	t.Fatalf("intrinsic %s not found", name)
	return ir.IntrinInfo{}
}

func builtinTable(t *testing.T) *DescriptorTable {
	t.Helper()

	table, err := BuiltinDescriptors()
	require.NoError(t, err)
	return table
}
