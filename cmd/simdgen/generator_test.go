package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fea-lib/simdgen/simd"
)

func testConfig(t *testing.T, dir string) Config {
	t.Helper()

	return Config{
		Input:     writeDataset(t, dir, "intrinsics.xml"),
		OutputDir: filepath.Join(dir, "out"),
		Tiers:     "default",
		Strict:    true,
	}
}

func readHeaders(t *testing.T, dir string) map[string]string {
	t.Helper()

	out := make(map[string]string)
	for _, tier := range simd.DefaultTiers() {
		data, err := os.ReadFile(filepath.Join(dir, tier.Filename()))
		require.NoError(t, err)
		out[tier.Filename()] = string(data)
	}
	return out
}

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)

	require.NoError(t, (&Generator{Config: cfg}).Run())
	headers := readHeaders(t, cfg.OutputDir)
	assert.FileExists(t, cfg.CachePath())

	mmx := headers["simd_api_mmx.hpp"]
	assert.Contains(t, mmx, "\treturn _mm_add_pi16(a.xmm, b.xmm);\n")
	assert.Contains(t, mmx, "/*FEA_FORCEINLINE static void cvt_s2s(__int64 a, m64_i64_t& dst) {")
	assert.Less(t, strings.Index(mmx, " add("), strings.Index(mmx, " cvt_s2s("), "sorted by name")

	sse2 := headers["simd_api_sse2.hpp"]
	assert.Equal(t, 8, strings.Count(sse2, " and_("))
	assert.Equal(t, 8, strings.Count(sse2, " load("))
	assert.Contains(t, sse2, "SEQUENCE\n")
	assert.Contains(t, sse2, "#include \"simd_api_sse.hpp\"")

	sse := headers["simd_api_sse.hpp"]
	assert.NotContains(t, sse, "_mm_cvt_pi2ps")
	assert.Contains(t, sse, "\n#if FEA_32BIT\n/*")
	assert.NotContains(t, headers["simd_api_sse3.hpp"], "_mm_abs_epi8")
}

func TestGeneratorIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)

	// First run builds the cache, the second one reads it.
	require.NoError(t, (&Generator{Config: cfg}).Run())
	first := readHeaders(t, cfg.OutputDir)
	require.FileExists(t, cfg.CachePath())

	require.NoError(t, (&Generator{Config: cfg}).Run())
	assert.Equal(t, first, readHeaders(t, cfg.OutputDir), "cached run differs")

	cfg.NoCache = true
	require.NoError(t, (&Generator{Config: cfg}).Run())
	assert.Equal(t, first, readHeaders(t, cfg.OutputDir), "uncached run differs")
}

func TestGeneratorCheck(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	require.NoError(t, (&Generator{Config: cfg}).Run())

	cfg.Check = true
	var out bytes.Buffer
	require.NoError(t, (&Generator{Config: cfg, Out: &out}).Run())
	assert.Empty(t, out.String())

	sse := filepath.Join(cfg.OutputDir, simd.TierSSE.Filename())
	data, err := os.ReadFile(sse)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "static m128_f32_t add(", "static m128_f32_t plus(", 1)
	require.NoError(t, os.WriteFile(sse, []byte(edited), 0644))

	out.Reset()
	err = (&Generator{Config: cfg, Out: &out}).Run()
	require.ErrorIs(t, err, ErrStaleHeader)
	assert.Contains(t, out.String(), "-FEA_FORCEINLINE static m128_f32_t plus(")
	assert.Contains(t, out.String(), "+FEA_FORCEINLINE static m128_f32_t add(")

	after, err := os.ReadFile(sse)
	require.NoError(t, err)
	assert.Equal(t, edited, string(after), "check mode never writes")
}

func TestGeneratorCheckMissingHeader(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.Check = true

	var out bytes.Buffer
	err := (&Generator{Config: cfg, Out: &out}).Run()
	require.ErrorIs(t, err, ErrStaleHeader)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestGeneratorStrict(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.Tiers = "all"

	// No builtin descriptor covers ssse3 yet.
	err := (&Generator{Config: cfg}).Run()
	var de *DescriptorError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "_mm_abs_epi8", de.Intrinsic)

	cfg.Strict = false
	require.NoError(t, (&Generator{Config: cfg}).Run())
	for _, tier := range simd.AllTiers() {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, tier.Filename()))
	}
}

func TestGeneratorBuildEmptyTiers(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.Tiers = "sse3,avx"
	cfg.Strict = false

	reg, err := (&Generator{Config: cfg}).Build()
	require.NoError(t, err)
	assert.Equal(t, simd.AllTiers()[:simd.TierAVX+1], reg.Tiers())
	assert.Len(t, reg[simd.TierSSE3], 1)
	assert.Empty(t, reg[simd.TierSSE41])
	assert.Empty(t, reg[simd.TierAVX])
}

func TestGeneratorTierGap(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.Tiers = "mmx,sse3"

	require.NoError(t, (&Generator{Config: cfg}).Run())
	for _, tier := range simd.DefaultTiers() {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, tier.Filename()))
		require.NoError(t, err, tier.String())

		prev, ok := tier.Prev()
		if !ok {
			continue
		}
		assert.FileExists(t, filepath.Join(cfg.OutputDir, prev.Filename()))
		assert.Contains(t, string(data), "#include \""+prev.Filename()+"\"")
		assert.Contains(t, string(data), ": public simd_api<"+prev.EnumString()+">")
	}
}

func TestGeneratorHostOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.HostOnly = true

	tiers, err := (&Generator{Config: cfg}).Tiers()
	require.NoError(t, err)
	for _, tier := range tiers {
		assert.True(t, simd.HostSupports(tier), tier.String())
	}
	if simd.HostTier() == simd.TierCount {
		assert.Empty(t, tiers)
	}
}

func TestGeneratorInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"no input", func(c *Config) { c.Input = "" }},
		{"no output", func(c *Config) { c.OutputDir = "" }},
		{"cache flags", func(c *Config) { c.NoCache, c.RefreshCache = true, true }},
		{"bad tier", func(c *Config) { c.Tiers = "neon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, t.TempDir())
			tt.edit(&cfg)
			assert.Error(t, (&Generator{Config: cfg}).Run())
		})
	}
}
