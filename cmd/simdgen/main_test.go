package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fea-lib/simdgen/simd"
)

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	input := writeDataset(t, dir, "intrinsics.xml")
	outDir := filepath.Join(dir, "include")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--input", input, "-o", outDir, "--tiers", "mmx,sse", "--log-format", "json"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(outDir, simd.TierMMX.Filename()))
	assert.FileExists(t, filepath.Join(outDir, simd.TierSSE.Filename()))
	assert.NoFileExists(t, filepath.Join(outDir, simd.TierSSE2.Filename()))
	assert.Contains(t, stderr.String(), `"msg":"wrote header"`)
}

func TestRootCmdBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--log-format", "xml"})
	assert.Error(t, cmd.Execute())
}

func TestTiersCmd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"tiers", "--tiers", "sse2"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, int(simd.TierCount)+1)
	assert.Equal(t, []string{"TIER", "CPUID", "HEADER", "ENABLED", "HOST"}, strings.Fields(lines[0]))

	sse2 := strings.Fields(lines[1+int(simd.TierSSE2)])
	assert.Equal(t, []string{"sse2", "SSE2", "simd_api_sse2.hpp", "true"}, sse2[:4])
	mmx := strings.Fields(lines[1+int(simd.TierMMX)])
	assert.Equal(t, "true", mmx[3], "tiers below the selection are enabled")
	sse3 := strings.Fields(lines[1+int(simd.TierSSE3)])
	assert.Equal(t, "false", sse3[3])
}
