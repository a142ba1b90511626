package main

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
	"github.com/fea-lib/simdgen/simd"
)

func registryNames(reg ir.Registry) map[simd.Tier][]string {
	out := make(map[simd.Tier][]string)
	for tier, infos := range reg {
		for _, in := range infos {
			out[tier] = append(out[tier], in.Intrinsic)
		}
	}
	return out
}

func TestExtractFilters(t *testing.T) {
	reg := extractFixture(t)

	want := map[simd.Tier][]string{
		simd.TierMMX:  {"_mm_add_pi16", "_mm_empty", "_mm_slli_pi16", "_mm_cvtsi32_si64", "_mm_cvtsi64_m64"},
		simd.TierSSE:  {"_mm_add_ps", "_mm_store_ss", "_mm_extract_pi16", "_mm_cvt_pi2ps", "_mm_loadh_pi"},
		simd.TierSSE2: {"_mm_and_si128", "_mm_load_si128", "_mm_set1_epi64x"},
		simd.TierSSE3: {"_mm_addsub_ps"},
	}
	if diff := cmp.Diff(want, registryNames(reg)); diff != "" {
		t.Errorf("extracted intrinsics mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractEnabledTiersOnly(t *testing.T) {
	reg := extractFixture(t, simd.TierSSE2, simd.TierSSSE3)

	names := registryNames(reg)
	assert.Equal(t, []simd.Tier{simd.TierSSE2, simd.TierSSSE3}, reg.Tiers())
	assert.Equal(t, []string{"_mm_abs_epi8"}, names[simd.TierSSSE3])
}

func TestExtractIntrinsic(t *testing.T) {
	reg := extractFixture(t)

	add := findIntrinsic(t, reg, "_mm_add_pi16")
	want := ir.IntrinInfo{
		CPUID:       "MMX",
		Tier:        simd.TierMMX,
		Intrinsic:   "_mm_add_pi16",
		Description: "Add packed 16-bit integers in \"a\" and \"b\", and store the results in \"dst\".\n",
		Operation:   "FOR j := 0 to 3\n\ti := j*16\n\tdst[i+15:i] := a[i+15:i] + b[i+15:i]\nENDFOR\n",
		Instruction: "paddw mm, mm\n",
		Return:      ir.NewArgInfo("__m64", "dst"),
		Params:      []ir.ArgInfo{ir.NewArgInfo("__m64", "a"), ir.NewArgInfo("__m64", "b")},
	}
	if diff := cmp.Diff(want, add); diff != "" {
		t.Errorf("_mm_add_pi16 mismatch (-want +got):\n%s", diff)
	}

	empty := findIntrinsic(t, reg, "_mm_empty")
	assert.Empty(t, empty.Params, "void parameter marker is dropped")
	assert.Equal(t, "void", empty.Return.RawType)
	assert.Equal(t, "emms\n", empty.Instruction)
	assert.Empty(t, empty.Operation)

	set1 := findIntrinsic(t, reg, "_mm_set1_epi64x")
	assert.Equal(t, "SEQUENCE\n", set1.Instruction)

	load := findIntrinsic(t, reg, "_mm_loadh_pi")
	assert.Equal(t, "__m64 const*", load.Params[1].RawType)
	assert.Equal(t, "mem_addr", load.Params[1].Name)
}

func TestExtractHighestTier(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<intrinsics_list>
<intrinsic name="_mm_both"><CPUID>SSE2</CPUID><CPUID>SSE</CPUID><return type="int"/></intrinsic>
</intrinsics_list>`))

	reg, err := Extract(doc, simd.NewCPUIDSet(simd.DefaultTiers()), nil)
	require.NoError(t, err)
	require.Len(t, reg[simd.TierSSE2], 1)
	assert.Equal(t, "SSE2", reg[simd.TierSSE2][0].CPUID)
}

func TestExtractIntrinsicUnsupportedCPUID(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<intrinsic name="_mm_popcnt_u32"><CPUID>POPCNT</CPUID></intrinsic>`))

	_, err := extractIntrinsic(doc.Root(), simd.NewCPUIDSet(simd.DefaultTiers()))
	require.ErrorIs(t, err, ErrUnsupportedCPUID)
	assert.Contains(t, err.Error(), "_mm_popcnt_u32")
}

func TestSupportedNode(t *testing.T) {
	cpuids := simd.NewCPUIDSet(simd.DefaultTiers())
	tests := []struct {
		name string
		xml  string
		want bool
	}{
		{"plain", `<intrinsic name="_mm_add_ps"><CPUID>SSE</CPUID></intrinsic>`, true},
		{"matching tech", `<intrinsic tech="SSE" name="_mm_add_ps"><CPUID>SSE</CPUID></intrinsic>`, true},
		{"no cpuid", `<intrinsic name="_rdtsc"/>`, false},
		{"half precision", `<intrinsic name="_mm_add_ph"><CPUID>SSE</CPUID></intrinsic>`, false},
		{"unknown tech", `<intrinsic tech="Other" name="_mm_add_ps"><CPUID>SSE</CPUID></intrinsic>`, false},
		{"one disabled cpuid", `<intrinsic name="_mm_x"><CPUID>SSE</CPUID><CPUID>AVX</CPUID></intrinsic>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := etree.NewDocument()
			require.NoError(t, doc.ReadFromString(tt.xml))
			assert.Equal(t, tt.want, supportedNode(doc.Root(), cpuids))
		})
	}
}

func TestCleanDescription(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := cleanDescription(long)
	require.True(t, strings.HasSuffix(got, "\n"))
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), columnLimit, "line %q", line)
		assert.False(t, strings.HasPrefix(line, " ") || strings.HasSuffix(line, " "), "line %q", line)
	}
	assert.Equal(t, strings.Fields(long), strings.Fields(got), "no word is split or lost")

	assert.Equal(t, "first second\n", cleanDescription("first\n\tsecond"))
	assert.Equal(t, "line one\nline two\n", cleanDescription("line one\nline two"))
	assert.Equal(t, "", cleanDescription(""))
}

func TestCleanDescriptionLongWord(t *testing.T) {
	word := strings.Repeat("x", columnLimit+10)
	got := cleanDescription("short " + word + " tail")
	assert.Equal(t, "short\n"+word+"\ntail\n", got)
}

func TestCleanDescriptionFixture(t *testing.T) {
	reg := extractFixture(t)
	for _, tier := range reg.Tiers() {
		for _, in := range reg[tier] {
			for _, line := range strings.Split(strings.TrimSuffix(in.Description, "\n"), "\n") {
				if !strings.Contains(line, " ") {
					continue
				}
				assert.LessOrEqual(t, len(line), columnLimit, "%s: %q", in.Intrinsic, line)
			}
			assert.NotContains(t, in.Description, "\t", in.Intrinsic)
		}
	}
}

func TestCleanOperation(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"\nFOR j\nENDFOR\n\t", "FOR j\nENDFOR\n"},
		{"dst := a", "dst := a\n"},
		{"\ndst := a\n", "dst := a\n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanOperation(tt.in), "%q", tt.in)
	}
}

func TestCleanInstruction(t *testing.T) {
	tests := []struct {
		xml  string
		want string
	}{
		{`<intrinsic><instruction name="PADDW" form="mm, mm"/></intrinsic>`, "paddw mm, mm\n"},
		{`<intrinsic><instruction name="EMMS"/></intrinsic>`, "emms\n"},
		{`<intrinsic sequence="TRUE"><instruction name="PADDW" form="mm, mm"/></intrinsic>`, "SEQUENCE\n"},
		{`<intrinsic/>`, ""},
		{`<intrinsic><instruction name="MOVD" form="mm, r32"/><instruction name="MOVQ"/></intrinsic>`, "movd mm, r32\n"},
	}
	for _, tt := range tests {
		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromString(tt.xml))
		assert.Equal(t, tt.want, cleanInstruction(doc.Root()), tt.xml)
	}
}
