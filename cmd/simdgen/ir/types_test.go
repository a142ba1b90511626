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

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fea-lib/simdgen/simd"
)

func TestTypeOptionString(t *testing.T) {
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "to_last_param", ToLastParam.String())
	assert.Equal(t, "overloads", Overloads.String())
	assert.Equal(t, "unknown", TypeOption(-1).String())

	for o := TypeOption(0); o < typeOptionCount; o++ {
		assert.NotEmpty(t, typeOptionNames[o], "option %d has no name", o)
	}
}

func TestTypeOptionElement(t *testing.T) {
	for _, e := range []simd.Element{simd.F32, simd.F64, simd.I8, simd.U8, simd.I16, simd.U16, simd.I32, simd.U32, simd.I64, simd.U64} {
		opt := ElementOption(e)
		got, ok := opt.Element()
		require.True(t, ok, opt.String())
		assert.Equal(t, e, got)
		assert.Equal(t, e.String(), opt.String())
	}

	_, ok := Ptr.Element()
	assert.False(t, ok)
}

func TestArgInfoPassed(t *testing.T) {
	tests := []struct {
		name string
		arg  ArgInfo
		want string
	}{
		{"register", ArgInfo{Name: "a", Type: "m128_f32_t"}, "a.xmm"},
		{"register ref", ArgInfo{Name: "dst", Type: "m64_i64_t&"}, "dst.xmm"},
		{"register ptr", ArgInfo{Name: "p", Type: "m64_f32_t*"}, "&p->xmm"},
		{"scalar", ArgInfo{Name: "imm8", Type: "int"}, "imm8"},
		{"scalar ptr", ArgInfo{Name: "mem_addr", Type: "float const*"}, "mem_addr"},
		{"size_t", ArgInfo{Name: "size", Type: "size_t"}, "size"},
		{"cast", ArgInfo{Name: "a", Type: "long long", Cast: "(__m64)"}, "(__m64)a"},
		{"address", ArgInfo{Name: "mem_addr", Type: "float const&", TakeAddress: true}, "&mem_addr"},
		{"cast address", ArgInfo{Name: "p", Type: "int&", Cast: "(int*)", TakeAddress: true}, "(int*)&p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.arg.Passed())
		})
	}
}

func TestNewArgInfo(t *testing.T) {
	a := NewArgInfo("__m64", "a")
	assert.Equal(t, "__m64", a.Type)
	assert.False(t, a.Relocated())
	assert.Equal(t, "__m64 a", a.Signature())
}

func TestDescriptorClone(t *testing.T) {
	d := Descriptor{
		Intrinsic: "_mm_setzero_si64",
		Func:      "setzero",
		Return:    []TypeOption{Overloads, ToLastParam},
		Params:    [][]TypeOption{{Keep}},
	}
	c := d.Clone()
	c.Return[0] = I8
	c.Params[0][0] = I16

	assert.Equal(t, Overloads, d.Return[0])
	assert.Equal(t, Keep, d.Params[0][0])
	assert.Len(t, d.Slots(), 2)
	assert.False(t, d.Skipped())
	assert.True(t, Descriptor{Intrinsic: "_m_empty"}.Skipped())
}

func TestIntrinInfoSignatureKey(t *testing.T) {
	in := IntrinInfo{
		Return: ArgInfo{Type: "m64_i16_t"},
		Params: []ArgInfo{{Type: "m64_i16_t"}, {Type: "int", Template: true}},
	}
	assert.Equal(t, "m64_i16_t(m64_i16_t,template int)", in.SignatureKey())

	_, ok := in.Output()
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	r := Registry{}
	r.Add(simd.TierSSE2, IntrinInfo{Intrinsic: "_mm_add_pd"})
	r.Add(simd.TierMMX, IntrinInfo{Intrinsic: "_mm_add_pi8"}, IntrinInfo{Intrinsic: "_mm_add_pi16"})

	assert.Equal(t, []simd.Tier{simd.TierMMX, simd.TierSSE2}, r.Tiers())
	assert.Equal(t, 3, r.Len())
}
