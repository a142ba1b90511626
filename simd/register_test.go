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

package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTypeName(t *testing.T) {
	tests := []struct {
		raw     string
		elem    Element
		want    string
		wantErr bool
	}{
		{"__m64", I16, "m64_i16_t", false},
		{"__m64", U64, "m64_u64_t", false},
		{"__m128", F32, "m128_f32_t", false},
		{"__m128d", F64, "m128_f64_t", false},
		{"__m128i", I32, "m128_i32_t", false},
		{"__m256i", U8, "m256_u8_t", false},
		{"__m512d", F64, "m512_f64_t", false},
		{"__m128i", F32, "", true},
		{"__m128", F64, "", true},
		{"__m128d", I8, "", true},
		{"__mmask8", I8, "", true},
		{"int", I32, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw+"/"+tt.elem.String(), func(t *testing.T) {
			got, err := RegisterTypeName(tt.raw, tt.elem)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElement(t *testing.T) {
	assert.Equal(t, "i16_t", I16.Suffix())
	assert.Equal(t, "unsigned short", U16.Native())
	assert.Equal(t, "long long", I64.Native())
	assert.Equal(t, byte('u'), U32.Kind())
	assert.Equal(t, 64, F64.Bits())
	assert.True(t, F32.IsFloat())
	assert.False(t, I8.IsFloat())
	assert.Len(t, IntegerElements, 8)
}

func TestParseRegisterType(t *testing.T) {
	tests := []struct {
		in   string
		want RegisterType
		ok   bool
	}{
		{"m64_i16_t", RegisterType{64, I16}, true},
		{"m128_f32_t", RegisterType{128, F32}, true},
		{"m512_u64_t", RegisterType{512, U64}, true},
		{"m96_i16_t", RegisterType{}, false},
		{"m128_s32_t", RegisterType{}, false},
		{"m128_f32_t*", RegisterType{}, false},
		{"size_t", RegisterType{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRegisterType(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.in, got.Name())
			}
		})
	}
}

func TestStripRegisterPrefix(t *testing.T) {
	assert.Equal(t, "i8_t const*", StripRegisterPrefix("m128_i8_t const*"))
	assert.Equal(t, "f64_t", StripRegisterPrefix("m512_f64_t"))
	assert.Equal(t, "unsigned int", StripRegisterPrefix("unsigned int"))
}

func TestIsRawRegister(t *testing.T) {
	assert.True(t, IsRawRegister("__m128i"))
	assert.False(t, IsRawRegister("__mmask16"))
	assert.False(t, IsRawRegister("__m128i const*"))
}
