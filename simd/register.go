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
	"fmt"
	"strconv"
	"strings"
)

// Element is the lane type of a register wrapper.
type Element int

const (
	F32 Element = iota
	F64
	I8
	U8
	I16
	U16
	I32
	U32
	I64
	U64
)

type elementInfo struct {
	kind   byte   // 'f', 'i' or 'u'
	bits   int    // lane width
	native string // C++ scalar type
}

var elementTable = [...]elementInfo{
	F32: {kind: 'f', bits: 32, native: "float"},
	F64: {kind: 'f', bits: 64, native: "double"},
	I8:  {kind: 'i', bits: 8, native: "char"},
	U8:  {kind: 'u', bits: 8, native: "unsigned char"},
	I16: {kind: 'i', bits: 16, native: "short"},
	U16: {kind: 'u', bits: 16, native: "unsigned short"},
	I32: {kind: 'i', bits: 32, native: "int"},
	U32: {kind: 'u', bits: 32, native: "unsigned int"},
	I64: {kind: 'i', bits: 64, native: "long long"},
	U64: {kind: 'u', bits: 64, native: "unsigned long long"},
}

// IntegerElements lists the integer lane types in overload order.
var IntegerElements = []Element{I8, U8, I16, U16, I32, U32, I64, U64}

// Kind returns 'f', 'i' or 'u'.
func (e Element) Kind() byte { return elementTable[e].kind }

// Bits returns the lane width in bits.
func (e Element) Bits() int { return elementTable[e].bits }

// Native returns the C++ scalar type of one lane, e.g. "unsigned short".
func (e Element) Native() string { return elementTable[e].native }

// Suffix returns the wrapper suffix of the element, e.g. "i16_t".
func (e Element) Suffix() string {
	return string(e.Kind()) + strconv.Itoa(e.Bits()) + "_t"
}

// IsFloat reports whether the lanes are floating point.
func (e Element) IsFloat() bool { return e.Kind() == 'f' }

func (e Element) String() string {
	return string(e.Kind()) + strconv.Itoa(e.Bits())
}

// registerPrefixes maps raw compiler register types to wrapper prefixes.
var registerPrefixes = map[string]string{
	"__m64":   "m64_",
	"__m128":  "m128_",
	"__m128i": "m128_",
	"__m128d": "m128_",
	"__m256":  "m256_",
	"__m256i": "m256_",
	"__m256d": "m256_",
	"__m512":  "m512_",
	"__m512i": "m512_",
	"__m512d": "m512_",
}

// IsRawRegister reports whether raw is a compiler vector register type
// such as "__m128i". Mask types like "__mmask8" are not registers.
func IsRawRegister(raw string) bool {
	_, ok := registerPrefixes[raw]
	return ok
}

// RegisterTypeName returns the fea wrapper type for a raw register holding
// lanes of type elem, e.g. ("__m128i", I32) -> "m128_i32_t".
//
// The raw register must be able to carry the element: f32 lanes need a
// plain float register, f64 lanes a "d" register and integer lanes an "i"
// register or __m64.
func RegisterTypeName(raw string, elem Element) (string, error) {
	prefix, ok := registerPrefixes[raw]
	if !ok {
		return "", fmt.Errorf("%q is not a register type", raw)
	}

	var compatible bool
	switch elem {
	case F32:
		compatible = !strings.ContainsAny(raw[3:], "id")
	case F64:
		compatible = strings.HasSuffix(raw, "d")
	default:
		compatible = strings.HasSuffix(raw, "i") || raw == "__m64"
	}
	if !compatible {
		return "", fmt.Errorf("register %q cannot hold %s lanes", raw, elem)
	}
	return prefix + elem.Suffix(), nil
}

// RegisterType is a parsed wrapper type name such as "m128_u16_t".
type RegisterType struct {
	Width   int // register width in bits
	Element Element
}

// Name returns the wrapper type spelling.
func (r RegisterType) Name() string {
	return "m" + strconv.Itoa(r.Width) + "_" + r.Element.Suffix()
}

// ParseRegisterType recognizes {m64|m128|m256|m512}_{kind}{bits}_t.
func ParseRegisterType(s string) (RegisterType, bool) {
	rest, ok := strings.CutPrefix(s, "m")
	if !ok {
		return RegisterType{}, false
	}
	widthStr, elemStr, ok := strings.Cut(rest, "_")
	if !ok {
		return RegisterType{}, false
	}
	switch widthStr {
	case "64", "128", "256", "512":
	default:
		return RegisterType{}, false
	}
	width, _ := strconv.Atoi(widthStr)
	for e := range elementTable {
		if Element(e).Suffix() == elemStr {
			return RegisterType{Width: width, Element: Element(e)}, true
		}
	}
	return RegisterType{}, false
}

// StripRegisterPrefix removes any "m64_", "m128_", "m256_" or "m512_"
// occurrence from s, leaving the lane spelling ("m128_i8_t const*" ->
// "i8_t const*").
func StripRegisterPrefix(s string) string {
	for _, p := range []string{"m64_", "m128_", "m256_", "m512_"} {
		s = strings.ReplaceAll(s, p, "")
	}
	return s
}
