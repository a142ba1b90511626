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

package main

import "github.com/fea-lib/simdgen/cmd/simdgen/ir"

// builtinDescriptors lists the wrapper recipe of every intrinsic of the
// enabled tiers, grouped by tier and sorted by intrinsic name. Intrinsics of
// later tiers are added here as fea gains their register types.
var builtinDescriptors = []ir.Descriptor{
	// MMX
	d("_mm_add_pi16", "add", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_add_pi32", "add", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_add_pi8", "add", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_adds_pi16", "adds", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_adds_pi8", "adds", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_adds_pu16", "adds", o(ir.U16), o(ir.U16), o(ir.U16)),
	d("_mm_adds_pu8", "adds", o(ir.U8), o(ir.U8), o(ir.U8)),
	d("_mm_and_si64", "and_", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_andnot_si64", "andnot", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_cmpeq_pi16", "cmpeq", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_cmpeq_pi32", "cmpeq", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_cmpeq_pi8", "cmpeq", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_cmpgt_pi16", "cmpgt", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_cmpgt_pi32", "cmpgt", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_cmpgt_pi8", "cmpgt", o(ir.I8), o(ir.I8), o(ir.I8)),
	commented(d("_mm_cvtm64_si64", "cvt_s2s", o(ir.Keep, ir.ToLastParam), o(ir.I64))),
	d("_mm_cvtsi32_si64", "cvt_s2s", o(ir.I64, ir.ToLastParam), o(ir.I32)),
	commented(d("_mm_cvtsi64_m64", "cvt_s2s", o(ir.I64, ir.ToLastParam), o(ir.Keep))),
	d("_mm_cvtsi64_si32", "cvt_s2s", o(ir.I32, ir.ToLastParam), o(ir.I64)),
	d("_mm_empty", "empty", o(ir.Keep)),
	d("_mm_madd_pi16", "madd", o(ir.I32), o(ir.I16), o(ir.I16)),
	d("_mm_mulhi_pi16", "mulhi", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_mullo_pi16", "mullo", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_or_si64", "or_", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_packs_pi16", "packs", o(ir.I8), o(ir.I16), o(ir.I16)),
	d("_mm_packs_pi32", "packs", o(ir.I16), o(ir.I32), o(ir.I32)),
	d("_mm_packs_pu16", "packs", o(ir.U8), o(ir.U16), o(ir.U16)),
	d("_mm_set1_pi16", "set1", o(ir.I16, ir.ToLastParam), o(ir.I16)),
	d("_mm_set1_pi32", "set1", o(ir.I32, ir.ToLastParam), o(ir.I32)),
	d("_mm_set1_pi8", "set1", o(ir.I8, ir.ToLastParam), o(ir.I8)),
	d("_mm_set_pi16", "set", o(ir.I16, ir.ToLastParam), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_set_pi32", "set", o(ir.I32, ir.ToLastParam), o(ir.I32), o(ir.I32)),
	d("_mm_set_pi8", "set", o(ir.I8, ir.ToLastParam), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_setr_pi16", "setr", o(ir.I16, ir.ToLastParam), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_setr_pi32", "setr", o(ir.I32, ir.ToLastParam), o(ir.I32), o(ir.I32)),
	d("_mm_setr_pi8", "setr", o(ir.I8, ir.ToLastParam), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_setzero_si64", "setzero", o(ir.Overloads, ir.ToLastParam)),
	d("_mm_sll_pi16", "sll", o(ir.I16), o(ir.I16), o(ir.I64)),
	d("_mm_sll_pi32", "sll", o(ir.I32), o(ir.I32), o(ir.I64)),
	d("_mm_sll_si64", "sll", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_slli_pi16", "slli", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_slli_pi32", "slli", o(ir.I32), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_slli_si64", "slli", o(ir.I64), o(ir.I64), o(ir.I32, ir.Template)),
	d("_mm_sra_pi16", "sra", o(ir.I16), o(ir.I16), o(ir.I64)),
	d("_mm_sra_pi32", "sra", o(ir.I32), o(ir.I32), o(ir.I64)),
	d("_mm_srai_pi16", "srai", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_srai_pi32", "srai", o(ir.I32), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_srl_pi16", "srl", o(ir.I16), o(ir.I16), o(ir.I64)),
	d("_mm_srl_pi32", "srl", o(ir.I32), o(ir.I32), o(ir.I64)),
	d("_mm_srl_si64", "srl", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_srli_pi16", "srli", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_srli_pi32", "srli", o(ir.I32), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_srli_si64", "srli", o(ir.I64), o(ir.I64), o(ir.I32, ir.Template)),
	d("_mm_sub_pi16", "sub", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_sub_pi32", "sub", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_sub_pi8", "sub", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_subs_pi16", "subs", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_subs_pi8", "subs", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_subs_pu16", "subs", o(ir.U16), o(ir.U16), o(ir.U16)),
	d("_mm_subs_pu8", "subs", o(ir.U8), o(ir.U8), o(ir.U8)),
	d("_mm_unpackhi_pi16", "unpackhi", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_unpackhi_pi32", "unpackhi", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_unpackhi_pi8", "unpackhi", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_unpacklo_pi16", "unpacklo", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_unpacklo_pi32", "unpacklo", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_unpacklo_pi8", "unpacklo", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_xor_si64", "xor_", o(ir.I64), o(ir.I64), o(ir.I64)),

	// MMX synonyms and unsupported spellings.
	skip("_m_empty"),
	skip("_m_from_int"),
	skip("_m_from_int64"),
	skip("_m_packssdw"),
	skip("_m_packsswb"),
	skip("_m_packuswb"),
	skip("_m_paddb"),
	skip("_m_paddd"),
	skip("_m_paddsb"),
	skip("_m_paddsw"),
	skip("_m_paddusb"),
	skip("_m_paddusw"),
	skip("_m_paddw"),
	skip("_m_pand"),
	skip("_m_pandn"),
	skip("_m_pcmpeqb"),
	skip("_m_pcmpeqd"),
	skip("_m_pcmpeqw"),
	skip("_m_pcmpgtb"),
	skip("_m_pcmpgtd"),
	skip("_m_pcmpgtw"),
	skip("_m_pmaddwd"),
	skip("_m_pmulhw"),
	skip("_m_pmullw"),
	skip("_m_por"),
	skip("_m_pslld"),
	skip("_m_pslldi"),
	skip("_m_psllq"),
	skip("_m_psllqi"),
	skip("_m_psllw"),
	skip("_m_psllwi"),
	skip("_m_psrad"),
	skip("_m_psradi"),
	skip("_m_psraw"),
	skip("_m_psrawi"),
	skip("_m_psrld"),
	skip("_m_psrldi"),
	skip("_m_psrlq"),
	skip("_m_psrlqi"),
	skip("_m_psrlw"),
	skip("_m_psrlwi"),
	skip("_m_psubb"),
	skip("_m_psubd"),
	skip("_m_psubsb"),
	skip("_m_psubsw"),
	skip("_m_psubusb"),
	skip("_m_psubusw"),
	skip("_m_psubw"),
	skip("_m_punpckhbw"),
	skip("_m_punpckhdq"),
	skip("_m_punpckhwd"),
	skip("_m_punpcklbw"),
	skip("_m_punpckldq"),
	skip("_m_punpcklwd"),
	skip("_m_pxor"),
	skip("_m_to_int"),
	skip("_m_to_int64"),

	// SSE
	d("_mm_add_ps", "add", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_add_ss", "add_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_and_ps", "and_", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_andnot_ps", "andnot", o(ir.F32), o(ir.F32), o(ir.F32)),
	m32(d("_mm_avg_pu16", "avg", o(ir.U16), o(ir.U16), o(ir.U16))),
	m32(d("_mm_avg_pu8", "avg", o(ir.U8), o(ir.U8), o(ir.U8))),
	d("_mm_cmpeq_ps", "cmpeq", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpeq_ss", "cmpeq_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpge_ps", "cmpge", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpge_ss", "cmpge_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpgt_ps", "cmpgt", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpgt_ss", "cmpgt_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmple_ps", "cmple", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmple_ss", "cmple_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmplt_ps", "cmplt", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmplt_ss", "cmplt_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpneq_ps", "cmpneq", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpneq_ss", "cmpneq_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpnge_ps", "cmpnge", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpnge_ss", "cmpnge_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpngt_ps", "cmpngt", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpngt_ss", "cmpngt_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpnle_ps", "cmpnle", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpnle_ss", "cmpnle_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpnlt_ps", "cmpnlt", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpnlt_ss", "cmpnlt_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpord_ps", "cmpord", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpord_ss", "cmpord_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpunord_ps", "cmpunord", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_cmpunord_ss", "cmpunord_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_comieq_ss", "comieq", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_comige_ss", "comige", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_comigt_ss", "comigt", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_comile_ss", "comile", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_comilt_ss", "comilt", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_comineq_ss", "comineq", o(ir.Bool), o(ir.F32), o(ir.F32)),
	m32(d("_mm_cvtpi16_ps", "cvt_p2p", o(ir.F32, ir.ToLastParam), o(ir.I16))),
	m32(d("_mm_cvtpi32_ps", "cvt_p2p", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.I32))),
	m32(d("_mm_cvtpi32x2_ps", "cvt_px22p", o(ir.F32, ir.ToLastParam), o(ir.I32), o(ir.I32))),
	m32(d("_mm_cvtpi8_ps", "cvt_p2p", o(ir.F32, ir.ToLastParam), o(ir.I8))),
	m32(d("_mm_cvtps_pi16", "cvt_p2p", o(ir.I16, ir.ToLastParam), o(ir.F32))),
	m32(d("_mm_cvtps_pi32", "cvt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F32))),
	m32(d("_mm_cvtps_pi8", "cvt_p2p", o(ir.I8, ir.ToLastParam), o(ir.F32))),
	m32(d("_mm_cvtpu16_ps", "cvt_p2p", o(ir.F32, ir.ToLastParam), o(ir.U16))),
	m32(d("_mm_cvtpu8_ps", "cvt_p2p", o(ir.F32, ir.ToLastParam), o(ir.U8))),
	d("_mm_cvtsi32_ss", "cvt_s2s", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.I32)),
	d("_mm_cvtsi64_ss", "cvt_s2s", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.Keep)),
	d("_mm_cvtss_f32", "cvt_s2s", o(ir.F32, ir.ToLastParam), o(ir.F32)),
	d("_mm_cvtss_si32", "cvt_s2s", o(ir.I32, ir.ToLastParam), o(ir.F32)),
	d("_mm_cvtss_si64", "cvt_s2s", o(ir.Keep, ir.ToLastParam), o(ir.F32)),
	m32(d("_mm_cvttps_pi32", "cvtt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F32))),
	d("_mm_cvttss_si32", "cvtt_s2s", o(ir.I32, ir.ToLastParam), o(ir.F32)),
	d("_mm_cvttss_si64", "cvtt_s2s", o(ir.Keep, ir.ToLastParam), o(ir.F32)),
	d("_mm_div_ps", "div", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_div_ss", "div_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	m32(d("_mm_extract_pi16", "extract", o(ir.I32), o(ir.I16), o(ir.I32, ir.Template))),
	d("_mm_free", "free", o(ir.Keep), o(ir.KeepType, ir.Ptr)),
	d("_MM_GET_EXCEPTION_MASK", "get_exception_mask", o(ir.U32)),
	d("_MM_GET_EXCEPTION_STATE", "get_exception_state", o(ir.U32)),
	d("_MM_GET_FLUSH_ZERO_MODE", "get_flush_zero_mode", o(ir.U32)),
	d("_MM_GET_ROUNDING_MODE", "get_rounding_mode", o(ir.U32)),
	d("_mm_getcsr", "getcsr", o(ir.U32)),
	m32(d("_mm_insert_pi16", "insert", o(ir.I16), o(ir.I16), o(ir.I32), o(ir.I32, ir.Template))),
	d("_mm_load1_ps", "load1", o(ir.F32, ir.ToLastParam), o(ir.F32, ir.ConstRef, ir.TakeAddress)),
	d("_mm_load_ps", "load", o(ir.F32, ir.ToLastParam), o(ir.F32, ir.ConstPtr)),
	d("_mm_load_ps1", "load_p1", o(ir.F32, ir.ToLastParam), o(ir.F32, ir.ConstRef, ir.TakeAddress)),
	d("_mm_load_ss", "load_s", o(ir.F32, ir.ToLastParam), o(ir.F32, ir.ConstRef, ir.TakeAddress)),
	d("_mm_loadh_pi", "loadh", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.F32, ir.ConstPtr, ir.RegToCpp)),
	d("_mm_loadl_pi", "loadl", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.F32, ir.ConstPtr, ir.RegToCpp)),
	d("_mm_loadr_ps", "loadr", o(ir.F32, ir.ToLastParam), o(ir.F32, ir.ConstPtr)),
	d("_mm_loadu_ps", "loadu", o(ir.F32, ir.ToLastParam), o(ir.F32, ir.ConstPtr)),
	d("_mm_malloc", "malloc", o(ir.KeepType, ir.Ptr), o(ir.Keep), o(ir.Keep)),
	m32(d("_mm_maskmove_si64", "maskmove", o(ir.Keep), o(ir.Overloads), o(ir.U8), o(ir.Overloads, ir.Ptr, ir.Cast))),
	m32(d("_mm_max_pi16", "max", o(ir.I16), o(ir.I16), o(ir.I16))),
	d("_mm_max_ps", "max", o(ir.F32), o(ir.F32), o(ir.F32)),
	m32(d("_mm_max_pu8", "max", o(ir.U8), o(ir.U8), o(ir.U8))),
	d("_mm_max_ss", "max_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	m32(d("_mm_min_pi16", "min", o(ir.I16), o(ir.I16), o(ir.I16))),
	d("_mm_min_ps", "min", o(ir.F32), o(ir.F32), o(ir.F32)),
	m32(d("_mm_min_pu8", "min", o(ir.U8), o(ir.U8), o(ir.U8))),
	d("_mm_min_ss", "min_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_move_ss", "move_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_movehl_ps", "movehl", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_movelh_ps", "movelh", o(ir.F32), o(ir.F32), o(ir.F32)),
	m32(d("_mm_movemask_pi8", "movemask", o(ir.I32), o(ir.I8))),
	d("_mm_movemask_ps", "movemask", o(ir.I32), o(ir.F32)),
	d("_mm_mul_ps", "mul", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_mul_ss", "mul_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	m32(d("_mm_mulhi_pu16", "mulhi", o(ir.U16), o(ir.U16), o(ir.U16))),
	d("_mm_or_ps", "or_", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_prefetch", "prefetch", o(ir.Keep), o(ir.I8, ir.ConstPtr), o(ir.I32, ir.Template)),
	d("_mm_rcp_ps", "rcp", o(ir.F32), o(ir.F32)),
	d("_mm_rcp_ss", "rcp_s", o(ir.F32), o(ir.F32)),
	d("_mm_rsqrt_ps", "rsqrt", o(ir.F32), o(ir.F32)),
	d("_mm_rsqrt_ss", "rsqrt_s", o(ir.F32), o(ir.F32)),
	m32(d("_mm_sad_pu8", "sad", o(ir.U16), o(ir.U8), o(ir.U8))),
	d("_mm_set1_ps", "set1", o(ir.F32, ir.ToLastParam), o(ir.F32)),
	d("_MM_SET_EXCEPTION_MASK", "set_exception_mask", o(ir.Keep), o(ir.U32)),
	d("_MM_SET_EXCEPTION_STATE", "set_exception_state", o(ir.Keep), o(ir.U32)),
	d("_MM_SET_FLUSH_ZERO_MODE", "set_flush_zero_mode", o(ir.Keep), o(ir.U32)),
	d("_mm_set_ps", "set", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_set_ps1", "set_p1", o(ir.F32, ir.ToLastParam), o(ir.F32)),
	d("_MM_SET_ROUNDING_MODE", "set_rounding_mode", o(ir.Keep), o(ir.U32)),
	d("_mm_set_ss", "set_s", o(ir.F32, ir.ToLastParam), o(ir.F32)),
	d("_mm_setcsr", "setcsr", o(ir.Keep), o(ir.U32)),
	d("_mm_setr_ps", "setr", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_setzero_ps", "setzero", o(ir.F32, ir.ToLastParam)),
	d("_mm_sfence", "sfence", o(ir.Keep)),
	m32(d("_mm_shuffle_pi16", "shuffle", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template))),
	d("_mm_shuffle_ps", "shuffle", o(ir.F32), o(ir.F32), o(ir.F32), o(ir.U32, ir.Template)),
	d("_mm_sqrt_ps", "sqrt", o(ir.F32), o(ir.F32)),
	d("_mm_sqrt_ss", "sqrt_s", o(ir.F32), o(ir.F32)),
	d("_mm_store1_ps", "store1", o(ir.Keep), o(ir.F32, ir.Ptr, ir.ToLastParam), o(ir.F32)),
	d("_mm_store_ps", "store", o(ir.Keep), o(ir.F32, ir.Ptr, ir.ToLastParam), o(ir.F32)),
	d("_mm_store_ps1", "store_p1", o(ir.Keep), o(ir.F32, ir.Ptr, ir.ToLastParam), o(ir.F32)),
	d("_mm_store_ss", "store_s", o(ir.Keep), o(ir.F32, ir.Ref, ir.TakeAddress, ir.ToLastParam), o(ir.F32)),
	d("_mm_storeh_pi", "storeh", o(ir.Keep), o(ir.F32, ir.Ptr, ir.RegToCpp, ir.ToLastParam), o(ir.F32)),
	d("_mm_storel_pi", "storel", o(ir.Keep), o(ir.F32, ir.Ptr, ir.RegToCpp, ir.ToLastParam), o(ir.F32)),
	d("_mm_storer_ps", "storer", o(ir.Keep), o(ir.F32, ir.Ptr, ir.ToLastParam), o(ir.F32)),
	d("_mm_storeu_ps", "storeu", o(ir.Keep), o(ir.F32, ir.Ptr, ir.ToLastParam), o(ir.F32)),
	m32(d("_mm_stream_pi", "stream", o(ir.Keep), o(ir.I64, ir.Ptr, ir.ToLastParam), o(ir.I64))),
	d("_mm_stream_ps", "stream", o(ir.Keep), o(ir.F32, ir.Ptr, ir.ToLastParam), o(ir.F32)),
	d("_mm_sub_ps", "sub", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_sub_ss", "sub_s", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_MM_TRANSPOSE4_PS", "transpose4", o(ir.Keep), o(ir.F32, ir.Ref), o(ir.F32, ir.Ref), o(ir.F32, ir.Ref), o(ir.F32, ir.Ref)),
	d("_mm_ucomieq_ss", "ucomieq", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_ucomige_ss", "ucomige", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_ucomigt_ss", "ucomigt", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_ucomile_ss", "ucomile", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_ucomilt_ss", "ucomilt", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_ucomineq_ss", "ucomineq", o(ir.Bool), o(ir.F32), o(ir.F32)),
	d("_mm_undefined_ps", "undefined", o(ir.F32, ir.ToLastParam)),
	d("_mm_unpackhi_ps", "unpackhi", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_unpacklo_ps", "unpacklo", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_xor_ps", "xor_", o(ir.F32), o(ir.F32), o(ir.F32)),

	// SSE synonyms and unsupported spellings.
	skip("_m_maskmovq"),
	skip("_m_pavgb"),
	skip("_m_pavgw"),
	skip("_m_pextrw"),
	skip("_m_pinsrw"),
	skip("_m_pmaxsw"),
	skip("_m_pmaxub"),
	skip("_m_pminsw"),
	skip("_m_pminub"),
	skip("_m_pmovmskb"),
	skip("_m_pmulhuw"),
	skip("_m_psadbw"),
	skip("_m_pshufw"),
	skip("_mm_cvt_pi2ps"),
	skip("_mm_cvt_ps2pi"),
	skip("_mm_cvt_si2ss"),
	skip("_mm_cvt_ss2si"),
	skip("_mm_cvtt_ps2pi"),
	skip("_mm_cvtt_ss2si"),

	// SSE2
	d("_mm_add_epi16", "add", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_add_epi32", "add", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_add_epi64", "add", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_add_epi8", "add", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_add_pd", "add", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_add_sd", "add_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	m32(d("_mm_add_si64", "add", o(ir.I64), o(ir.I64), o(ir.I64))),
	d("_mm_adds_epi16", "adds", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_adds_epi8", "adds", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_adds_epu16", "adds", o(ir.U16), o(ir.U16), o(ir.U16)),
	d("_mm_adds_epu8", "adds", o(ir.U8), o(ir.U8), o(ir.U8)),
	d("_mm_and_pd", "and_", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_and_si128", "and_", o(ir.Overloads), o(ir.Overloads), o(ir.Overloads)),
	d("_mm_andnot_pd", "andnot", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_andnot_si128", "andnot", o(ir.Overloads), o(ir.Overloads), o(ir.Overloads)),
	d("_mm_avg_epu16", "avg", o(ir.U16), o(ir.U16), o(ir.U16)),
	d("_mm_avg_epu8", "avg", o(ir.U8), o(ir.U8), o(ir.U8)),
	d("_mm_bslli_si128", "bslli", o(ir.Overloads), o(ir.Overloads), o(ir.I32, ir.Template)),
	d("_mm_bsrli_si128", "bsrli", o(ir.Overloads), o(ir.Overloads), o(ir.I32, ir.Template)),
	d("_mm_castpd_ps", "cast", o(ir.F32, ir.ToLastParam), o(ir.F64)),
	d("_mm_castpd_si128", "cast", o(ir.Overloads, ir.ToLastParam), o(ir.F64)),
	d("_mm_castps_pd", "cast", o(ir.F64, ir.ToLastParam), o(ir.F32)),
	d("_mm_castps_si128", "cast", o(ir.Overloads, ir.ToLastParam), o(ir.F32)),
	d("_mm_castsi128_pd", "cast", o(ir.F64, ir.ToLastParam), o(ir.Overloads)),
	d("_mm_castsi128_ps", "cast", o(ir.F32, ir.ToLastParam), o(ir.Overloads)),
	d("_mm_clflush", "clflush", o(ir.Keep), o(ir.KeepType, ir.ConstPtr)),
	d("_mm_cmpeq_epi16", "cmpeq", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_cmpeq_epi32", "cmpeq", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_cmpeq_epi8", "cmpeq", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_cmpeq_pd", "cmpeq", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpeq_sd", "cmpeq_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpge_pd", "cmpge", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpge_sd", "cmpge_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpgt_epi16", "cmpgt", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_cmpgt_epi32", "cmpgt", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_cmpgt_epi8", "cmpgt", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_cmpgt_pd", "cmpgt", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpgt_sd", "cmpgt_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmple_pd", "cmple", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmple_sd", "cmple_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmplt_epi16", "cmplt", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_cmplt_epi32", "cmplt", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_cmplt_epi8", "cmplt", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_cmplt_pd", "cmplt", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmplt_sd", "cmplt_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpneq_pd", "cmpneq", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpneq_sd", "cmpneq_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpnge_pd", "cmpnge", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpnge_sd", "cmpnge_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpngt_pd", "cmpngt", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpngt_sd", "cmpngt_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpnle_pd", "cmpnle", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpnle_sd", "cmpnle_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpnlt_pd", "cmpnlt", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpnlt_sd", "cmpnlt_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpord_pd", "cmpord", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpord_sd", "cmpord_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpunord_pd", "cmpunord", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_cmpunord_sd", "cmpunord_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_comieq_sd", "comieq", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_comige_sd", "comige", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_comigt_sd", "comigt", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_comile_sd", "comile", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_comilt_sd", "comilt", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_comineq_sd", "comineq", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_cvtepi32_pd", "cvt_p2p", o(ir.F64, ir.ToLastParam), o(ir.I32)),
	d("_mm_cvtepi32_ps", "cvt_p2p", o(ir.F32, ir.ToLastParam), o(ir.I32)),
	d("_mm_cvtpd_epi32", "cvt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F64)),
	m32(d("_mm_cvtpd_pi32", "cvt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F64))),
	d("_mm_cvtpd_ps", "cvt_p2p", o(ir.F32, ir.ToLastParam), o(ir.F64)),
	m32(d("_mm_cvtpi32_pd", "cvt_p2p", o(ir.F64, ir.ToLastParam), o(ir.I32))),
	d("_mm_cvtps_epi32", "cvt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F32)),
	d("_mm_cvtps_pd", "cvt_p2p", o(ir.F64, ir.ToLastParam), o(ir.F32)),
	d("_mm_cvtsd_f64", "cvt_s2s", o(ir.F64, ir.ToLastParam), o(ir.F64)),
	d("_mm_cvtsd_si32", "cvt_s2s", o(ir.I32, ir.ToLastParam), o(ir.F64)),
	d("_mm_cvtsd_si64", "cvt_s2s", o(ir.Keep, ir.ToLastParam), o(ir.F64)),
	d("_mm_cvtsd_ss", "cvt_s2s", o(ir.F32, ir.ToLastParam), o(ir.F32), o(ir.F64)),
	d("_mm_cvtsi128_si32", "cvt_s2s", o(ir.I32, ir.ToLastParam), o(ir.I32)),
	d("_mm_cvtsi128_si64", "cvt_s2s", o(ir.Keep, ir.ToLastParam), o(ir.I64)),
	d("_mm_cvtsi32_sd", "cvt_s2s", o(ir.F64, ir.ToLastParam), o(ir.F64), o(ir.I32)),
	d("_mm_cvtsi32_si128", "cvt_s2s", o(ir.I32, ir.ToLastParam), o(ir.I32)),
	d("_mm_cvtsi64_sd", "cvt_s2s", o(ir.F64, ir.ToLastParam), o(ir.F64), o(ir.Keep)),
	d("_mm_cvtsi64_si128", "cvt_s2s", o(ir.I64, ir.ToLastParam), o(ir.Keep)),
	d("_mm_cvtss_sd", "cvt_s2s", o(ir.F64, ir.ToLastParam), o(ir.F64), o(ir.F32)),
	d("_mm_cvttpd_epi32", "cvtt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F64)),
	m32(d("_mm_cvttpd_pi32", "cvtt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F64))),
	d("_mm_cvttps_epi32", "cvtt_p2p", o(ir.I32, ir.ToLastParam), o(ir.F32)),
	d("_mm_cvttsd_si32", "cvtt_s2s", o(ir.I32, ir.ToLastParam), o(ir.F64)),
	d("_mm_cvttsd_si64", "cvtt_s2s", o(ir.Keep, ir.ToLastParam), o(ir.F64)),
	d("_mm_div_pd", "div", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_div_sd", "div_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_extract_epi16", "extract", o(ir.I32), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_insert_epi16", "insert", o(ir.I16), o(ir.I16), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_lfence", "lfence", o(ir.Keep)),
	d("_mm_load1_pd", "load1", o(ir.F64, ir.ToLastParam), o(ir.F64, ir.ConstRef, ir.TakeAddress)),
	d("_mm_load_pd", "load", o(ir.F64, ir.ToLastParam), o(ir.F64, ir.ConstPtr)),
	d("_mm_load_pd1", "load_p1", o(ir.F64, ir.ToLastParam), o(ir.F64, ir.ConstRef, ir.TakeAddress)),
	d("_mm_load_sd", "load_s", o(ir.F64, ir.ToLastParam), o(ir.F64, ir.ConstRef, ir.TakeAddress)),
	d("_mm_load_si128", "load", o(ir.Overloads, ir.ToLastParam), o(ir.Overloads, ir.ConstPtr, ir.RegToCpp)),
	d("_mm_loadh_pd", "loadh", o(ir.F64, ir.ToLastParam), o(ir.F64), o(ir.F64, ir.ConstPtr)),
	d("_mm_loadl_epi64", "loadl", o(ir.I64, ir.ToLastParam), o(ir.I64, ir.ConstPtr, ir.RegToCpp)),
	d("_mm_loadl_pd", "loadl", o(ir.F64, ir.ToLastParam), o(ir.F64), o(ir.F64, ir.ConstPtr)),
	d("_mm_loadr_pd", "loadr", o(ir.F64, ir.ToLastParam), o(ir.F64, ir.ConstPtr)),
	d("_mm_loadu_pd", "loadu", o(ir.F64, ir.ToLastParam), o(ir.F64, ir.ConstPtr)),
	d("_mm_loadu_si128", "loadu", o(ir.Overloads, ir.ToLastParam), o(ir.Overloads, ir.ConstPtr, ir.RegToCpp)),
	d("_mm_loadu_si16", "loadu_s", o(ir.I16, ir.ToLastParam), o(ir.I16, ir.ConstRef, ir.TakeAddress)),
	d("_mm_loadu_si32", "loadu_s", o(ir.I32, ir.ToLastParam), o(ir.I32, ir.ConstRef, ir.TakeAddress)),
	d("_mm_loadu_si64", "loadu_s", o(ir.I64, ir.ToLastParam), o(ir.I64, ir.ConstRef, ir.TakeAddress)),
	d("_mm_madd_epi16", "madd", o(ir.I32), o(ir.I16), o(ir.I16)),
	d("_mm_maskmoveu_si128", "maskmoveu", o(ir.Keep), o(ir.Overloads), o(ir.U8), o(ir.Overloads, ir.Ptr, ir.Cast)),
	d("_mm_max_epi16", "max", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_max_epu8", "max", o(ir.U8), o(ir.U8), o(ir.U8)),
	d("_mm_max_pd", "max", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_max_sd", "max_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_mfence", "mfence", o(ir.Keep)),
	d("_mm_min_epi16", "min", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_min_epu8", "min", o(ir.U8), o(ir.U8), o(ir.U8)),
	d("_mm_min_pd", "min", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_min_sd", "min_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_move_epi64", "move", o(ir.I64), o(ir.I64)),
	d("_mm_move_sd", "move_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_movemask_epi8", "movemask", o(ir.I32), o(ir.I8)),
	d("_mm_movemask_pd", "movemask", o(ir.I32), o(ir.F64)),
	m32(d("_mm_movepi64_pi64", "mov", o(ir.I64, ir.ToLastParam), o(ir.I64))),
	m32(d("_mm_movpi64_epi64", "mov", o(ir.I64, ir.ToLastParam), o(ir.I64))),
	d("_mm_mul_epu32", "mul_s", o(ir.U64), o(ir.U32), o(ir.U32)),
	d("_mm_mul_pd", "mul", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_mul_sd", "mul_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	m32(d("_mm_mul_su32", "mul_s", o(ir.U64), o(ir.U32), o(ir.U32))),
	d("_mm_mulhi_epi16", "mulhi", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_mulhi_epu16", "mulhi", o(ir.U16), o(ir.U16), o(ir.U16)),
	d("_mm_mullo_epi16", "mullo", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_or_pd", "or_", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_or_si128", "or_", o(ir.Overloads), o(ir.Overloads), o(ir.Overloads)),
	d("_mm_packs_epi16", "packs", o(ir.I8), o(ir.I16), o(ir.I16)),
	d("_mm_packs_epi32", "packs", o(ir.I16), o(ir.I32), o(ir.I32)),
	d("_mm_packus_epi16", "packus", o(ir.I8), o(ir.I16), o(ir.I16)),
	d("_mm_pause", "pause", o(ir.Keep)),
	d("_mm_sad_epu8", "sad", o(ir.U16), o(ir.U8), o(ir.U8)),
	d("_mm_set1_epi16", "set1", o(ir.I16, ir.ToLastParam), o(ir.I16)),
	d("_mm_set1_epi32", "set1", o(ir.I32, ir.ToLastParam), o(ir.I32)),
	m32(d("_mm_set1_epi64", "set1", o(ir.I64, ir.ToLastParam), o(ir.I64))),
	d("_mm_set1_epi64x", "set1", o(ir.I64, ir.ToLastParam), o(ir.Keep)),
	d("_mm_set1_epi8", "set1", o(ir.I8, ir.ToLastParam), o(ir.I8)),
	d("_mm_set1_pd", "set1", o(ir.F64, ir.ToLastParam), o(ir.F64)),
	d("_mm_set_epi16", "set", o(ir.I16, ir.ToLastParam), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_set_epi32", "set", o(ir.I32, ir.ToLastParam), o(ir.I32), o(ir.I32), o(ir.I32), o(ir.I32)),
	m32(d("_mm_set_epi64", "set", o(ir.I64, ir.ToLastParam), o(ir.I64), o(ir.I64))),
	d("_mm_set_epi64x", "set", o(ir.I64, ir.ToLastParam), o(ir.Keep), o(ir.Keep)),
	d("_mm_set_epi8", "set", o(ir.I8, ir.ToLastParam), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_set_pd", "set", o(ir.F64, ir.ToLastParam), o(ir.F64), o(ir.F64)),
	d("_mm_set_pd1", "set_p1", o(ir.F64, ir.ToLastParam), o(ir.F64)),
	d("_mm_set_sd", "set_s", o(ir.F64, ir.ToLastParam), o(ir.F64)),
	d("_mm_setr_epi16", "setr", o(ir.I16, ir.ToLastParam), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_setr_epi32", "setr", o(ir.I32, ir.ToLastParam), o(ir.I32), o(ir.I32), o(ir.I32), o(ir.I32)),
	m32(d("_mm_setr_epi64", "setr", o(ir.I64, ir.ToLastParam), o(ir.I64), o(ir.I64))),
	d("_mm_setr_epi8", "setr", o(ir.I8, ir.ToLastParam), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_setr_pd", "setr", o(ir.F64, ir.ToLastParam), o(ir.F64), o(ir.F64)),
	d("_mm_setzero_pd", "setzero", o(ir.F64, ir.ToLastParam)),
	d("_mm_setzero_si128", "setzero", o(ir.Overloads, ir.ToLastParam)),
	d("_mm_shuffle_epi32", "shuffle", o(ir.I32), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_shuffle_pd", "shuffle", o(ir.F64), o(ir.F64), o(ir.F64), o(ir.I32, ir.Template)),
	d("_mm_shufflehi_epi16", "shufflehi", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_shufflelo_epi16", "shufflelo", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_sll_epi16", "sll", o(ir.I16), o(ir.I16), o(ir.I64)),
	d("_mm_sll_epi32", "sll", o(ir.I32), o(ir.I32), o(ir.I64)),
	d("_mm_sll_epi64", "sll", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_slli_epi16", "slli", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_slli_epi32", "slli", o(ir.I32), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_slli_epi64", "slli", o(ir.I64), o(ir.I64), o(ir.I32, ir.Template)),
	d("_mm_sqrt_pd", "sqrt", o(ir.F64), o(ir.F64)),
	d("_mm_sqrt_sd", "sqrt_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_sra_epi16", "sra", o(ir.I16), o(ir.I16), o(ir.I64)),
	d("_mm_sra_epi32", "sra", o(ir.I32), o(ir.I32), o(ir.I64)),
	d("_mm_srai_epi16", "srai", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_srai_epi32", "srai", o(ir.I32), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_srl_epi16", "srl", o(ir.I16), o(ir.I16), o(ir.I64)),
	d("_mm_srl_epi32", "srl", o(ir.I32), o(ir.I32), o(ir.I64)),
	d("_mm_srl_epi64", "srl", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_srli_epi16", "srli", o(ir.I16), o(ir.I16), o(ir.I32, ir.Template)),
	d("_mm_srli_epi32", "srli", o(ir.I32), o(ir.I32), o(ir.I32, ir.Template)),
	d("_mm_srli_epi64", "srli", o(ir.I64), o(ir.I64), o(ir.I32, ir.Template)),
	d("_mm_store1_pd", "store1", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_store_pd", "store", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_store_pd1", "store_p1", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_store_sd", "store_s", o(ir.Keep), o(ir.F64, ir.Ref, ir.TakeAddress, ir.ToLastParam), o(ir.F64)),
	d("_mm_store_si128", "store", o(ir.Keep), o(ir.Overloads, ir.Ptr, ir.RegToCpp, ir.ToLastParam), o(ir.Overloads)),
	d("_mm_storeh_pd", "storeh", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_storel_epi64", "storel", o(ir.Keep), o(ir.I64, ir.Ptr, ir.RegToCpp, ir.ToLastParam), o(ir.I64)),
	d("_mm_storel_pd", "storel", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_storer_pd", "storer", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_storeu_pd", "storeu", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_storeu_si128", "storeu", o(ir.Keep), o(ir.Overloads, ir.Ptr, ir.RegToCpp, ir.ToLastParam), o(ir.Overloads)),
	d("_mm_storeu_si16", "storeu_s", o(ir.Keep), o(ir.I16, ir.Ref, ir.TakeAddress, ir.ToLastParam), o(ir.I16)),
	d("_mm_storeu_si32", "storeu_s", o(ir.Keep), o(ir.I32, ir.Ref, ir.TakeAddress, ir.ToLastParam), o(ir.I32)),
	d("_mm_storeu_si64", "storeu_s", o(ir.Keep), o(ir.I64, ir.Ref, ir.TakeAddress, ir.ToLastParam), o(ir.I64)),
	d("_mm_stream_pd", "stream", o(ir.Keep), o(ir.F64, ir.Ptr, ir.ToLastParam), o(ir.F64)),
	d("_mm_stream_si128", "stream", o(ir.Keep), o(ir.Overloads, ir.Ptr, ir.RegToCpp, ir.ToLastParam), o(ir.Overloads)),
	d("_mm_stream_si32", "stream_s", o(ir.Keep), o(ir.I32, ir.Ref, ir.TakeAddress, ir.ToLastParam), o(ir.I32)),
	d("_mm_stream_si64", "stream_s", o(ir.Keep), o(ir.KeepType, ir.Ref, ir.TakeAddress, ir.ToLastParam), o(ir.Keep)),
	d("_mm_sub_epi16", "sub", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_sub_epi32", "sub", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_sub_epi64", "sub", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_sub_epi8", "sub", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_sub_pd", "sub", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_sub_sd", "sub_s", o(ir.F64), o(ir.F64), o(ir.F64)),
	m32(d("_mm_sub_si64", "sub", o(ir.I64), o(ir.I64), o(ir.I64))),
	d("_mm_subs_epi16", "subs", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_subs_epi8", "subs", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_subs_epu16", "subs", o(ir.U16), o(ir.U16), o(ir.U16)),
	d("_mm_subs_epu8", "subs", o(ir.U8), o(ir.U8), o(ir.U8)),
	d("_mm_ucomieq_sd", "ucomieq", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_ucomige_sd", "ucomige", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_ucomigt_sd", "ucomigt", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_ucomile_sd", "ucomile", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_ucomilt_sd", "ucomilt", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_ucomineq_sd", "ucomineq", o(ir.Bool), o(ir.F64), o(ir.F64)),
	d("_mm_undefined_pd", "undefined", o(ir.F64, ir.ToLastParam)),
	d("_mm_undefined_si128", "undefined", o(ir.Overloads, ir.ToLastParam)),
	d("_mm_unpackhi_epi16", "unpackhi", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_unpackhi_epi32", "unpackhi", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_unpackhi_epi64", "unpackhi", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_unpackhi_epi8", "unpackhi", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_unpackhi_pd", "unpackhi", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_unpacklo_epi16", "unpacklo", o(ir.I16), o(ir.I16), o(ir.I16)),
	d("_mm_unpacklo_epi32", "unpacklo", o(ir.I32), o(ir.I32), o(ir.I32)),
	d("_mm_unpacklo_epi64", "unpacklo", o(ir.I64), o(ir.I64), o(ir.I64)),
	d("_mm_unpacklo_epi8", "unpacklo", o(ir.I8), o(ir.I8), o(ir.I8)),
	d("_mm_unpacklo_pd", "unpacklo", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_xor_pd", "xor_", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_xor_si128", "xor_", o(ir.Overloads), o(ir.Overloads), o(ir.Overloads)),

	// SSE2 synonyms and unsupported spellings.
	skip("_mm_cvtsd_si64x"),
	skip("_mm_cvtsi128_si64x"),
	skip("_mm_cvtsi64x_sd"),
	skip("_mm_cvtsi64x_si128"),
	skip("_mm_cvttsd_si64x"),
	skip("_mm_slli_si128"),
	skip("_mm_srli_si128"),

	// SSE3
	d("_mm_addsub_pd", "addsub", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_addsub_ps", "addsub", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_hadd_pd", "hadd", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_hadd_ps", "hadd", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_hsub_pd", "hsub", o(ir.F64), o(ir.F64), o(ir.F64)),
	d("_mm_hsub_ps", "hsub", o(ir.F32), o(ir.F32), o(ir.F32)),
	d("_mm_lddqu_si128", "lddqu", o(ir.Overloads, ir.ToLastParam), o(ir.Overloads, ir.ConstPtr, ir.RegToCpp)),
	d("_mm_loaddup_pd", "loaddup", o(ir.F64, ir.ToLastParam), o(ir.F64, ir.ConstPtr)),
	d("_mm_movedup_pd", "movedup", o(ir.F64), o(ir.F64)),
	d("_mm_movehdup_ps", "movehdup", o(ir.F32), o(ir.F32)),
	d("_mm_moveldup_ps", "moveldup", o(ir.F32), o(ir.F32)),
}
