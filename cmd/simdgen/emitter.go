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

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/samber/lo"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
	"github.com/fea-lib/simdgen/simd"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// registerAlias is one xmm_*_t alias of the simd_api structs.
type registerAlias struct {
	Name   string
	Native string
}

// registerAliases lists the default register aliases. ii8 is the signed
// char flavor of i8, which has no lane type of its own.
var registerAliases = func() []registerAlias {
	var out []registerAlias
	for _, e := range []simd.Element{simd.F32, simd.F64, simd.I8, simd.U8, simd.I16, simd.U16, simd.I32, simd.U32, simd.I64, simd.U64} {
		out = append(out, registerAlias{Name: e.String(), Native: e.Native()})
		if e == simd.U8 {
			out = append(out, registerAlias{Name: "ii8", Native: "signed char"})
		}
	}
	return out
}()

// functionView is a wrapper with every template field precomputed.
type functionView struct {
	M32         bool
	Commented   bool
	Description string
	Instruction string
	Operation   string
	Template    string // "template <int imm8>\n" or empty
	ReturnType  string
	Func        string
	Params      string
	Body        string // "return ", "dst.xmm = " or empty
	Intrinsic   string
	Args        string
}

func newFunctionView(in ir.IntrinInfo) functionView {
	v := functionView{
		M32:         in.M32Bits,
		Commented:   in.Commented,
		Description: in.Description,
		Instruction: in.Instruction,
		Operation:   in.Operation,
		ReturnType:  in.Return.Type,
		Func:        in.Func,
		Intrinsic:   in.Intrinsic,
	}

	tmplParams := lo.Filter(in.Params, func(a ir.ArgInfo, _ int) bool { return a.Template })
	if len(tmplParams) > 0 {
		v.Template = "template <" + joinArgs(tmplParams, ir.ArgInfo.Signature) + ">\n"
	}

	sigParams := lo.Filter(in.Params, func(a ir.ArgInfo, _ int) bool {
		return !a.Template && a.Type != "void"
	})
	v.Params = joinArgs(sigParams, ir.ArgInfo.Signature)

	if out, ok := in.Output(); ok {
		v.Body = out.Passed() + " = "
	} else if in.Return.Type != "void" {
		v.Body = "return "
	}

	v.Args = joinArgs(callOrder(in.Params), ir.ArgInfo.Passed)
	return v
}

// callOrder returns the arguments in intrinsic order: the relocated
// parameter goes back to its original index and the output parameter is
// dropped.
func callOrder(params []ir.ArgInfo) []ir.ArgInfo {
	args := slices.Clone(params)
	if i := slices.IndexFunc(args, func(a ir.ArgInfo) bool { return a.Relocated() && !a.Output }); i >= 0 {
		moved := args[i]
		args = slices.Delete(args, i, i+1)
		args = slices.Insert(args, min(moved.OriginalIndex, len(args)), moved)
	}
	return lo.Filter(args, func(a ir.ArgInfo, _ int) bool { return !a.Output })
}

func joinArgs(args []ir.ArgInfo, f func(ir.ArgInfo) string) string {
	return strings.Join(lo.Map(args, func(a ir.ArgInfo, _ int) string { return f(a) }), ", ")
}

// RenderFunction writes the C++ wrapper of in.
func RenderFunction(w io.Writer, in ir.IntrinInfo) error {
	return templates.ExecuteTemplate(w, "function.tmpl", newFunctionView(in))
}

// headerView feeds header.tmpl.
type headerView struct {
	API       string
	Version   string
	Prev      *simd.Tier // nil for the first tier
	Root      bool       // emit the unspecialized simd_api template
	M32       bool       // wrap the contents in FEA_32BIT
	Aliases   []registerAlias
	Functions []functionView
}

// RenderHeader returns the complete header of tier. infos must already be
// sorted.
func RenderHeader(tier simd.Tier, infos []ir.IntrinInfo) ([]byte, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("render header: invalid tier %d", tier)
	}

	view := headerView{
		API:       tier.String(),
		Version:   tier.EnumString(),
		Root:      tier == simd.TierMMX,
		M32:       tier == simd.TierMMX,
		Aliases:   registerAliases,
		Functions: lo.Map(infos, func(in ir.IntrinInfo, _ int) functionView { return newFunctionView(in) }),
	}
	if prev, ok := tier.Prev(); ok {
		view.Prev = &prev
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "header.tmpl", view); err != nil {
		return nil, fmt.Errorf("render %s: %w", tier.Filename(), err)
	}
	return buf.Bytes(), nil
}

// WriteHeaders renders and writes one header per tier of reg into dir. A
// tier that fails is logged and does not stop the others.
func WriteHeaders(dir string, reg ir.Registry, logger *slog.Logger) error {
	if logger == nil {
		logger = discardLogger()
	}

	var errs []error
	for _, tier := range reg.Tiers() {
		path := filepath.Join(dir, tier.Filename())
		data, err := RenderHeader(tier, reg[tier])
		if err == nil {
			err = os.WriteFile(path, data, 0644)
		}
		if err != nil {
			logger.Error("header not written", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("'%s': %w", path, err))
			continue
		}
		logger.Info("wrote header", "path", path, "functions", len(reg[tier]))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrWriteHeader, errors.Join(errs...))
	}
	return nil
}
