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
	"fmt"
	"sort"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
)

// Table construction helpers. They keep builtinDescriptors to one line per
// intrinsic.

func d(intrinsic, fn string, ret []ir.TypeOption, params ...[]ir.TypeOption) ir.Descriptor {
	return ir.Descriptor{
		Intrinsic: intrinsic,
		Func:      fn,
		Return:    ret,
		Params:    params,
	}
}

func o(opts ...ir.TypeOption) []ir.TypeOption { return opts }

// skip opts an intrinsic out, typically a synonym of another one.
func skip(intrinsic string) ir.Descriptor {
	return ir.Descriptor{Intrinsic: intrinsic}
}

func m32(desc ir.Descriptor) ir.Descriptor {
	desc.M32Bits = true
	return desc
}

func commented(desc ir.Descriptor) ir.Descriptor {
	desc.Commented = true
	return desc
}

// DescriptorTable indexes descriptors by raw intrinsic name.
type DescriptorTable struct {
	byName map[string]ir.Descriptor
}

// NewDescriptorTable builds a table. Two descriptors for the same intrinsic
// are an error.
func NewDescriptorTable(descs []ir.Descriptor) (*DescriptorTable, error) {
	t := &DescriptorTable{byName: make(map[string]ir.Descriptor, len(descs))}
	for _, desc := range descs {
		if desc.Intrinsic == "" {
			return nil, fmt.Errorf("%w: descriptor without intrinsic name (func %q)", ErrDescriptor, desc.Func)
		}
		if _, dup := t.byName[desc.Intrinsic]; dup {
			return nil, descriptorErrorf(desc.Intrinsic, "duplicate descriptor")
		}
		t.byName[desc.Intrinsic] = desc
	}
	return t, nil
}

// BuiltinDescriptors returns the table compiled into simdgen.
func BuiltinDescriptors() (*DescriptorTable, error) {
	return NewDescriptorTable(builtinDescriptors)
}

// Lookup returns a copy of the descriptor of intrinsic.
func (t *DescriptorTable) Lookup(intrinsic string) (ir.Descriptor, bool) {
	desc, ok := t.byName[intrinsic]
	if !ok {
		return ir.Descriptor{}, false
	}
	return desc.Clone(), true
}

// Len returns the number of descriptors, skip entries included.
func (t *DescriptorTable) Len() int {
	return len(t.byName)
}

// Names returns the described intrinsics in ascending order.
func (t *DescriptorTable) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
