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
	"errors"
	"fmt"
)

var (
	// ErrReadSource is returned when the dataset file is missing or empty.
	ErrReadSource = errors.New("could not read source file")

	// ErrParseXML is returned when the dataset or the cache is not
	// well-formed intrinsics XML.
	ErrParseXML = errors.New("could not parse xml")

	// ErrWriteCache is reported when the parsed document cannot be cached.
	// It never aborts a run.
	ErrWriteCache = errors.New("could not write cache")

	// ErrUnsupportedCPUID is returned when an intrinsic's CPUID tag is not
	// an enabled tier.
	ErrUnsupportedCPUID = errors.New("unsupported cpuid")

	// ErrDescriptor is the class of all descriptor table errors.
	ErrDescriptor = errors.New("malformed descriptor")

	// ErrSortKey is returned for a lane type spelling the sorter cannot
	// order, such as "s32_t".
	ErrSortKey = errors.New("unrecognized type in sort key")

	// ErrWriteHeader is returned when one or more headers could not be
	// written.
	ErrWriteHeader = errors.New("could not write header")

	// ErrStaleHeader is returned in check mode when a header on disk
	// differs from the generated one.
	ErrStaleHeader = errors.New("header is out of date")
)

// DescriptorError reports a descriptor that does not match its intrinsic.
// These are bugs in the descriptor table and abort the run.
type DescriptorError struct {
	Intrinsic string
	Reason    string
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("descriptor %s: %s", e.Intrinsic, e.Reason)
}

func (e *DescriptorError) Unwrap() error { return ErrDescriptor }

func descriptorErrorf(intrinsic, format string, args ...any) error {
	return &DescriptorError{Intrinsic: intrinsic, Reason: fmt.Sprintf(format, args...)}
}
