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
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/beevik/etree"
)

const rootTag = "intrinsics_list"

// cacheIndent keeps leaf text intact so the cache extracts exactly like the
// dataset it was built from.
var cacheIndent = &etree.IndentSettings{Spaces: 2, PreserveLeafWhitespace: true}

// Loader produces the intrinsics XML document from the offline Intrinsics
// Guide export, going through an on-disk cache of the unescaped XML.
//
// The cache is trusted as long as it exists: delete it, or use Refresh,
// after updating the dataset.
type Loader struct {
	Input   string // dataset file
	Cache   string // cache file
	NoCache bool   // never touch the cache
	Refresh bool   // rebuild the cache even if present
	Logger  *slog.Logger
}

// Load returns the parsed document.
func (l *Loader) Load() (*etree.Document, error) {
	log := l.Logger
	if log == nil {
		log = discardLogger()
	}

	if !l.NoCache && !l.Refresh && fileExists(l.Cache) {
		log.Debug("loading xml cache", "path", l.Cache)
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(l.Cache); err != nil {
			return nil, fmt.Errorf("%w: cache '%s': %v", ErrParseXML, l.Cache, err)
		}
		if err := checkRoot(doc); err != nil {
			return nil, fmt.Errorf("cache '%s': %w", l.Cache, err)
		}
		return doc, nil
	}

	raw, err := readDataset(l.Input)
	if err != nil {
		return nil, err
	}
	xmlStr, err := unescapeDataset(raw)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", l.Input, err)
	}
	doc, err := parseDocument(xmlStr)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", l.Input, err)
	}

	if !l.NoCache {
		doc.IndentWithSettings(cacheIndent)
		if err := doc.WriteToFile(l.Cache); err != nil {
			// The in-memory document is still good.
			log.Warn("cache not saved", "path", l.Cache, "error", fmt.Errorf("%w: %v", ErrWriteCache, err))
		} else {
			log.Debug("saved xml cache", "path", l.Cache)
		}
	}
	return doc, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist) && err == nil
}

// readDataset returns the dataset contents. An empty file is an error.
func readDataset(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: '%s': %v", ErrReadSource, path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: '%s' is empty", ErrReadSource, path)
	}
	return string(data), nil
}

// unescapeDataset recovers the XML from the JavaScript string literal the
// Intrinsics Guide ships it in: the text between the first and last double
// quote, with line continuations removed and quotes unescaped.
func unescapeDataset(raw string) (string, error) {
	start := strings.IndexByte(raw, '"')
	end := strings.LastIndexByte(raw, '"')
	if start < 0 || end <= start {
		return "", fmt.Errorf("%w: no quoted payload", ErrParseXML)
	}

	s := raw[start+1 : end]
	s = strings.ReplaceAll(s, `\n\`, "")
	s = strings.ReplaceAll(s, `\"`, `"`)
	return s, nil
}

func parseDocument(xmlStr string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlStr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseXML, err)
	}
	if err := checkRoot(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func checkRoot(doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%w: empty document", ErrParseXML)
	}
	if root.Tag != rootTag {
		return fmt.Errorf("%w: root element is <%s>, want <%s>", ErrParseXML, root.Tag, rootTag)
	}
	return nil
}
