package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnescapeDataset(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "continuations and quotes",
			raw:  "var x = \"<a b=\\\"1\\\">\\n\\\n</a>\";",
			want: "<a b=\"1\">\n</a>",
		},
		{
			name: "text outside the quotes is dropped",
			raw:  "prefix \"<a/>\" suffix",
			want: "<a/>",
		},
		{name: "no quotes", raw: "<a/>", wantErr: true},
		{name: "single quote", raw: "\"<a/>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unescapeDataset(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrParseXML)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnescapeGuideSample(t *testing.T) {
	xmlStr, err := unescapeDataset(fixture(t, "guide.js"))
	require.NoError(t, err)

	doc, err := parseDocument(xmlStr)
	require.NoError(t, err)
	intrins := doc.Root().SelectElements("intrinsic")
	require.Len(t, intrins, 1)
	assert.Equal(t, "_mm_add_pi16", intrins[0].SelectAttrValue("name", ""))
	assert.Equal(t, `Add packed 16-bit integers in "a" and "b", and store the results in "dst".`,
		intrins[0].SelectElement("description").Text())
}

func TestLoaderWritesAndReadsCache(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{
		Input: writeDataset(t, dir, "intrinsics.xml"),
		Cache: filepath.Join(dir, cacheFilename),
	}

	doc, err := l.Load()
	require.NoError(t, err)
	require.FileExists(t, l.Cache)
	fresh := len(doc.Root().SelectElements("intrinsic"))

	// The cache must now win over the dataset.
	require.NoError(t, os.WriteFile(l.Input, []byte("garbage"), 0644))
	doc, err = l.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Root().SelectElements("intrinsic"), fresh)
}

func TestLoaderNoCache(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{
		Input:   writeDataset(t, dir, "intrinsics.xml"),
		Cache:   filepath.Join(dir, cacheFilename),
		NoCache: true,
	}

	_, err := l.Load()
	require.NoError(t, err)
	assert.NoFileExists(t, l.Cache)
}

func TestLoaderRefreshCache(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(dir, cacheFilename)
	require.NoError(t, os.WriteFile(cache, []byte("<intrinsics_list/>"), 0644))

	l := &Loader{Input: writeDataset(t, dir, "intrinsics.xml"), Cache: cache}
	doc, err := l.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Root().SelectElements("intrinsic"), "stale cache is trusted")

	l.Refresh = true
	doc, err = l.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Root().SelectElements("intrinsic"))

	l.Refresh = false
	doc, err = l.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Root().SelectElements("intrinsic"), "refresh rewrites the cache")
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	tests := []struct {
		name  string
		input string
		cache string
		want  error
	}{
		{"missing dataset", filepath.Join(dir, "missing.js"), "", ErrReadSource},
		{"empty dataset", write("empty.js", ""), "", ErrReadSource},
		{"no payload", write("nopayload.js", "var data_js;"), "", ErrParseXML},
		{"malformed xml", write("bad.js", `var d = "<intrinsics_list><intrinsic>";`), "", ErrParseXML},
		{"wrong root", write("root.js", `var d = "<intrinsics/>";`), "", ErrParseXML},
		{"malformed cache", write("ok.js", `var d = "<intrinsics_list/>";`), write("cache.xml", "<intrinsics_list>"), ErrParseXML},
		{"cache with wrong root", write("ok2.js", `var d = "<intrinsics_list/>";`), write("cache2.xml", "<list/>"), ErrParseXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Loader{Input: tt.input, Cache: tt.cache, NoCache: tt.cache == ""}
			_, err := l.Load()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoaderCacheWriteFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{
		Input: writeDataset(t, dir, "intrinsics.xml"),
		Cache: filepath.Join(dir, "missing", "dir", cacheFilename),
	}

	doc, err := l.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Root().SelectElements("intrinsic"))
	assert.NoFileExists(t, l.Cache)
}
