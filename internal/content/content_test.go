package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltIn(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)

	ids := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"hero", "about", "tech", "projects", "experience", "blog", "contact"}, ids)
	assert.Equal(t, "Mohit Trivedi", p.Owner)
	assert.Len(t, p.Socials, 3)
	assert.Equal(t, "neon-purple", p.Sections[3].Color)
	assert.Contains(t, p.Sections[1].Body, "# About Me")
	assert.Equal(t, 3, p.IndexOf("projects"))
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(`
owner = "Ada"

[[sections]]
id = "intro"
file = "intro.md"

[[sections]]
id = "outro"
title = "Bye"
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intro.md"), []byte("# Hi"), 0644))

	p, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, p.Sections, 2)
	assert.Equal(t, "intro", p.Sections[0].Title, "title falls back to id")
	assert.Equal(t, "# Hi", p.Sections[0].Body)
	assert.Equal(t, "Bye", p.Sections[1].Title)
	assert.Empty(t, p.Sections[1].Body)
}

func TestLoadFSErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{"missing manifest", fstest.MapFS{}, "failed to read sections.toml"},
		{"bad toml", fstest.MapFS{ManifestName: {Data: []byte("[[sections")}}, "failed to parse"},
		{"missing body", fstest.MapFS{ManifestName: {Data: []byte("[[sections]]\nid = \"a\"\nfile = \"a.md\"\n")}}, `failed to read section "a"`},
		{"duplicate id", fstest.MapFS{ManifestName: {Data: []byte("[[sections]]\nid = \"a\"\n[[sections]]\nid = \"a\"\n")}}, "duplicate section id"},
		{"no id", fstest.MapFS{ManifestName: {Data: []byte("[[sections]]\ntitle = \"x\"\n")}}, "has no id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.files)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFSNoSections(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{ManifestName: {Data: []byte(`owner = "x"`)}})
	assert.ErrorIs(t, err, ErrNoSections)
}

func TestRendererWrapsAndCaches(t *testing.T) {
	r := NewRenderer("notty")
	body := "# Title\n\n" + strings.Repeat("word ", 40)

	out, err := r.Render(body, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Greater(t, strings.Count(out, "\n"), 4, "long paragraph is wrapped")

	again, err := r.Render(body, 30)
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Len(t, r.renderers, 1)

	_, err = r.Render(body, 50)
	require.NoError(t, err)
	assert.Len(t, r.renderers, 2)
}
