//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory for config, logs and content
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// Page is one markdown section of a test content directory
type Page struct {
	ID    string
	Title string
	Body  string
}

// CreateContentDir writes sections.toml and one markdown file per page
func (tf *TUITestFramework) CreateContentDir(owner string, pages ...Page) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	dir := filepath.Join(tf.workspace, "content")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	manifest := "owner = \"" + owner + "\"\n"
	for _, p := range pages {
		manifest += "\n[[sections]]\n" +
			"id = \"" + p.ID + "\"\n" +
			"title = \"" + p.Title + "\"\n" +
			"file = \"" + p.ID + ".md\"\n"
		if err := os.WriteFile(filepath.Join(dir, p.ID+".md"), []byte(p.Body), 0o644); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "sections.toml"), []byte(manifest), 0o644); err != nil {
		return "", err
	}
	return dir, nil
}
