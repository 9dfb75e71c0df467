package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
	if _, err := os.Stat(filepath.Join(root, "testdata")); err != nil {
		t.Fatalf("expected testdata under %s: %v", root, err)
	}
}
