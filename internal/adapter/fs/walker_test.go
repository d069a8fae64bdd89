package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWalker_IncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "br-utf8.txt"), "casa\n")
	writeFile(t, filepath.Join(root, "extra", "verbos.txt"), "cantando\n")
	writeFile(t, filepath.Join(root, "skip", "lixo.txt"), "x\n")
	writeFile(t, filepath.Join(root, "notes.md"), "# notes\n")

	w := NewWalker([]string{"**/*.txt"}, []string{"skip/**"})
	files, err := w.Walk(root)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"br-utf8.txt", "extra/verbos.txt"}, rel)
}

func TestWalker_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.list")
	writeFile(t, path, "casa\n")

	files, err := NewWalker(nil, nil).Walk(path)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
	assert.Equal(t, int64(5), files[0].Size)
}

func TestWalker_MissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("casa\r\ncasas\n\n  casaco  \n\nmães"))
	require.NoError(t, err)
	assert.Equal(t, []string{"casa", "casas", "casaco", "mães"}, words)
}

func TestReadWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "br.txt")
	writeFile(t, path, "pão\nmão\n")

	words, err := ReadWordsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pão", "mão"}, words)
}
