package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poorcene/internal/usecase"
)

// run executes the root command with fresh flag state.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cfgFile, rootDir = "", ""
	queryText, queryJSON, queryCompare, queryRandom = "", false, false, false
	stemTrace, statsJSON, loadIncludes = false, false, nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--dir", dir}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestIndexThenQuery(t *testing.T) {
	dir := t.TempDir()

	out := run(t, dir, "index", "casa", "casas", "casaco")
	assert.Contains(t, out, "casas -> casa")
	assert.FileExists(t, filepath.Join(dir, ".poorcene", "index.db"))

	out = run(t, dir, "query", "-q", "casas", "--json")
	var res usecase.QueryResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"casa", "casas"}, res.Results)
}

func TestLoadWithJSONBackend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "poorcene.yaml"), []byte("storage:\n  backend: json\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "br.txt"), []byte("ação\nações\nmenino\n"), 0644))

	out := run(t, dir, "load")
	assert.Contains(t, out, "Words indexed: 3")
	assert.FileExists(t, filepath.Join(dir, ".poorcene", "index.json"))

	out = run(t, dir, "stats", "--json")
	assert.JSONEq(t, `{"words":3,"stems":2,"list_words":3}`, out)

	out = run(t, dir, "query", "-q", "ação", "--compare", "--json")
	assert.Contains(t, out, `"index_hits": 2`)
}

func TestStemTrace(t *testing.T) {
	out := run(t, t.TempDir(), "stem", "--trace", "felizmente")
	assert.Contains(t, out, "adverb")
	assert.Contains(t, out, "feliz")
}

func TestQueryRequiresWord(t *testing.T) {
	cfgFile, rootDir = "", ""
	queryText, queryRandom = "", false
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--dir", t.TempDir(), "query"})
	assert.Error(t, rootCmd.Execute())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "<1s", formatDuration(500*time.Millisecond))
	assert.Equal(t, "42s", formatDuration(42*time.Second))
	assert.Equal(t, "2m5s", formatDuration(125*time.Second))
	assert.Equal(t, "1h1m", formatDuration(61*time.Minute))
}
