package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poorcene/internal/adapter/analyzer"
	"poorcene/internal/adapter/fs"
	"poorcene/internal/adapter/memstore"
	"poorcene/internal/adapter/store"
	"poorcene/internal/adapter/wordlist"
	"poorcene/internal/domain"
	"poorcene/internal/port"
)

// failingStore hands back snap and err from every call.
type failingStore struct {
	snap domain.Snapshot
	err  error
}

func (f *failingStore) Load() (domain.Snapshot, bool, error) { return f.snap, true, f.err }
func (f *failingStore) Save(domain.Snapshot) error           { return f.err }
func (f *failingStore) LoadList() ([]string, bool, error)    { return nil, false, f.err }
func (f *failingStore) SaveList([]string) error              { return f.err }
func (f *failingStore) Close() error                         { return nil }

func newUseCase(t *testing.T, st port.SnapshotStore) *IndexUseCase {
	t.Helper()
	stemmer := analyzer.NewPortugueseStemmer()
	return NewIndexUseCase(
		memstore.NewWordIndex(memstore.WithStemmer(stemmer)),
		wordlist.New(stemmer),
		stemmer,
		st,
		fs.NewWalker(nil, nil),
		nil,
	)
}

func writeCorpus(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestIndexUseCase_IndexAndQuery(t *testing.T) {
	uc := newUseCase(t, nil)
	for _, w := range []string{"casa", "casas", "casaco"} {
		uc.IndexWord(w)
	}

	res := uc.Query("casas")
	assert.Equal(t, "casas", res.Query)
	assert.Equal(t, "casa", res.Stem)
	assert.Equal(t, []string{"casa", "casas"}, res.Results)

	empty := uc.Query("inexistente")
	assert.NotNil(t, empty.Results)
	assert.Empty(t, empty.Results)

	assert.Equal(t, domain.Stats{Words: 3, Stems: 2, ListWords: 3}, uc.Stats())
}

func TestIndexUseCase_Compare(t *testing.T) {
	uc := newUseCase(t, nil)
	for _, w := range []string{"ação", "ações", "casa"} {
		uc.IndexWord(w)
	}

	cmp := uc.Compare("ações")
	assert.Equal(t, "ac", cmp.Stem)
	assert.Equal(t, 2, cmp.IndexHits)
	assert.Equal(t, 2, cmp.ListStemHits)
	assert.Equal(t, 1, cmp.ListExactHits)
	assert.GreaterOrEqual(t, cmp.IndexNanos, int64(0))
}

func TestIndexUseCase_RandomWord(t *testing.T) {
	uc := newUseCase(t, nil)

	_, err := uc.RandomWord()
	assert.True(t, errors.Is(err, ErrEmptyIndex))

	uc.IndexWord("pão")
	word, err := uc.RandomWord()
	require.NoError(t, err)
	assert.Equal(t, "pão", word)
}

func TestIndexUseCase_OnSizeChange(t *testing.T) {
	uc := newUseCase(t, nil)
	var words, stems int
	uc.OnSizeChange(func(w, s int) { words, stems = w, s })

	uc.IndexWord("casa")
	uc.IndexWord("casas")
	uc.IndexWord("café")

	assert.Equal(t, 3, words)
	assert.Equal(t, 2, stems)
}

func TestIndexUseCase_PersistRestore(t *testing.T) {
	st, err := store.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	uc := newUseCase(t, st)
	for _, w := range []string{"balões", "bal", "café", "cafe"} {
		uc.IndexWord(w)
	}
	require.NoError(t, uc.Persist())

	restored := newUseCase(t, st)
	found, err := restored.Restore()
	require.NoError(t, err)
	assert.True(t, found)

	assert.Equal(t, uc.Stats(), restored.Stats())
	assert.Equal(t, []string{"balões", "bal"}, restored.Query("bal").Results)
	assert.Equal(t, []string{"café", "cafe"}, restored.Query("CAFÉ").Results)
	assert.Equal(t, 1, restored.Compare("cafe").ListExactHits)
}

func TestIndexUseCase_RestoreNothingStored(t *testing.T) {
	st, err := store.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	uc := newUseCase(t, st)
	found, err := uc.Restore()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIndexUseCase_RestoreFailureKeepsState(t *testing.T) {
	bad := &failingStore{snap: domain.Snapshot{
		Words: []string{"casa"},
		Index: map[string][]int{"casa": {7}},
	}}
	uc := newUseCase(t, bad)
	uc.IndexWord("menino")

	_, err := uc.Restore()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSnapshotFormat))
	assert.Equal(t, []string{"menino"}, uc.Query("menino").Results)
	assert.Equal(t, 1, uc.Stats().ListWords)

	bad.err = errors.New("disk gone")
	_, err = uc.Restore()
	require.Error(t, err)
	assert.Equal(t, 1, uc.Stats().Words)
}

func TestIndexUseCase_PersistError(t *testing.T) {
	boom := errors.New("disk full")
	uc := newUseCase(t, &failingStore{err: boom})
	uc.IndexWord("casa")

	err := uc.Persist()
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestIndexUseCase_LoadCorpus(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, "a.txt", "casa\r\ncasas\n\n  casaco  \n")
	writeCorpus(t, root, "b.txt", "menino\nmeninos\n")
	writeCorpus(t, root, "notes.md", "ignored\n")

	st, err := store.NewJSONStore(t.TempDir())
	require.NoError(t, err)
	uc := newUseCase(t, st)

	var calls, lastDone, lastTotal int
	result, err := uc.LoadCorpus(root, func(done, total int) {
		calls++
		lastDone, lastTotal = done, total
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Files)
	assert.Equal(t, 5, result.Words)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, lastDone)
	assert.Equal(t, 5, lastTotal)

	assert.Equal(t, []string{"casa", "casas"}, uc.Query("casa").Results)
	assert.Empty(t, uc.Query("ignored").Results)

	snap, found, err := st.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, snap.Words, 5)
}

func TestIndexUseCase_LoadCorpusMissingRoot(t *testing.T) {
	uc := newUseCase(t, nil)
	_, err := uc.LoadCorpus(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}
