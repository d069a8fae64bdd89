package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"poorcene/internal/adapter/fs"
	"poorcene/internal/adapter/memstore"
	"poorcene/internal/adapter/wordlist"
	"poorcene/internal/domain"
	"poorcene/internal/port"
)

// ErrEmptyIndex is returned when a random word is requested from an empty index.
var ErrEmptyIndex = errors.New("index is empty")

// IndexUseCase coordinates the stem index, the baseline list and the
// snapshot store.
type IndexUseCase struct {
	index   *memstore.WordIndex
	list    *wordlist.List
	stemmer port.Stemmer
	store   port.SnapshotStore
	walker  port.FileWalker
	logger  *slog.Logger
	onSize  func(words, stems int)
}

// NewIndexUseCase creates a new index use case. store and walker may be nil
// when persistence or corpus loading is not needed.
func NewIndexUseCase(
	index *memstore.WordIndex,
	list *wordlist.List,
	stemmer port.Stemmer,
	store port.SnapshotStore,
	walker port.FileWalker,
	logger *slog.Logger,
) *IndexUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndexUseCase{
		index:   index,
		list:    list,
		stemmer: stemmer,
		store:   store,
		walker:  walker,
		logger:  logger,
	}
}

// OnSizeChange registers fn to be called with the index size after every
// mutation.
func (u *IndexUseCase) OnSizeChange(fn func(words, stems int)) {
	u.onSize = fn
}

// SetWalker replaces the walker used by LoadCorpus.
func (u *IndexUseCase) SetWalker(w port.FileWalker) {
	u.walker = w
}

// QueryResult is the answer to a single lookup.
type QueryResult struct {
	Query   string   `json:"query"`
	Stem    string   `json:"stem"`
	Results []string `json:"results"`
}

// LoadResult summarizes a corpus load.
type LoadResult struct {
	Files    int
	Words    int
	Duration time.Duration
	Errors   []string
}

// ProgressFunc is called after each word is indexed during a corpus load.
type ProgressFunc func(done, total int)

// IndexWord adds word to both the stem index and the baseline list.
func (u *IndexUseCase) IndexWord(word string) {
	u.index.Insert(word)
	u.list.Add(word)
	u.logger.Debug("indexed word", "word", word, "stem", u.stemmer.Stem(word))
	u.reportSize()
}

// Query looks word up in the stem index.
func (u *IndexUseCase) Query(word string) QueryResult {
	return QueryResult{
		Query:   word,
		Stem:    u.stemmer.Stem(word),
		Results: u.index.Query(word),
	}
}

// Compare runs the same lookup through the index and both baseline scans.
func (u *IndexUseCase) Compare(word string) domain.Comparison {
	cmp := domain.Comparison{
		Query: word,
		Stem:  u.stemmer.Stem(word),
	}

	start := time.Now()
	cmp.IndexHits = len(u.index.Query(word))
	cmp.IndexNanos = time.Since(start).Nanoseconds()

	start = time.Now()
	cmp.ListStemHits = len(u.list.QueryWithStemmer(word))
	cmp.ListStemNanos = time.Since(start).Nanoseconds()

	start = time.Now()
	cmp.ListExactHits = len(u.list.Query(word))
	cmp.ListExactNanos = time.Since(start).Nanoseconds()

	return cmp
}

// RandomWord picks a word uniformly from the index log.
func (u *IndexUseCase) RandomWord() (string, error) {
	n := u.index.Len()
	if n == 0 {
		return "", ErrEmptyIndex
	}
	word, ok := u.index.Word(rand.Intn(n))
	if !ok {
		return "", ErrEmptyIndex
	}
	return word, nil
}

// LoadCorpus indexes every word of every corpus file under root and persists
// the result when a store is configured.
func (u *IndexUseCase) LoadCorpus(root string, progress ProgressFunc) (*LoadResult, error) {
	if u.walker == nil {
		return nil, fmt.Errorf("no corpus walker configured")
	}
	start := time.Now()
	result := &LoadResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk corpus: %w", err)
	}

	var words []string
	for _, file := range files {
		fileWords, err := fs.ReadWordsFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
			continue
		}
		words = append(words, fileWords...)
		result.Files++
	}

	for i, word := range words {
		u.index.Insert(word)
		u.list.Add(word)
		if progress != nil {
			progress(i+1, len(words))
		}
	}
	result.Words = len(words)
	u.reportSize()

	if u.store != nil {
		if err := u.Persist(); err != nil {
			return result, err
		}
	}

	result.Duration = time.Since(start)
	u.logger.Info("corpus loaded",
		"root", root,
		"files", result.Files,
		"words", result.Words,
		"stems", u.index.StemCount(),
		"duration", result.Duration)
	return result, nil
}

// Restore loads the stored snapshot and baseline list. It reports whether a
// snapshot was found; on any error the in-memory state is left unchanged.
func (u *IndexUseCase) Restore() (bool, error) {
	if u.store == nil {
		return false, nil
	}

	snap, found, err := u.store.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !found {
		return false, nil
	}
	listWords, listFound, err := u.store.LoadList()
	if err != nil {
		return false, fmt.Errorf("failed to load word list: %w", err)
	}

	if err := u.index.Restore(snap); err != nil {
		return false, fmt.Errorf("failed to restore index: %w", err)
	}
	if listFound {
		u.list.Restore(listWords)
	} else {
		u.list.Restore(snap.Words)
	}

	u.logger.Info("index restored", "words", u.index.Len(), "stems", u.index.StemCount())
	u.reportSize()
	return true, nil
}

// Persist writes the index snapshot and the baseline list to the store.
func (u *IndexUseCase) Persist() error {
	if u.store == nil {
		return nil
	}
	snap := u.index.Snapshot()
	if err := u.store.Save(snap); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if err := u.store.SaveList(u.list.Words()); err != nil {
		return fmt.Errorf("failed to save word list: %w", err)
	}
	u.logger.Debug("index persisted", "words", len(snap.Words), "stems", len(snap.Index))
	return nil
}

func (u *IndexUseCase) Stats() domain.Stats {
	return domain.Stats{
		Words:     u.index.Len(),
		Stems:     u.index.StemCount(),
		ListWords: u.list.Len(),
	}
}

func (u *IndexUseCase) reportSize() {
	if u.onSize != nil {
		u.onSize(u.index.Len(), u.index.StemCount())
	}
}
