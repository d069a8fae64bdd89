package memstore

import (
	"sort"
	"sync"
	"time"

	"poorcene/internal/adapter/analyzer"
	"poorcene/internal/domain"
	"poorcene/internal/port"
)

// Operation names passed to the observer.
const (
	OpInsert  = "insert"
	OpQuery   = "query"
	OpRestore = "restore"
)

// WordIndex is the word log plus the stem buckets pointing into it. Buckets
// iterate in the order their stems were first seen.
type WordIndex struct {
	mu      sync.RWMutex
	stemmer port.Stemmer
	observe port.ObserveFunc
	words   []string
	buckets map[string][]int
	stems   []string
}

type Option func(*WordIndex)

// WithStemmer replaces the default Portuguese stemmer.
func WithStemmer(s port.Stemmer) Option {
	return func(idx *WordIndex) {
		idx.stemmer = s
	}
}

// WithObserver reports the duration of every insert, query and restore.
func WithObserver(fn port.ObserveFunc) Option {
	return func(idx *WordIndex) {
		idx.observe = fn
	}
}

func NewWordIndex(opts ...Option) *WordIndex {
	idx := &WordIndex{
		stemmer: analyzer.NewPortugueseStemmer(),
		buckets: make(map[string][]int),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Insert appends word to the log and records its position under its stem.
func (idx *WordIndex) Insert(word string) {
	defer idx.track(OpInsert, time.Now())
	stem := idx.stemmer.Stem(word)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.words = append(idx.words, word)
	if _, ok := idx.buckets[stem]; !ok {
		idx.stems = append(idx.stems, stem)
	}
	idx.buckets[stem] = append(idx.buckets[stem], len(idx.words)-1)
}

// Query returns every logged word sharing the stem of word, in insertion
// order. The result is never nil.
func (idx *WordIndex) Query(word string) []string {
	defer idx.track(OpQuery, time.Now())
	stem := idx.stemmer.Stem(word)

	idx.mu.RLock()
	defer idx.mu.RUnlock()
	positions := idx.buckets[stem]
	result := make([]string, 0, len(positions))
	for _, pos := range positions {
		result = append(result, idx.words[pos])
	}
	return result
}

// Stem exposes the key a word would be indexed under.
func (idx *WordIndex) Stem(word string) string {
	return idx.stemmer.Stem(word)
}

// Bucket returns a copy of the positions recorded under stem.
func (idx *WordIndex) Bucket(stem string) []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]int(nil), idx.buckets[stem]...)
}

// Word returns the logged word at position i.
func (idx *WordIndex) Word(i int) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if i < 0 || i >= len(idx.words) {
		return "", false
	}
	return idx.words[i], true
}

func (idx *WordIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.words)
}

func (idx *WordIndex) StemCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.stems)
}

// Stems returns the known stems in the order they were first seen.
func (idx *WordIndex) Stems() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]string(nil), idx.stems...)
}

// Snapshot returns a deep copy of the index state.
func (idx *WordIndex) Snapshot() domain.Snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	snap := domain.Snapshot{
		Words: append([]string{}, idx.words...),
		Index: make(map[string][]int, len(idx.buckets)),
	}
	for stem, positions := range idx.buckets {
		snap.Index[stem] = append([]int(nil), positions...)
	}
	return snap
}

// Restore replaces the index state with snap. The snapshot is validated in
// full first; on error the current state is left untouched.
func (idx *WordIndex) Restore(snap domain.Snapshot) error {
	defer idx.track(OpRestore, time.Now())
	if err := snap.Validate(); err != nil {
		return err
	}

	words := append([]string{}, snap.Words...)
	buckets := make(map[string][]int, len(snap.Index))
	stems := make([]string, 0, len(snap.Index))
	for stem, positions := range snap.Index {
		buckets[stem] = append([]int(nil), positions...)
		stems = append(stems, stem)
	}
	// A bucket is created by its first position, so ordering by it recovers
	// first-seen order.
	sort.Slice(stems, func(i, j int) bool {
		pi, pj := buckets[stems[i]][0], buckets[stems[j]][0]
		if pi != pj {
			return pi < pj
		}
		return stems[i] < stems[j]
	})

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.words = words
	idx.buckets = buckets
	idx.stems = stems
	return nil
}

func (idx *WordIndex) track(op string, start time.Time) {
	if idx.observe != nil {
		idx.observe(op, time.Since(start))
	}
}
