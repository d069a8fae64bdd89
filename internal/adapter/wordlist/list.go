// Package wordlist holds the plain, unindexed word list used as a baseline
// when comparing lookups against the stem index.
package wordlist

import (
	"sync"

	"poorcene/internal/port"
)

type List struct {
	mu      sync.RWMutex
	stemmer port.Stemmer
	words   []string
}

func New(stemmer port.Stemmer) *List {
	return &List{stemmer: stemmer}
}

func (l *List) Add(word string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.words = append(l.words, word)
}

// Query returns every stored word exactly equal to word.
func (l *List) Query(word string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]string, 0)
	for _, w := range l.words {
		if w == word {
			result = append(result, w)
		}
	}
	return result
}

// QueryWithStemmer scans the whole list and returns the words whose stem
// equals the stem of word.
func (l *List) QueryWithStemmer(word string) []string {
	target := l.stemmer.Stem(word)

	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]string, 0)
	for _, w := range l.words {
		if l.stemmer.Stem(w) == target {
			result = append(result, w)
		}
	}
	return result
}

func (l *List) At(i int) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.words) {
		return "", false
	}
	return l.words[i], true
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.words)
}

func (l *List) Words() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string{}, l.words...)
}

// Restore replaces the list contents.
func (l *List) Restore(words []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.words = append([]string{}, words...)
}
