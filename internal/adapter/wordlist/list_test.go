package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poorcene/internal/adapter/analyzer"
)

func newList(words ...string) *List {
	l := New(analyzer.NewPortugueseStemmer())
	for _, w := range words {
		l.Add(w)
	}
	return l
}

func TestList_Query(t *testing.T) {
	l := newList("casa", "casas", "casa", "Casa")

	assert.Equal(t, []string{"casa", "casa"}, l.Query("casa"))
	assert.Equal(t, []string{}, l.Query("casaco"))
}

func TestList_QueryWithStemmer(t *testing.T) {
	l := newList("casa", "casas", "casaco", "Casa")

	assert.Equal(t, []string{"casa", "casas", "Casa"}, l.QueryWithStemmer("casas"))
	assert.Equal(t, []string{}, l.QueryWithStemmer("menino"))
}

func TestList_AtAndLen(t *testing.T) {
	l := newList("pão", "mão")

	assert.Equal(t, 2, l.Len())
	w, ok := l.At(1)
	assert.True(t, ok)
	assert.Equal(t, "mão", w)
	_, ok = l.At(2)
	assert.False(t, ok)
}

func TestList_Restore(t *testing.T) {
	l := newList("pão")
	words := []string{"casa", "casas"}
	l.Restore(words)
	words[0] = "mudado"

	assert.Equal(t, []string{"casa", "casas"}, l.Words())
}
