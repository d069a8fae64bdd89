package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poorcene/internal/adapter/analyzer"
	"poorcene/internal/adapter/memstore"
	"poorcene/internal/adapter/metrics"
	"poorcene/internal/adapter/wordlist"
	"poorcene/internal/domain"
	"poorcene/internal/usecase"
)

func newTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()
	stemmer := analyzer.NewPortugueseStemmer()
	m := metrics.New()
	uc := usecase.NewIndexUseCase(
		memstore.NewWordIndex(memstore.WithStemmer(stemmer), memstore.WithObserver(m.Observe)),
		wordlist.New(stemmer),
		stemmer,
		nil,
		nil,
		nil,
	)
	uc.OnSizeChange(m.SetSize)
	return New(":0", uc, stemmer, m.Handler(), nil), m
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexAndQuery(t *testing.T) {
	s, _ := newTestServer(t)

	for _, word := range []string{"casa", "casas", "casaco"} {
		w := do(t, s, http.MethodPost, "/words", `{"word":"`+word+`"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, s, http.MethodGet, "/query?q=casas", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res usecase.QueryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "casa", res.Stem)
	assert.Equal(t, []string{"casa", "casas"}, res.Results)
}

func TestQueryEmptyIndex(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/query?q=qualquer", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":[]`)
}

func TestIndexWordRejectsInvalidInput(t *testing.T) {
	s, _ := newTestServer(t)

	cases := map[string]string{
		"number":  `{"word": 42}`,
		"object":  `{"word": {"a": 1}}`,
		"array":   `{"word": ["casa"]}`,
		"null":    `{"word": null}`,
		"missing": `{}`,
		"broken":  `{"word": `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/words", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), domain.ErrInvalidInput.Error())
		})
	}

	assert.Equal(t, 0, s.uc.Stats().Words)
}

func TestIndexWordEmptyBody(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/words", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryRequiresParameter(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/query", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStem(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/stem?w=caf%C3%A9", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp stemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cafe", resp.Stem)
	assert.Empty(t, resp.Stages)

	w = do(t, s, http.MethodGet, "/stem?w=felizmente&trace=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "feliz", resp.Stem)
	assert.NotEmpty(t, resp.Stages)
}

func TestCompare(t *testing.T) {
	s, _ := newTestServer(t)
	do(t, s, http.MethodPost, "/words", `{"word":"ação"}`)
	do(t, s, http.MethodPost, "/words", `{"word":"ações"}`)

	w := do(t, s, http.MethodGet, "/compare?q=a%C3%A7%C3%A3o", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cmp domain.Comparison
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cmp))
	assert.Equal(t, 2, cmp.IndexHits)
	assert.Equal(t, 2, cmp.ListStemHits)
	assert.Equal(t, 1, cmp.ListExactHits)
}

func TestStatsAndMetrics(t *testing.T) {
	s, _ := newTestServer(t)
	do(t, s, http.MethodPost, "/words", `{"word":"casa"}`)
	do(t, s, http.MethodPost, "/words", `{"word":"casas"}`)

	w := do(t, s, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, domain.Stats{Words: 2, Stems: 1, ListWords: 2}, stats)

	w = do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "poorcene_words 2")
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
