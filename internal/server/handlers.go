package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"poorcene/internal/adapter/analyzer"
	"poorcene/internal/domain"
	"poorcene/internal/usecase"
)

// Tracer stems a word and reports every pipeline stage.
type Tracer interface {
	Stem(word string) string
	Trace(word string) []analyzer.StageResult
}

type handlers struct {
	uc      *usecase.IndexUseCase
	stemmer Tracer
	started time.Time
}

type indexRequest struct {
	Word any `json:"word"`
}

type stemResponse struct {
	Word   string                 `json:"word"`
	Stem   string                 `json:"stem"`
	Stages []analyzer.StageResult `json:"stages,omitempty"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.started).String(),
	})
}

func (h *handlers) indexWord(w http.ResponseWriter, r *http.Request) {
	word, err := parseWord(r)
	if err != nil {
		writeError(w, err)
		return
	}
	h.uc.IndexWord(word)
	writeJSON(w, http.StatusCreated, h.uc.Query(word))
}

func (h *handlers) query(w http.ResponseWriter, r *http.Request) {
	q, ok := r.URL.Query()["q"]
	if !ok {
		writeError(w, domain.Errorf(domain.ErrInvalidInput, "query parameter q is required"))
		return
	}
	writeJSON(w, http.StatusOK, h.uc.Query(q[0]))
}

func (h *handlers) compare(w http.ResponseWriter, r *http.Request) {
	q, ok := r.URL.Query()["q"]
	if !ok {
		writeError(w, domain.Errorf(domain.ErrInvalidInput, "query parameter q is required"))
		return
	}
	writeJSON(w, http.StatusOK, h.uc.Compare(q[0]))
}

func (h *handlers) stem(w http.ResponseWriter, r *http.Request) {
	words, ok := r.URL.Query()["w"]
	if !ok {
		writeError(w, domain.Errorf(domain.ErrInvalidInput, "query parameter w is required"))
		return
	}
	resp := stemResponse{Word: words[0]}
	if r.URL.Query().Get("trace") == "true" {
		resp.Stages = h.stemmer.Trace(words[0])
		resp.Stem = resp.Stages[len(resp.Stages)-1].Output
	} else {
		resp.Stem = h.stemmer.Stem(words[0])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.uc.Stats())
}

// parseWord decodes {"word": "..."} and rejects anything but a JSON string.
func parseWord(r *http.Request) (string, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return "", domain.Errorf(domain.ErrInvalidInput, "failed to read request body")
	}
	if len(body) == 0 {
		return "", domain.Errorf(domain.ErrInvalidInput, "request body is empty")
	}

	var req indexRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", domain.Errorf(domain.ErrInvalidInput, "invalid JSON: %v", err)
	}
	if req.Word == nil {
		return "", domain.Errorf(domain.ErrInvalidInput, "field word is required")
	}
	word, ok := req.Word.(string)
	if !ok {
		return "", domain.Errorf(domain.ErrInvalidInput, "field word must be a string, got %T", req.Word)
	}
	return word, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain sentinels to status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSnapshotFormat):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]any{
		"error": err.Error(),
		"code":  status,
	})
}
