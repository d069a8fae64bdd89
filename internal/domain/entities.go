package domain

// Snapshot is the persisted shape of a word index: the word log in insertion
// order and the positions recorded under each stem.
type Snapshot struct {
	Words []string         `json:"words"`
	Index map[string][]int `json:"index"`
}

// Validate checks that every recorded position points into the word log.
func (s Snapshot) Validate() error {
	for stem, positions := range s.Index {
		if len(positions) == 0 {
			return Errorf(ErrSnapshotFormat, "stem %q has an empty bucket", stem)
		}
		for _, pos := range positions {
			if pos < 0 || pos >= len(s.Words) {
				return Errorf(ErrSnapshotFormat, "stem %q records position %d, word log has %d entries", stem, pos, len(s.Words))
			}
		}
	}
	return nil
}

// Comparison reports how the stem index and the plain word list answer the
// same query.
type Comparison struct {
	Query          string `json:"query"`
	Stem           string `json:"stem"`
	IndexHits      int    `json:"index_hits"`
	ListStemHits   int    `json:"list_stem_hits"`
	ListExactHits  int    `json:"list_exact_hits"`
	IndexNanos     int64  `json:"index_ns"`
	ListStemNanos  int64  `json:"list_stem_ns"`
	ListExactNanos int64  `json:"list_exact_ns"`
}

type Stats struct {
	Words     int `json:"words"`
	Stems     int `json:"stems"`
	ListWords int `json:"list_words"`
}
