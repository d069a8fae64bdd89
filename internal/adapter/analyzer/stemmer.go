package analyzer

import (
	"strings"
)

// Stage names reported by Trace.
const (
	StageLowercase    = "lowercase"
	StagePlural       = "plural"
	StageFeminine     = "feminine"
	StageAugmentative = "augmentative"
	StageAdverb       = "adverb"
	StageNoun         = "noun"
	StageVerb         = "verb"
	StageVowel        = "vowel"
	StageAccents      = "accents"
)

// StageResult is the value of the word after one executed stage.
type StageResult struct {
	Stage  string `json:"stage"`
	Output string `json:"output"`
}

// PortugueseStemmer reduces Portuguese words to a stem by running a fixed
// sequence of suffix reduction stages.
type PortugueseStemmer struct{}

// NewPortugueseStemmer creates a new Portuguese stemmer.
func NewPortugueseStemmer() *PortugueseStemmer {
	return &PortugueseStemmer{}
}

// Stem returns the stem of a word.
func (p *PortugueseStemmer) Stem(word string) string {
	return p.run(word, nil)
}

// Trace stems a word and returns the output of every stage that ran, in order.
// The last entry always holds the final stem.
func (p *PortugueseStemmer) Trace(word string) []StageResult {
	var steps []StageResult
	p.run(word, func(stage, output string) {
		steps = append(steps, StageResult{Stage: stage, Output: output})
	})
	return steps
}

func (p *PortugueseStemmer) run(word string, record func(stage, output string)) string {
	if record == nil {
		record = func(string, string) {}
	}

	stem := strings.ToLower(word)
	record(StageLowercase, stem)

	if strings.HasSuffix(stem, "s") {
		stem = pluralStage.apply(stem)
		record(StagePlural, stem)
	}

	if strings.HasSuffix(stem, "a") || strings.HasSuffix(stem, "ã") {
		stem = feminineStage.apply(stem)
		record(StageFeminine, stem)
	}

	stem = augmentativeStage.apply(stem)
	record(StageAugmentative, stem)

	stem = adverbStage.apply(stem)
	record(StageAdverb, stem)

	before := stem
	stem = nounStage.apply(stem)
	record(StageNoun, stem)
	if stem == before {
		return finish(stem, record)
	}

	before = stem
	stem = verbStage.apply(stem)
	record(StageVerb, stem)
	if stem == before {
		return finish(stem, record)
	}

	stem = vowelStage.apply(stem)
	record(StageVowel, stem)

	return finish(stem, record)
}

func finish(stem string, record func(stage, output string)) string {
	stem = RemoveAccents(stem)
	record(StageAccents, stem)
	return stem
}
