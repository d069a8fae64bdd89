package analyzer

import "strings"

type rule struct {
	suffix      string
	replacement string
	exceptions  map[string]struct{}
}

// stage is an ordered rule table. The first rule whose suffix matches and
// whose exception set does not hold the whole word rewrites it.
type stage []rule

func (s stage) apply(word string) string {
	for _, r := range s {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		if _, excepted := r.exceptions[word]; excepted {
			continue
		}
		return word[:len(word)-len(r.suffix)] + r.replacement
	}
	return word
}

func except(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var pluralStage = stage{
	// bons -> bom
	{suffix: "ns", replacement: "m"},
	// balões -> balão
	{suffix: "ões", replacement: "ão"},
	// capitães -> capitão
	{suffix: "ães", replacement: "ão", exceptions: except("mães")},
	// casas -> casa
	{suffix: "as", replacement: "a"},
	// testes -> test
	{suffix: "es", exceptions: except("mes", "fregues", "interesses")},
}

var feminineStage = stage{
	// chefona -> chefão
	{suffix: "ona", replacement: "ão"},
	// brasileira -> brasileiro
	{suffix: "eira", replacement: "eiro", exceptions: except("poeira")},
	// paulista -> paulisto
	{suffix: "ista", replacement: "isto", exceptions: except("vista")},
	// presidenta -> presidente
	{suffix: "enta", replacement: "ente"},
}

// "idão" never fires: every word ending in it also ends in "ão".
var augmentativeStage = stage{
	{suffix: "ão", exceptions: except("pão", "mão", "chimarrão")},
	{suffix: "zinho"},
	{suffix: "idão"},
}

var adverbStage = stage{
	{suffix: "mente", exceptions: except("realmente", "experimente")},
}

var nounStage = stage{
	{suffix: "ano"},
	{suffix: "inal"},
	{suffix: "ente", exceptions: except("frequente", "alimente")},
}

var verbStage = stage{
	{suffix: "ando"},
	{suffix: "endo"},
	{suffix: "irei", exceptions: except("admirei")},
	{suffix: "irem", exceptions: except("admirem")},
	{suffix: "iam", exceptions: except("enfiam", "ampliam", "elogiam", "ensaiam")},
}

var vowelStage = stage{
	{suffix: "o", exceptions: except("pão", "mão", "chimarrão")},
	{suffix: "a", exceptions: except("pá", "má", "ásia", "águia")},
}
