//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"poorcene/internal/adapter/analyzer"
	"poorcene/internal/adapter/memstore"
	"poorcene/internal/domain"
)

var (
	stemmer *analyzer.PortugueseStemmer
	index   *memstore.WordIndex
)

func init() {
	stemmer = analyzer.NewPortugueseStemmer()
	index = memstore.NewWordIndex(memstore.WithStemmer(stemmer))
}

func main() {
	c := make(chan struct{})

	js.Global().Set("poorceneIndex", js.FuncOf(indexWord))
	js.Global().Set("poorceneQuery", js.FuncOf(queryWord))
	js.Global().Set("poorceneStem", js.FuncOf(stemWord))
	js.Global().Set("poorceneClear", js.FuncOf(clearIndex))
	js.Global().Set("poorceneStats", js.FuncOf(getStats))
	js.Global().Set("poorceneSnapshot", js.FuncOf(snapshot))
	js.Global().Set("poorceneRestore", js.FuncOf(restore))

	<-c
}

// stringArg rejects anything that is not a JS string.
func stringArg(args []js.Value, usage string) (string, error) {
	if len(args) < 1 {
		return "", domain.Errorf(domain.ErrInvalidInput, "usage: %s", usage)
	}
	if args[0].Type() != js.TypeString {
		return "", domain.Errorf(domain.ErrInvalidInput, "expected a string, got %s", args[0].Type())
	}
	return args[0].String(), nil
}

func indexWord(this js.Value, args []js.Value) interface{} {
	word, err := stringArg(args, "poorceneIndex(word)")
	if err != nil {
		return makeError(err)
	}
	index.Insert(word)
	return makeResult(map[string]interface{}{
		"success": true,
		"word":    word,
		"stem":    stemmer.Stem(word),
	})
}

func queryWord(this js.Value, args []js.Value) interface{} {
	word, err := stringArg(args, "poorceneQuery(word)")
	if err != nil {
		return makeError(err)
	}
	return makeResult(map[string]interface{}{
		"query":   word,
		"stem":    stemmer.Stem(word),
		"results": index.Query(word),
	})
}

func stemWord(this js.Value, args []js.Value) interface{} {
	word, err := stringArg(args, "poorceneStem(word)")
	if err != nil {
		return makeError(err)
	}
	return makeResult(map[string]interface{}{
		"word":   word,
		"stem":   stemmer.Stem(word),
		"stages": stemmer.Trace(word),
	})
}

func clearIndex(this js.Value, args []js.Value) interface{} {
	index = memstore.NewWordIndex(memstore.WithStemmer(stemmer))
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func getStats(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"words": index.Len(),
		"stems": index.StemCount(),
	})
}

func snapshot(this js.Value, args []js.Value) interface{} {
	result, err := json.Marshal(index.Snapshot())
	if err != nil {
		return makeError(err)
	}
	return string(result)
}

func restore(this js.Value, args []js.Value) interface{} {
	data, err := stringArg(args, "poorceneRestore(snapshotJSON)")
	if err != nil {
		return makeError(err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return makeError(domain.Errorf(domain.ErrSnapshotFormat, "%v", err))
	}
	if err := index.Restore(snap); err != nil {
		return makeError(err)
	}
	return makeResult(map[string]interface{}{
		"success": true,
		"words":   index.Len(),
	})
}

func makeError(err error) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": err.Error(),
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
