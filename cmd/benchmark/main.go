package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"poorcene/config"
	"poorcene/internal/adapter/analyzer"
	"poorcene/internal/adapter/fs"
	"poorcene/internal/adapter/memstore"
	"poorcene/internal/adapter/store"
	"poorcene/internal/adapter/wordlist"
	"poorcene/internal/domain"
	"poorcene/internal/usecase"
)

func main() {
	indexPath := flag.String("index", ".", "Path to indexed directory")
	corpus := flag.String("corpus", "", "Word list to load instead of the saved index")
	query := flag.String("q", "", "Query to time (default: random words)")
	rounds := flag.Int("n", 100, "Number of queries")
	flag.Parse()

	cfg, err := config.LoadFromDir(*indexPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	stemmer, err := analyzer.NewStemmer(cfg.Stemmer.CacheSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating stemmer: %v\n", err)
		os.Exit(1)
	}

	var uc *usecase.IndexUseCase
	index := memstore.NewWordIndex(memstore.WithStemmer(stemmer))
	list := wordlist.New(stemmer)

	if *corpus != "" {
		uc = usecase.NewIndexUseCase(index, list, stemmer, nil, fs.NewWalker(nil, nil), nil)
		if _, err := uc.LoadCorpus(*corpus, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
			os.Exit(1)
		}
	} else {
		st, err := store.Open(cfg.Storage.Backend, cfg.DataDir(*indexPath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening index: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()
		uc = usecase.NewIndexUseCase(index, list, stemmer, st, nil, nil)
		found, err := uc.Restore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error restoring index: %v\n", err)
			os.Exit(1)
		}
		if !found {
			fmt.Fprintln(os.Stderr, "No index found. Run 'poorcene load' first or pass -corpus")
			os.Exit(1)
		}
	}

	stats := uc.Stats()
	if stats.Words == 0 {
		fmt.Fprintln(os.Stderr, "Index is empty")
		os.Exit(1)
	}

	fmt.Println("STEM INDEX BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Words indexed: %d\n", stats.Words)
	fmt.Printf("Stems:         %d\n", stats.Stems)
	fmt.Printf("Queries:       %d\n", *rounds)
	fmt.Println()

	var total domain.Comparison
	for i := 0; i < *rounds; i++ {
		word := *query
		if word == "" {
			word, _ = uc.RandomWord()
		}
		cmp := uc.Compare(word)
		if i < 5 {
			fmt.Printf("%-20s stem=%-16s index=%-4d list=%-4d exact=%d\n",
				cmp.Query, cmp.Stem, cmp.IndexHits, cmp.ListStemHits, cmp.ListExactHits)
		}
		if cmp.IndexHits != cmp.ListStemHits {
			fmt.Printf("  MISMATCH for %q: index=%d list=%d\n", word, cmp.IndexHits, cmp.ListStemHits)
		}
		total.IndexNanos += cmp.IndexNanos
		total.ListStemNanos += cmp.ListStemNanos
		total.ListExactNanos += cmp.ListExactNanos
	}

	n := int64(*rounds)
	if n == 0 {
		return
	}
	avgIndex := time.Duration(total.IndexNanos / n)
	avgStem := time.Duration(total.ListStemNanos / n)
	avgExact := time.Duration(total.ListExactNanos / n)

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("AVERAGE QUERY TIME:\n")
	fmt.Printf("  Index:             %s\n", avgIndex)
	fmt.Printf("  List (stem scan):  %s\n", avgStem)
	fmt.Printf("  List (exact scan): %s\n", avgExact)
	if avgIndex > 0 {
		fmt.Printf("  Speedup vs stem scan: %.1fx\n", float64(avgStem)/float64(avgIndex))
	}
}
