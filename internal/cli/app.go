package cli

import (
	"fmt"
	"log/slog"

	"poorcene/internal/adapter/analyzer"
	"poorcene/internal/adapter/fs"
	"poorcene/internal/adapter/memstore"
	"poorcene/internal/adapter/metrics"
	"poorcene/internal/adapter/store"
	"poorcene/internal/adapter/wordlist"
	"poorcene/internal/logging"
	"poorcene/internal/port"
	"poorcene/internal/usecase"
)

// app holds the wired components shared by the commands.
type app struct {
	uc      *usecase.IndexUseCase
	stemmer port.Stemmer
	tracer  *analyzer.PortugueseStemmer
	metrics *metrics.Metrics
	store   port.SnapshotStore
	logger  *slog.Logger
}

// openApp wires the index to the configured store and restores any saved
// snapshot.
func openApp() (*app, error) {
	cfg := GetConfig()

	if err := cfg.EnsureDataDir(GetRootDir()); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	st, err := store.Open(cfg.Storage.Backend, cfg.DataDir(GetRootDir()))
	if err != nil {
		return nil, fmt.Errorf("failed to open index store: %w", err)
	}

	stemmer, err := analyzer.NewStemmer(cfg.Stemmer.CacheSize)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create stemmer: %w", err)
	}

	opts := []memstore.Option{memstore.WithStemmer(stemmer)}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, memstore.WithObserver(m.Observe))
	}

	logger := logging.WithComponent("index")
	uc := usecase.NewIndexUseCase(
		memstore.NewWordIndex(opts...),
		wordlist.New(stemmer),
		stemmer,
		st,
		fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes),
		logger,
	)
	if m != nil {
		uc.OnSizeChange(m.SetSize)
	}

	if _, err := uc.Restore(); err != nil {
		st.Close()
		return nil, err
	}

	return &app{
		uc:      uc,
		stemmer: stemmer,
		tracer:  analyzer.NewPortugueseStemmer(),
		metrics: m,
		store:   st,
		logger:  logger,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
