package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/lite/internal/catalog"
	"github.com/alexanderramin/lite/internal/cli"
	"github.com/alexanderramin/lite/internal/config"
	"github.com/alexanderramin/lite/internal/db"
	"github.com/alexanderramin/lite/internal/logging"
	"github.com/alexanderramin/lite/internal/repository"
	"github.com/alexanderramin/lite/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	log := logging.Component("main")

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	kv, closer, err := openStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("path", cfg.Storage.Path).
		Int("catalog_items", cat.Len()).
		Msg("storage ready")

	// Wire services
	profiles := repository.NewProfileStore(kv)
	observer := service.NewLogUseCaseObserver(logging.Component("service"))

	viewing := service.DefaultViewingPolicy()
	viewing.DayStarts = cfg.Viewing.DayStarts
	viewing.NightStarts = cfg.Viewing.NightStarts
	if fixed, ok := cfg.Viewing.Fixed(); ok {
		viewing.Fixed = fixed
	}

	app := &cli.App{
		Recommend: service.NewRecommendService(cat, profiles, cfg.Ranking.Params(), viewing, observer),
		Profile:   service.NewProfileService(cat, profiles, observer),
		Catalog:   cat,
	}

	// Prompts and the browser need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// openStore opens the configured profile backend.
func openStore(cfg config.StorageConfig) (repository.KVStore, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		bdb, err := repository.OpenBadger(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewBadgerKVStore(bdb), bdb, nil
	default:
		database, err := db.OpenDB(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteKVStore(database), database, nil
	}
}
