package main

import (
	"fmt"
	"os"

	"github.com/stopline-labs/stopline-cli/internal/adapters/driven/config/file"
	"github.com/stopline-labs/stopline-cli/internal/adapters/driven/storage/elastic"
	"github.com/stopline-labs/stopline-cli/internal/adapters/driven/storage/memory"
	"github.com/stopline-labs/stopline-cli/internal/adapters/driven/storage/sqlite"
	"github.com/stopline-labs/stopline-cli/internal/adapters/driving/cli"
	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
	"github.com/stopline-labs/stopline-cli/internal/core/services"
	"github.com/stopline-labs/stopline-cli/internal/sources/irail"
	"github.com/stopline-labs/stopline-cli/internal/sources/stationfile"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.Load(os.Getenv("STOPLINE_CONFIG_DIR"))
	if err != nil {
		return err
	}

	stopStore, mediaStore, closeStore, err := buildStorage(cfg)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	stopSources, busSources := buildSources(cfg)

	cache := memory.NewStopCache()
	cli.SetServices(cli.Services{
		Stop:  services.NewStopResolver(cache, stopStore, stopSources),
		Buses: services.NewBusBoard(busSources),
		Media: services.NewMediaService(mediaStore),
	})

	sortMethod, err := domain.ParseBusSortMethod(cfg.Buses.Sort)
	if err != nil {
		return err
	}
	cli.SetDefaultBusSort(sortMethod)
	cli.SetDefaultBusLimit(cfg.Buses.Limit)

	return cli.Execute()
}

// buildStorage constructs the configured persistence backend. The media
// store always lives in SQLite: references are local bookkeeping even when
// stops are kept in a cluster.
func buildStorage(cfg *file.Config) (driven.StopStore, driven.MediaStore, func() error, error) {
	store, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening sqlite store: %w", err)
	}

	if cfg.Storage.Backend == file.BackendElastic {
		esStore, err := elastic.NewStopStore(elastic.Config{
			Addresses: cfg.Storage.Elastic.Addresses,
			Username:  cfg.Storage.Elastic.Username,
			Password:  cfg.Storage.Elastic.Password,
			Index:     cfg.Storage.Elastic.Index,
		})
		if err != nil {
			store.Close()
			return nil, nil, nil, fmt.Errorf("connecting to elasticsearch: %w", err)
		}
		return esStore, store.MediaStore(), store.Close, nil
	}

	return store.StopStore(), store.MediaStore(), store.Close, nil
}

// buildSources assembles the external source chains in configured order.
func buildSources(cfg *file.Config) ([]driven.StopSource, []driven.BusSource) {
	var stopSources []driven.StopSource
	var busSources []driven.BusSource

	var irailClient *irail.Client
	for _, name := range cfg.Sources.Order {
		switch name {
		case "irail":
			if irailClient == nil {
				irailClient = irail.NewClient(irail.Config{
					BaseURL:           cfg.Sources.IRail.BaseURL,
					UserAgent:         cfg.Sources.IRail.UserAgent,
					RequestsPerSecond: cfg.Sources.IRail.RequestsPerSecond,
				})
			}
			stopSources = append(stopSources, irail.NewStopSource(irailClient))
			busSources = append(busSources, irail.NewBusSource(irailClient))
		case "stationfile":
			if cfg.Sources.StationFile.Path != "" {
				stopSources = append(stopSources, stationfile.NewStopSource(cfg.Sources.StationFile.Path))
			}
		}
	}
	return stopSources, busSources
}
