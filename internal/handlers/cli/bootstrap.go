package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/scoretracker/internal/common/clock"
	"github.com/KirkDiggler/scoretracker/internal/common/uuid"
	"github.com/KirkDiggler/scoretracker/internal/config"
	"github.com/KirkDiggler/scoretracker/internal/metrics"
	"github.com/KirkDiggler/scoretracker/internal/repositories/export"
	"github.com/KirkDiggler/scoretracker/internal/repositories/filehandle"
	"github.com/KirkDiggler/scoretracker/internal/repositories/kvstore"
	"github.com/KirkDiggler/scoretracker/internal/repositories/snapshot"
	"github.com/KirkDiggler/scoretracker/internal/services/game"
	"github.com/KirkDiggler/scoretracker/internal/services/persistence"
)

// WiringConfig holds what NewBootstrap cannot read from the config file
type WiringConfig struct {
	// Prompt asks for file paths no flag gave; without it picking is unsupported
	Prompt filehandle.PromptFunc

	// LogOutput receives log lines; defaults to stderr
	LogOutput io.Writer
}

// NewBootstrap builds the tracker from the config file named in Options
func NewBootstrap(cfg *WiringConfig) Bootstrap {
	if cfg == nil {
		cfg = &WiringConfig{}
	}
	logOutput := cfg.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}

	return func(ctx context.Context, opts Options) (*Services, error) {
		settings, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}

		level, err := settings.Level()
		if err != nil {
			return nil, err
		}
		logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))

		registry := prometheus.NewRegistry()
		m, err := metrics.New(registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}

		store, closeStore, err := openStore(ctx, settings, logger)
		if err != nil {
			return nil, err
		}

		svc, err := wire(settings, opts, cfg.Prompt, store, logger, m)
		if err != nil {
			closeStore()
			return nil, err
		}

		svc.Gatherer = registry
		svc.MetricsAddress = settings.Metrics.Address
		svc.Close = func() error {
			closeStore()
			return nil
		}
		return svc, nil
	}
}

// wire builds the storage tiers and services over an open store
func wire(settings *config.Config, opts Options, prompt filehandle.PromptFunc, store kvstore.Store, logger *slog.Logger, m *metrics.Metrics) (*Services, error) {
	realClock := &clock.DefaultClock{}

	snapshots, err := snapshot.New(&snapshot.Config{
		Store:     store,
		KeyPrefix: settings.Storage.KeyPrefix,
		ChunkSize: settings.Storage.ChunkSize,
		Clock:     realClock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot repository: %w", err)
	}

	savePath := opts.FilePath
	if savePath == "" {
		savePath = settings.Storage.AutoSaveFile
	}
	files, err := filehandle.NewManager(&filehandle.Config{
		Picker: filehandle.NewOSPicker(&filehandle.OSConfig{
			SavePath:   savePath,
			ImportPath: opts.ImportPath,
			Prompt:     prompt,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create file manager: %w", err)
	}

	downloader, err := export.NewDirDownloader(&export.DirConfig{Dir: settings.Storage.ExportDir})
	if err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	exporter, err := export.New(&export.Config{
		Downloader: downloader,
		Clock:      realClock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	persistenceSvc, err := persistence.New(&persistence.Config{
		Snapshots: snapshots,
		Files:     files,
		Exporter:  exporter,
		Clock:     realClock,
		Logger:    logger,
		Metrics:   m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create persistence service: %w", err)
	}

	gameSvc, err := game.New(&game.Config{
		HistoryLimit:  settings.History.Limit,
		Persistence:   persistenceSvc,
		Clock:         realClock,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
		Metrics:       m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	return &Services{Game: gameSvc, Persistence: persistenceSvc}, nil
}

// openStore connects the configured chunked tier backend
func openStore(ctx context.Context, settings *config.Config, logger *slog.Logger) (kvstore.Store, func(), error) {
	quota := int64(settings.Storage.QuotaBytes)

	switch settings.Storage.Backend {
	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     settings.Storage.RedisAddr,
			Password: settings.Storage.RedisPassword,
			DB:       settings.Storage.RedisDB,
		})
		store, err := kvstore.NewRedis(&kvstore.RedisConfig{
			RedisClient: redisClient,
			QuotaBytes:  quota,
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, err
		}
		return store, func() {
			if err := redisClient.Close(); err != nil {
				logger.WarnContext(ctx, "Error closing Redis client", slog.Any("error", err))
			}
		}, nil
	case config.BackendMemory:
		return kvstore.NewMemory(&kvstore.MemoryConfig{QuotaBytes: quota}), func() {}, nil
	default:
		store, err := kvstore.NewSQLite(&kvstore.SQLiteConfig{
			Path:       settings.Storage.SQLitePath,
			QuotaBytes: quota,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.WarnContext(ctx, "Error closing SQLite store", slog.Any("error", err))
			}
		}, nil
	}
}
