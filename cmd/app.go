package cmd

import (
	"context"
	"fmt"

	"account-sync/core/config"
	"account-sync/core/database"
	"account-sync/core/logger"
	"account-sync/core/storage"
	"account-sync/feature/accountsync"
	"account-sync/feature/history"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   storage.Client
	db      *gorm.DB
	service *accountsync.Service
}

// pathOverrides are command-line replacements for configured paths.
type pathOverrides struct {
	source string
	local  string
}

func (o pathOverrides) apply(cfg *config.Config) {
	if o.source != "" {
		cfg.Sync.SourcePath = o.source
		cfg.Sync.SourceObject = ""
	}
	if o.local != "" {
		cfg.Sync.LocalPath = o.local
	}
}

// loadRuntime loads configuration and the logger only.
func loadRuntime(o pathOverrides) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	o.apply(cfg)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &runtime{cfg: cfg, logger: l}, nil
}

// newRuntime wires storage, history and the sync service from configuration.
func newRuntime(ctx context.Context, o pathOverrides) (*runtime, error) {
	rt, err := loadRuntime(o)
	if err != nil {
		return nil, err
	}
	cfg := rt.cfg

	// 1. Storage (optional)
	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.store = store
	}

	// 2. Source of truth
	source, err := rt.source()
	if err != nil {
		return nil, err
	}

	localPath, err := cfg.Sync.ResolveLocalPath()
	if err != nil {
		return nil, err
	}
	rt.service = accountsync.NewService(source, localPath, rt.logger)

	// 3. Snapshots
	if cfg.Sync.Archive {
		if rt.store == nil {
			return nil, fmt.Errorf("sync.archive requires storage.enabled")
		}
		if err := storage.EnsureBucket(ctx, rt.store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		rt.service.SetArchiver(accountsync.NewArchiver(rt.store, cfg.Storage.Bucket, cfg.Sync.ArchivePrefix, cfg.Sync.ArchiveKeep))
	}

	// 4. History (optional; a database failure only disables it)
	if cfg.History.Enabled {
		if repo, err := rt.historyRepository(); err != nil {
			rt.logger.Warn("Sync history disabled", zap.Error(err))
		} else {
			rt.service.SetRecorder(repo)
		}
	}

	return rt, nil
}

func (rt *runtime) source() (accountsync.Source, error) {
	cfg := rt.cfg
	if cfg.Sync.SourceObject != "" {
		if rt.store == nil {
			return nil, fmt.Errorf("sync.source_object requires storage.enabled")
		}
		return accountsync.ObjectSource{
			Client: rt.store,
			Bucket: cfg.Storage.Bucket,
			Object: cfg.Sync.SourceObject,
		}, nil
	}

	path, err := cfg.Sync.ResolveSourcePath()
	if err != nil {
		return nil, err
	}
	return accountsync.FileSource{Path: path}, nil
}

// historyRepository connects to the history database and migrates it.
func (rt *runtime) historyRepository() (*history.Repository, error) {
	if rt.db == nil {
		db, err := database.Connect(rt.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		rt.db = db
	}

	repo := history.NewRepository(rt.db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}
