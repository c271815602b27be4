package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxLimit bounds a single List call.
const MaxLimit = 500

// Repository persists sync runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the sync_runs table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&SyncRun{}); err != nil {
		return fmt.Errorf("failed to migrate sync_runs: %w", err)
	}
	return nil
}

// Record stores run, assigning an ID when it has none.
func (r *Repository) Record(ctx context.Context, run *SyncRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}

// List returns up to limit runs, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]SyncRun, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	var runs []SyncRun
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}
