package history

import "time"

// SyncRun is one recorded reconciliation run. It stores counts and locations
// only; account data never reaches the database.
type SyncRun struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	StartedAt  time.Time `gorm:"column:started_at;index" json:"started_at"`
	DurationMs int64     `gorm:"column:duration_ms" json:"duration_ms"`
	Source     string    `gorm:"column:source;size:512" json:"source"`
	LocalPath  string    `gorm:"column:local_path;size:512" json:"local_path"`
	Added      int       `gorm:"column:added" json:"added"`
	Filled     int       `gorm:"column:filled" json:"filled"`
	Mismatches int       `gorm:"column:mismatches" json:"mismatches"`
	DryRun     bool      `gorm:"column:dry_run" json:"dry_run"`
	Written    bool      `gorm:"column:written" json:"written"`
	Snapshot   string    `gorm:"column:snapshot;size:512" json:"snapshot,omitempty"`
}

// TableName overrides the table name.
func (SyncRun) TableName() string {
	return "sync_runs"
}
