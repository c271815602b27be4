package history

// Config holds configuration for the sync history.
type Config struct {
	// Enabled records every sync run in the database.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// DefaultLimit caps list results when the caller gives no limit.
	DefaultLimit int `mapstructure:"default_limit" default:"20"`
}
