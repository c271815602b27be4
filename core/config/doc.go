// Package config provides configuration management for account-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Sync: source and local document paths, archiving, watch debounce
//   - History: whether sync runs are recorded
//   - Server: HTTP server settings (host, port, API key)
//   - Database: history database (SQLite or MySQL)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level, format and optional rotating file
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores (sync.local_path -> SYNC_LOCAL_PATH). SHELBY_CONFIG_PATH is
// accepted for sync.source_path.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.LocalPath)
package config
