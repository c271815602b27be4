package accountsync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultSourceRelPath is the wallet CLI configuration, relative to the home directory.
const DefaultSourceRelPath = ".shelby/config.yaml"

// Config holds the document locations and sync behaviour.
type Config struct {
	// SourcePath overrides the source-of-truth document path.
	// Empty means ~/.shelby/config.yaml. SHELBY_CONFIG_PATH is honoured as an alias.
	SourcePath string `mapstructure:"source_path" default:""`
	// LocalPath is the local document kept in sync.
	LocalPath string `mapstructure:"local_path" default:"pk.txt"`
	// SourceObject, when set, reads the source document from this object in the storage bucket.
	SourceObject string `mapstructure:"source_object" default:""`
	// Archive uploads the previous local document to storage before it is overwritten.
	Archive bool `mapstructure:"archive" default:"false"`
	// ArchivePrefix is the object prefix for snapshots.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"snapshots"`
	// ArchiveKeep is the number of snapshots retained per document. Zero keeps all.
	ArchiveKeep int `mapstructure:"archive_keep" default:"10"`
	// WatchDebounce delays a watch-triggered sync until writes settle.
	WatchDebounce time.Duration `mapstructure:"watch_debounce" default:"500ms"`
}

// ResolveSourcePath returns the absolute source document path.
func (c Config) ResolveSourcePath() (string, error) {
	if c.SourcePath != "" {
		return expandHome(c.SourcePath)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultSourceRelPath), nil
}

// ResolveLocalPath returns the local document path with ~ expanded.
func (c Config) ResolveLocalPath() (string, error) {
	if c.LocalPath == "" {
		return "", fmt.Errorf("sync.local_path must not be empty")
	}
	return expandHome(c.LocalPath)
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
