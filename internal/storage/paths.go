// Package storage persists perft results so repeated runs can skip work.
package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	appName = "chesscore"

	// CacheDirEnv overrides the cache location when set.
	CacheDirEnv = "CHESSCORE_CACHE_DIR"
)

// CacheDir returns the directory holding the perft result database,
// creating it if needed. CHESSCORE_CACHE_DIR wins; otherwise it lives under
// the user cache directory:
// - Linux: $XDG_CACHE_HOME/chesscore/perft or ~/.cache/chesscore/perft
// - macOS: ~/Library/Caches/chesscore/perft
// - Windows: %LocalAppData%/chesscore/perft
func CacheDir() (string, error) {
	dir := os.Getenv(CacheDirEnv)
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("locate cache dir: %w", err)
		}
		dir = filepath.Join(base, appName, "perft")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	log.Printf("Perft cache directory: %s", dir)

	return dir, nil
}
