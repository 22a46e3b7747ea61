package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If WGIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.wgit/logs/wgit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("WGIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "wgit.log"
	}

	return filepath.Join(homeDir, ".wgit", "logs", "wgit.log")
}
