package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const HighScoreFileName = "highscore.txt"

// HighScoreFile persists the high score as a decimal integer.
type HighScoreFile struct {
	Path string
}

func DefaultHighScorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return HighScoreFileName
	}

	return filepath.Join(dir, "blockterm", HighScoreFileName)
}

// Load returns the stored high score. A missing file reads as zero.
func (h *HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(h.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, fmt.Errorf("malformed high score in %s: %q", h.Path, strings.TrimSpace(string(data)))
	}

	return score, nil
}

func (h *HighScoreFile) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(h.Path), 0755); err != nil {
		return fmt.Errorf("failed to create high score directory: %w", err)
	}

	if err := os.WriteFile(h.Path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}

	return nil
}
