// Package config loads the data tables the game is driven by: piece shapes,
// fall speeds, line scores and piece colors.
package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

const (
	RotationFile = "rotation_config.json"
	SpeedFile    = "level_speeds.json"
	ScoreFile    = "lines_to_score.json"
	ColorFile    = "piece_colors.json"

	MaxLinesPerClear = 4
)

//go:embed defaults/*.json
var defaults embed.FS

type Config struct {
	Catalog     *mino.Catalog
	LevelSpeeds []int
	LineScores  map[int]int
	Colors      map[mino.Kind]mino.Color
}

// Load reads the configuration from dir, or the built-in tables when dir is
// empty.
func Load(dir string) (*Config, error) {
	if dir == "" {
		sub, err := fs.Sub(defaults, "defaults")
		if err != nil {
			return nil, err
		}

		return LoadFS(sub)
	}

	return LoadFS(os.DirFS(dir))
}

func Default() *Config {
	c, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("built-in configuration is invalid: %s", err))
	}

	return c
}

func LoadFS(fsys fs.FS) (*Config, error) {
	var (
		rotations map[string][][][]int
		speeds    []int
		scores    map[string]int
		colors    map[string][3]uint8
	)

	for _, f := range []struct {
		name string
		v    interface{}
	}{
		{RotationFile, &rotations},
		{SpeedFile, &speeds},
		{ScoreFile, &scores},
		{ColorFile, &colors},
	} {
		if err := decode(fsys, f.name, f.v); err != nil {
			return nil, err
		}
	}

	c := &Config{}

	shapes := make(map[mino.Kind][]mino.Mask, mino.NumKinds)
	for name, states := range rotations {
		k, err := mino.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", RotationFile, err)
		}

		for r, rows := range states {
			m, err := mino.ParseMask(rows)
			if err != nil {
				return nil, fmt.Errorf("%s: piece %s rotation %d: %w", RotationFile, k, r, err)
			}

			shapes[k] = append(shapes[k], m)
		}
	}

	var err error
	c.Catalog, err = mino.NewCatalog(shapes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RotationFile, err)
	}

	if len(speeds) == 0 {
		return nil, fmt.Errorf("%s: no levels defined", SpeedFile)
	}
	for level, s := range speeds {
		if s < 1 {
			return nil, fmt.Errorf("%s: level %d has fall threshold %d, want at least 1", SpeedFile, level, s)
		}
	}
	c.LevelSpeeds = speeds

	c.LineScores = make(map[int]int, MaxLinesPerClear)
	for key, points := range scores {
		lines, err := strconv.Atoi(key)
		if err != nil || lines < 1 || lines > MaxLinesPerClear {
			return nil, fmt.Errorf("%s: invalid line count %q", ScoreFile, key)
		} else if points < 0 {
			return nil, fmt.Errorf("%s: negative score for %d lines", ScoreFile, lines)
		}

		c.LineScores[lines] = points
	}
	for lines := 1; lines <= MaxLinesPerClear; lines++ {
		if _, ok := c.LineScores[lines]; !ok {
			return nil, fmt.Errorf("%s: no score for %d lines", ScoreFile, lines)
		}
	}

	c.Colors = make(map[mino.Kind]mino.Color, mino.NumKinds)
	for name, rgb := range colors {
		k, err := mino.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ColorFile, err)
		}

		c.Colors[k] = mino.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	}
	for _, k := range mino.Kinds {
		if _, ok := c.Colors[k]; !ok {
			return nil, fmt.Errorf("%s: no color for piece %s", ColorFile, k)
		}
	}

	return c, nil
}

func decode(fsys fs.FS, name string, v interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

// FallThreshold returns the ticks per row for a level. Levels past the end
// of the table fall at the last speed.
func (c *Config) FallThreshold(level int) int {
	if level < 0 {
		level = 0
	} else if level >= len(c.LevelSpeeds) {
		level = len(c.LevelSpeeds) - 1
	}

	return c.LevelSpeeds[level]
}

func (c *Config) LineScore(lines int) int {
	return c.LineScores[lines]
}
