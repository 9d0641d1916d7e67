// SPDX-License-Identifier: MIT

// Package config loads the dsalab YAML configuration.
//
// The file lives at ~/.dsalab.yaml unless a path is given. A missing or
// unreadable file yields Default(); a file that exists but does not parse
// or validate is an error.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dsalab/avl"
	"github.com/katalvlaran/dsalab/sorting"
)

// FileName is the default config file name under the user's home directory.
const FileName = ".dsalab.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk configuration.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Graph     GraphConfig     `yaml:"graph"`
	HashTable HashTableConfig `yaml:"hashtable"`
	Queue     QueueConfig     `yaml:"queue"`
	Sort      SortConfig      `yaml:"sort"`
	AVL       AVLConfig       `yaml:"avl"`
	Grid      GridConfig      `yaml:"grid"`
}

type GraphConfig struct {
	Directed bool `yaml:"directed"`
	MaxNodes int  `yaml:"max_nodes"` // 0 = unbounded
}

type HashTableConfig struct {
	Buckets       int     `yaml:"buckets"`
	MaxLoadFactor float64 `yaml:"max_load_factor"` // 0 = fixed bucket count
	Murmur3       bool    `yaml:"murmur3"`
}

type QueueConfig struct {
	Capacity int `yaml:"capacity"`
}

type SortConfig struct {
	Algorithm string `yaml:"algorithm"`
}

type AVLConfig struct {
	Order string `yaml:"order"`
}

// GridConfig sizes the session's sparse grid (e.g. years × cities).
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		HashTable: HashTableConfig{Buckets: 10},
		Queue:     QueueConfig{Capacity: 20},
		Sort:      SortConfig{Algorithm: string(sorting.AlgQuick)},
		AVL:       AVLConfig{Order: avl.InOrder.String()},
		Grid:      GridConfig{Rows: 10, Cols: 10},
	}
}

// DefaultPath returns ~/.dsalab.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}

	return filepath.Join(home, FileName), nil
}

// Load reads path, or DefaultPath() when path is empty. Fields the file
// omits keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			slog.Debug("no home directory, using default config", "err", err)
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("config file not read, using defaults", "path", path, "err", err)
		return Default(), nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.HashTable.Buckets <= 0 {
		return fmt.Errorf("%w: hashtable.buckets must be positive, got %d", ErrInvalid, c.HashTable.Buckets)
	}
	if c.HashTable.MaxLoadFactor < 0 {
		return fmt.Errorf("%w: hashtable.max_load_factor must not be negative", ErrInvalid)
	}
	if c.Queue.Capacity <= 0 {
		return fmt.Errorf("%w: queue.capacity must be positive, got %d", ErrInvalid, c.Queue.Capacity)
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", ErrInvalid, c.Grid.Rows, c.Grid.Cols)
	}
	if c.Graph.MaxNodes < 0 {
		return fmt.Errorf("%w: graph.max_nodes must not be negative", ErrInvalid)
	}
	if _, err := sorting.ByName(c.Sort.Algorithm); err != nil {
		return fmt.Errorf("%w: sort.algorithm: %v", ErrInvalid, err)
	}
	if _, err := avl.ParseOrder(c.AVL.Order); err != nil {
		return fmt.Errorf("%w: avl.order: %v", ErrInvalid, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, err
	}

	return lvl, nil
}

// Write stores c as YAML at path, creating parent directories. An existing
// file is replaced.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// YAML renders c as a YAML document.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("config: marshal: %w", err)
	}

	return string(data), nil
}
