package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/axisroll/internal/roll"
)

// DefaultConfigPath is the path to the reference run configuration.
const DefaultConfigPath = "config/run.defaults.json"

// Reference extents, used when the field is omitted. The default shifts
// are the D2Q9 x velocities from the roll package.
var defaultExtents = [3]int{7, 8, 9}

const defaultPreviewRows = 3

// RunConfig describes one roll run. Omitted fields fall back to the
// reference scenario through the Get* methods, so partial configs are safe.
type RunConfig struct {
	Extents     []int `json:"extents,omitempty"` // [N0, N1, N2]
	Shifts      []int `json:"shifts,omitempty"`     // one per axis-2 index
	RowShifts   []int `json:"row_shifts,omitempty"` // axis-0 roll per axis-2 index
	Lattice     *bool `json:"lattice,omitempty"`    // default RowShifts to the D2Q9 y velocities
	PreviewRows *int  `json:"preview_rows,omitempty"`
	Parallel    *bool `json:"parallel,omitempty"`
	Workers     *int  `json:"workers,omitempty"` // 0 means GOMAXPROCS
}

// LoadRunConfig loads a RunConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents up to the repo root. Panics if not found,
// intended for test setup.
func MustLoadDefaultConfig() *RunConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,    // from cmd/axisroll/ style dirs
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadRunConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are usable.
func (c *RunConfig) Validate() error {
	if c.Extents != nil {
		if len(c.Extents) != 3 {
			return fmt.Errorf("extents must have 3 entries, got %d", len(c.Extents))
		}
		for axis, n := range c.Extents {
			if n <= 0 {
				return fmt.Errorf("extent of axis %d must be positive, got %d", axis, n)
			}
		}
	}
	if n2 := c.GetExtents()[2]; len(c.GetShifts()) != n2 {
		return fmt.Errorf("shifts must have %d entries to match axis 2, got %d", n2, len(c.GetShifts()))
	}
	if rows := c.GetRowShifts(); rows != nil && len(rows) != c.GetExtents()[2] {
		return fmt.Errorf("row_shifts must have %d entries to match axis 2, got %d", c.GetExtents()[2], len(rows))
	}
	if c.PreviewRows != nil && *c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must be non-negative, got %d", *c.PreviewRows)
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", *c.Workers)
	}
	return nil
}

// GetExtents returns [N0, N1, N2] or the reference 7x8x9.
func (c *RunConfig) GetExtents() [3]int {
	if len(c.Extents) != 3 {
		return defaultExtents
	}
	return [3]int{c.Extents[0], c.Extents[1], c.Extents[2]}
}

// GetShifts returns a copy of the shift vector, or the reference D2Q9 x
// velocities.
func (c *RunConfig) GetShifts() []int {
	if c.Shifts == nil {
		return roll.D2Q9X()
	}
	return append([]int(nil), c.Shifts...)
}

// GetLattice returns whether row shifts default to the D2Q9 y velocities.
func (c *RunConfig) GetLattice() bool {
	if c.Lattice == nil {
		return false
	}
	return *c.Lattice
}

// GetRowShifts returns a copy of the axis-0 shift vector. It is nil when
// no row roll is configured.
func (c *RunConfig) GetRowShifts() []int {
	if c.RowShifts != nil {
		return append([]int(nil), c.RowShifts...)
	}
	if c.GetLattice() {
		return roll.D2Q9Y()
	}
	return nil
}

// GetPreviewRows returns how many axis-0 rows to print, default 3.
func (c *RunConfig) GetPreviewRows() int {
	if c.PreviewRows == nil {
		return defaultPreviewRows
	}
	return *c.PreviewRows
}

// GetParallel returns whether planes are rolled concurrently.
func (c *RunConfig) GetParallel() bool {
	if c.Parallel == nil {
		return false
	}
	return *c.Parallel
}

// GetWorkers returns the worker limit for parallel runs.
func (c *RunConfig) GetWorkers() int {
	if c.Workers == nil {
		return 0
	}
	return *c.Workers
}
