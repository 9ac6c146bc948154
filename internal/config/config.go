package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/skilldrill/internal/field"
)

const (
	DefaultPreset     = "small"
	DefaultSteps      = 5
	DefaultPulseDelay = 500 * time.Millisecond
	DefaultTheme      = "orange"
	DefaultDataDir    = ".skilldrill"
	DefaultLogFile    = "skilldrill.log"
)

type Config struct {
	Puzzle  PuzzleConfig `yaml:"puzzle"`
	Wizard  WizardConfig `yaml:"wizard"`
	Theme   string       `yaml:"theme"`
	DataDir string       `yaml:"data_dir"`
	LogFile string       `yaml:"log_file"`
	Verbose bool         `yaml:"verbose"`
}

// PuzzleConfig picks a built-in preset or carries an inline grid. An inline
// grid wins over the preset.
type PuzzleConfig struct {
	Preset string       `yaml:"preset"`
	Field  [][]int      `yaml:"field,omitempty"`
	Answer field.Answer `yaml:"answer,omitempty"`
}

type WizardConfig struct {
	Steps      int           `yaml:"steps"`
	PulseDelay time.Duration `yaml:"pulse_delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Puzzle: PuzzleConfig{Preset: DefaultPreset},
		Wizard: WizardConfig{
			Steps:      DefaultSteps,
			PulseDelay: DefaultPulseDelay,
		},
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
		LogFile: DefaultLogFile,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPuzzle reads a standalone puzzle file ({field, answer}).
func LoadPuzzle(path string) (field.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return field.Data{}, err
	}
	var d field.Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return field.Data{}, err
	}
	return d, nil
}

// PuzzleData resolves the configured puzzle.
func (c *Config) PuzzleData() (field.Data, error) {
	if len(c.Puzzle.Field) > 0 {
		return field.Data{Field: c.Puzzle.Field, Answer: c.Puzzle.Answer}, nil
	}
	d, ok := GetPreset(c.Puzzle.Preset)
	if !ok {
		return field.Data{}, fmt.Errorf("unknown preset: %s (available: %v)", c.Puzzle.Preset, ListPresets())
	}
	return d, nil
}
