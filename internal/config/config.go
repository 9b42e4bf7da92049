// Package config loads fretscope settings from defaults, an optional YAML
// file and FRETSCOPE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fretboard/dsp/core"
	"github.com/cwbudde/algo-fretboard/measure/bands"
	"github.com/cwbudde/algo-fretboard/measure/guitar"
	"github.com/cwbudde/algo-fretboard/measure/peaks"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FRETSCOPE_ANALYSIS_MAX_PEAKS.
const EnvPrefix = "FRETSCOPE"

// Config is the complete fretscope configuration.
type Config struct {
	SampleRate  float64 `mapstructure:"sample_rate"`
	LogLevel    string  `mapstructure:"log_level"`
	Development bool    `mapstructure:"development"`
	Output      string  `mapstructure:"output"`

	Analysis AnalysisConfig `mapstructure:"analysis"`
	Notes    NotesConfig    `mapstructure:"notes"`
	Bands    BandsConfig    `mapstructure:"bands"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// AnalysisConfig mirrors peaks.Options.
type AnalysisConfig struct {
	MinSNR       float64 `mapstructure:"min_snr"`
	MinFrequency float64 `mapstructure:"min_frequency"`
	MaxFrequency float64 `mapstructure:"max_frequency"`
	MaxPeaks     int     `mapstructure:"max_peaks"`
	Window       string  `mapstructure:"window"`
	Smooth       int     `mapstructure:"smooth"`
}

// NotesConfig configures the guitar note matcher.
type NotesConfig struct {
	MaxNotes int `mapstructure:"max_notes"`
}

// BandsConfig configures band tracking. An empty Definitions list selects
// bands.CommonBands.
type BandsConfig struct {
	TrendThreshold float64      `mapstructure:"trend_threshold"`
	WindowSize     int          `mapstructure:"window_size"`
	Hop            int          `mapstructure:"hop"`
	Definitions    []bands.Band `mapstructure:"definitions"`
}

// WorkerConfig sizes the compute worker pool.
type WorkerConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sample_rate", core.DefaultSampleRate)
	v.SetDefault("log_level", "info")
	v.SetDefault("development", false)
	v.SetDefault("output", "table")

	d := peaks.DefaultOptions()
	v.SetDefault("analysis.min_snr", d.MinSNR)
	v.SetDefault("analysis.min_frequency", d.MinFrequency)
	v.SetDefault("analysis.max_frequency", d.MaxFrequency)
	v.SetDefault("analysis.max_peaks", d.MaxPeaks)
	v.SetDefault("analysis.window", "hann")
	v.SetDefault("analysis.smooth", 0)

	v.SetDefault("notes.max_notes", guitar.DefaultMaxNotes)

	v.SetDefault("bands.trend_threshold", bands.DefaultTrendThreshold)
	v.SetDefault("bands.window_size", 4410)
	v.SetDefault("bands.hop", 0)

	v.SetDefault("worker.workers", 2)
	v.SetDefault("worker.queue_size", 16)
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional YAML file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	errSampleRate = errors.New("sample rate must be positive")
	errOutput     = errors.New("output must be table, json or yaml")
)

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %v", errSampleRate, c.SampleRate)
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", errOutput, c.Output)
	}
	if c.Analysis.MaxPeaks < 0 {
		return fmt.Errorf("max peaks cannot be negative: %d", c.Analysis.MaxPeaks)
	}
	if c.Analysis.Smooth < 0 {
		return fmt.Errorf("smoothing window cannot be negative: %d", c.Analysis.Smooth)
	}
	if c.Bands.WindowSize <= 0 {
		return fmt.Errorf("band window size must be positive: %d", c.Bands.WindowSize)
	}
	if c.Worker.Workers <= 0 {
		return fmt.Errorf("worker count must be positive: %d", c.Worker.Workers)
	}
	if c.Worker.QueueSize < 0 {
		return fmt.Errorf("worker queue size cannot be negative: %d", c.Worker.QueueSize)
	}
	return nil
}

// PeakOptions converts the analysis section into peaks.Options.
func (c AnalysisConfig) PeakOptions() peaks.Options {
	return peaks.Options{
		MinSNR:       c.MinSNR,
		MinFrequency: c.MinFrequency,
		MaxFrequency: c.MaxFrequency,
		MaxPeaks:     c.MaxPeaks,
	}
}

// BandList returns the configured bands or bands.CommonBands.
func (c BandsConfig) BandList() []bands.Band {
	if len(c.Definitions) == 0 {
		return bands.CommonBands()
	}
	out := make([]bands.Band, len(c.Definitions))
	copy(out, c.Definitions)
	return out
}
