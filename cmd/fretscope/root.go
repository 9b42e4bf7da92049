package main

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-fretboard/internal/config"
	"github.com/cwbudde/algo-fretboard/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":   "log_level",
	"output":      "output",
	"sample-rate": "sample_rate",
	"min-snr":     "analysis.min_snr",
	"min-freq":    "analysis.min_frequency",
	"max-freq":    "analysis.max_frequency",
	"max-peaks":   "analysis.max_peaks",
	"window":      "analysis.window",
	"smooth":      "analysis.smooth",
	"max-notes":   "notes.max_notes",
	"threshold":   "bands.trend_threshold",
	"window-size": "bands.window_size",
	"hop":         "bands.hop",
	"workers":     "worker.workers",
}

type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "fretscope",
		Short: "Spectral analysis of guitar notes",
		Long: `fretscope computes magnitude spectra of guitar recordings, ranks their
peaks, matches them against the notes of a standard-tuned guitar and tracks
the energy of frequency bands across successive windows.

Settings come from defaults, an optional YAML file (--config), FRETSCOPE_*
environment variables and flags, in increasing priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", "table", "output format (table, json, yaml)")
	pf.Float64("sample-rate", 44100, "sample rate for synthesized input in Hz")

	root.AddCommand(
		newAnalyzeCmd(a),
		newBandsCmd(a),
		newCatalogueCmd(a),
	)
	return root
}

func (a *app) setup(flags *pflag.FlagSet) error {
	v := config.New()
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("config_file", a.configFile),
		zap.Float64("sample_rate", cfg.SampleRate),
		zap.String("output", cfg.Output))
	return nil
}
