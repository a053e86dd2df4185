// Command mtimpedance prints the surface impedance of preset layered-Earth
// models over a range of frequencies.
//
// Usage:
//
//	mtimpedance [flags] [profile-code ...]
//
// Without arguments it evaluates every known profile.
//
// Examples:
//
//	mtimpedance BM
//	mtimpedance -fmin 1e-5 -fmax 1 -count 21 OM DB
//	mtimpedance -layer 2 -out bm.parquet BM
//	mtimpedance -list
//
// Defaults can be supplied through a config file (-config) or GEOMAG_*
// environment variables, e.g. GEOMAG_FMIN=1e-5.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-geomag/earth"
	"github.com/cwbudde/algo-geomag/impedance"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}

// run executes the command and logs a failure through the configured logger.
// Errors raised before the configuration is resolved use the default level.
func run(args []string, stdout, stderr io.Writer) (err error) {
	logger, err := newLogger(stderr, defaultLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && !errors.Is(err, flag.ErrHelp) {
			logger.Error().Err(err).Msg("mtimpedance failed")
		}
	}()

	fs := flag.NewFlagSet("mtimpedance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional config file (yaml, toml, json or env)")
	fs.Int(keyLayer, 0, "index of the layer whose impedance is reported (0 = surface)")
	fs.Float64(keyFMin, defaultFMin, "lowest frequency in Hz")
	fs.Float64(keyFMax, defaultFMax, "highest frequency in Hz")
	fs.Int(keyCount, defaultCount, "number of log-spaced frequencies")
	fs.String(keyOut, "", "write all rows to this parquet file")
	fs.String(keyLogLevel, defaultLogLevel, "log level (debug, info, warn, error)")
	list := fs.Bool("list", false, "list available profile codes")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mtimpedance [flags] [profile-code ...]\n\n")
		fmt.Fprintf(stderr, "Prints the 1D layered-Earth surface impedance of preset profiles.\n")
		fmt.Fprintf(stderr, "Without arguments, evaluates every profile.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  mtimpedance BM\n")
		fmt.Fprintf(stderr, "  mtimpedance -fmin 1e-5 -fmax 1 -count 21 OM DB\n")
		fmt.Fprintf(stderr, "  mtimpedance -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, fs)
	if err != nil {
		return err
	}

	configured, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = configured

	if *list {
		return printList(stdout)
	}

	codes := fs.Args()
	if len(codes) == 0 {
		codes = earth.ProfileCodes()
	}

	freqs, err := impedance.LogFrequencies(cfg.FMin, cfg.FMax, cfg.Count)
	if err != nil {
		return err
	}

	reports := make([]report, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		site, err := earth.Profile(code)
		if err != nil {
			return fmt.Errorf("%w (use -list to see available)", err)
		}

		res, err := impedance.ComputeSite(site, freqs, impedance.WithLayer(cfg.Layer))
		if err != nil {
			return fmt.Errorf("profile %s: %w", code, err)
		}
		logger.Debug().
			Str("profile", code).
			Int("layers", site.Len()).
			Int("layer", cfg.Layer).
			Int("frequencies", len(freqs)).
			Msg("computed impedance")

		reports = append(reports, report{code: code, site: site, result: res})
	}

	if err := printReports(stdout, reports); err != nil {
		return err
	}

	if cfg.Out != "" {
		if err := exportParquetFile(cfg.Out, reports); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Out).Int("profiles", len(reports)).Msg("wrote parquet export")
	}
	return nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}
