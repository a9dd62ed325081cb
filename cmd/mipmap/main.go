// Command mipmap builds the multi-resolution pyramid of a numeric series and
// prints level summaries, a single level, or the level that fits a point
// budget.
//
//	mipmap -i series.txt
//	mipmap -g chirp -n 100000 --max-points 1920
//	mipmap -c mipmap.yaml --level 3
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mipmap1d/mipmap"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("mipmap failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, help, err := parseCommandLine(args)
	if err != nil || help {
		return err
	}

	conf := defaultConfiguration()
	if opts.ConfigPath != "" {
		if conf, err = readConfigurationFile(opts.ConfigPath); err != nil {
			return err
		}
	}
	conf.apply(opts)
	if err := conf.validate(); err != nil {
		return err
	}

	logger, err := newLogger(stderr, conf.LogLevel)
	if err != nil {
		return err
	}

	series, err := loadSeries(conf, stdin)
	if err != nil {
		return err
	}
	logger.Info().Int("values", len(series)).Str("generator", conf.Generate).Msg("series loaded")

	mm, err := mipmap.New(series, mipmap.WithLogger(&logger))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	if err := report(w, mm, conf); err != nil {
		return err
	}

	return w.Flush()
}

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("incorrect log level %q", level)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}
