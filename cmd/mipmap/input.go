package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mipmap1d/signal"
)

// readSeries parses whitespace, comma or newline separated float64 values.
// Lines starting with '#' are comments.
func readSeries(r io.Reader) ([]float64, error) {
	var series []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid value %q", line, field)
			}
			series = append(series, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return series, nil
}

// loadSeries reads conf.Input or runs the configured generator.
func loadSeries(conf Configuration, stdin io.Reader) ([]float64, error) {
	var opts []signal.Option
	if conf.Noise > 0 {
		opts = append(opts, signal.WithNoise(conf.Noise))
	}

	switch conf.Generate {
	case "pulse":
		return signal.Pulse(conf.Samples, conf.Seed, opts...), nil
	case "chirp":
		return signal.Chirp(conf.Samples, conf.Seed, opts...), nil
	case "ramp":
		return signal.Ramp(conf.Samples, conf.Seed, opts...), nil
	}

	if conf.Input == "" || conf.Input == "-" {
		return readSeries(stdin)
	}

	f, err := os.Open(conf.Input)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer f.Close()

	return readSeries(f)
}
