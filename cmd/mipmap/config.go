package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration holds the effective settings of one run. It is read from
// the YAML file given with -c and then overridden by explicit flags.
type Configuration struct {
	Input     string  `yaml:"input"`
	Generate  string  `yaml:"generate"`
	Samples   int     `yaml:"samples"`
	Seed      int64   `yaml:"seed"`
	Noise     float64 `yaml:"noise"`
	Level     *int    `yaml:"level"`
	MaxPoints *int    `yaml:"max_points"`
	LogLevel  string  `yaml:"log_level"`
}

func defaultConfiguration() Configuration {
	return Configuration{
		Input:    "-",
		Samples:  1024,
		LogLevel: "info",
	}
}

func readConfigurationFile(confpath string) (Configuration, error) {
	conf := defaultConfiguration()

	f, err := os.Open(confpath)
	if err != nil {
		return conf, fmt.Errorf("could not open configuration file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil {
		return conf, fmt.Errorf("could not parse configuration file %s: %w", confpath, err)
	}

	return conf, nil
}

// apply overrides conf with every flag that was given.
func (conf *Configuration) apply(opts CommandLineOptions) {
	if opts.Input != nil {
		conf.Input = *opts.Input
	}
	if opts.Generate != nil {
		conf.Generate = *opts.Generate
	}
	if opts.Samples != nil {
		conf.Samples = *opts.Samples
	}
	if opts.Seed != nil {
		conf.Seed = *opts.Seed
	}
	if opts.Noise != nil {
		conf.Noise = *opts.Noise
	}
	if opts.Level != nil {
		conf.Level = opts.Level
	}
	if opts.MaxPoints != nil {
		conf.MaxPoints = opts.MaxPoints
	}
	if opts.LogLevel != nil {
		conf.LogLevel = *opts.LogLevel
	}
}

func (conf Configuration) validate() error {
	switch conf.Generate {
	case "", "pulse", "chirp", "ramp":
	default:
		return fmt.Errorf("unknown generator %q (want pulse, chirp or ramp)", conf.Generate)
	}
	if conf.Generate != "" && conf.Samples < 1 {
		return fmt.Errorf("samples must be >= 1, got %d", conf.Samples)
	}
	if conf.Noise < 0 {
		return fmt.Errorf("noise must be >= 0, got %g", conf.Noise)
	}
	if conf.Level != nil && conf.MaxPoints != nil {
		return fmt.Errorf("level and max-points are mutually exclusive")
	}

	return nil
}
