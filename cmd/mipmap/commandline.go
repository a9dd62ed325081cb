package main

import (
	"github.com/jessevdk/go-flags"
)

// CommandLineOptions are the flags of the mipmap tool. Pointer fields stay
// nil when a flag is not given, so the configuration file keeps its value.
type CommandLineOptions struct {
	ConfigPath string   `short:"c" long:"config" description:"YAML configuration file"`
	Input      *string  `short:"i" long:"input" description:"input file with numeric values, - for stdin"`
	Generate   *string  `short:"g" long:"generate" description:"generate a synthetic series (pulse, chirp, ramp) instead of reading input"`
	Samples    *int     `short:"n" long:"samples" description:"number of generated samples"`
	Seed       *int64   `long:"seed" description:"seed for generated noise"`
	Noise      *float64 `long:"noise" description:"standard deviation of Gaussian noise added to generated series"`
	Level      *int     `short:"l" long:"level" description:"print the values of this level"`
	MaxPoints  *int     `short:"m" long:"max-points" description:"print the finest level holding at most this many values"`
	LogLevel   *string  `long:"log-level" description:"log level (debug, info, warn, error, disabled)"`
}

// parseCommandLine parses args (without the program name). help is true
// when -h/--help was requested and usage has already been printed.
func parseCommandLine(args []string) (opts CommandLineOptions, help bool, err error) {
	parser := flags.NewParser(&opts, flags.Default)
	if _, err = parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return opts, true, nil
		}

		return opts, false, err
	}

	return opts, false, nil
}
