package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrInvalidOptions = errors.New("invalid options")

// Options are the runtime settings assembled from flags and the environment.
type Options struct {
	Seconds  int
	Headless bool
	Theme    string
	LogLevel string
	LogFile  string
}

// Defaults returns options seeded from COUNTDOWN_* environment variables.
func Defaults() Options {
	o := Options{
		Theme:    DefaultTheme,
		LogLevel: "info",
	}
	if v := env("THEME"); v != "" {
		o.Theme = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		o.LogLevel = v
	}
	if v := env("LOG_FILE"); v != "" {
		o.LogFile = v
	}
	return o
}

// Parse reads command-line flags on top of Defaults.
func Parse(name string, args []string) (Options, error) {
	o := Defaults()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&o.Seconds, "seconds", 0, "initial countdown duration in seconds")
	fs.BoolVar(&o.Headless, "headless", false, "print the countdown instead of starting the interactive UI")
	fs.StringVar(&o.Theme, "theme", o.Theme, "color theme (default, dracula)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "log file path (default: data dir)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, o.Validate()
}

func (o Options) Validate() error {
	if o.Seconds < 0 || o.Seconds > MaxDurationSeconds {
		return fmt.Errorf("%w: seconds must be between 0 and %d", ErrInvalidOptions, MaxDurationSeconds)
	}
	if o.Headless && o.Seconds == 0 {
		return fmt.Errorf("%w: -headless needs -seconds", ErrInvalidOptions)
	}
	if _, err := logrus.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (o Options) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}
