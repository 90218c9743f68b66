// Package config holds the application settings of the stablematch CLI,
// backed by viper, and builds its zerolog logger.
//
// Precedence, highest first: values Set from command-line flags, environment
// variables (STABLEMATCH_LOG_LEVEL, STABLEMATCH_BENCH_REPEATS, ...), the
// optional config file, defaults.
package config

import (
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stablematch/bench"
)

// EnvPrefix prefixes every environment variable read by Config.
const EnvPrefix = "STABLEMATCH"

// Config manages application configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment binding.
func New() *Config {
	v := viper.New()

	v.SetDefault("log.level", "info")

	v.SetDefault("bench.sizes", bench.DefaultSizes)
	v.SetDefault("bench.repeats", 1)
	v.SetDefault("bench.seed", 1)
	v.SetDefault("bench.workers", runtime.NumCPU())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a config file; the format follows its extension.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set overrides key, typically from a command-line flag.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) LogLevel() string { return c.v.GetString("log.level") }

func (c *Config) BenchRepeats() int { return c.v.GetInt("bench.repeats") }
func (c *Config) BenchSeed() int64  { return c.v.GetInt64("bench.seed") }
func (c *Config) BenchWorkers() int { return c.v.GetInt("bench.workers") }

// BenchSizes returns bench.sizes. Environment values arrive as a string and
// are split on commas and spaces ("3,5" or "3 5"); a non-integer token
// yields nil, which bench.Run rejects.
func (c *Config) BenchSizes() []int {
	raw, ok := c.v.Get("bench.sizes").(string)
	if !ok {
		return c.v.GetIntSlice("bench.sizes")
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		out = append(out, n)
	}

	return out
}

// Bench assembles a bench.Config from the bench.* keys.
func (c *Config) Bench() bench.Config {
	return bench.Config{
		Sizes:   c.BenchSizes(),
		Repeats: c.BenchRepeats(),
		Seed:    c.BenchSeed(),
		Workers: c.BenchWorkers(),
	}
}

// CreateLogger creates a console logger writing to w at the configured
// level; an unknown level falls back to info.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "stablematch").Logger()
}
