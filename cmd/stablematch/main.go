// Command stablematch computes, verifies, generates and benchmarks stable
// matchings between hospitals and students.
//
// Run using
//
//	go run ./cmd/stablematch <command> <flags>
//
// Exit status: 0 success, 1 malformed input or usage error, 2 invalid
// matching, 3 unstable matching.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/stablematch/internal/config"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitInvalid  = 2
	exitUnstable = 3
)

const envKey = "env"

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "read settings from a config file (yaml, json, toml)",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "log level: trace, debug, info, warn, error",
	}
)

var commands = []*cli.Command{
	&MatchCmd,
	&VerifyCmd,
	&GenerateCmd,
	&BenchCmd,
}

// env carries the resolved configuration into command actions.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the application and maps its outcome to an exit status.
func run(args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).Run(args)
	if err == nil {
		return exitOK
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return ec.ExitCode()
	}
	fmt.Fprintln(stderr, "Error:", err)

	return exitFailure
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "stablematch",
		Usage:     "stable matching engine and verifier",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&configFlag,
			&logLevelFlag,
		},
		Commands: commands,
		Metadata: map[string]interface{}{},
		Before:   setup,
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return cli.Exit(fmt.Sprintf("Error: unknown command %q", c.Args().First()), exitFailure)
			}
			return cli.ShowAppHelp(c)
		},
		// Exit decisions are made by run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// setup resolves the configuration: defaults, environment, --config file,
// then --log-level.
func setup(c *cli.Context) error {
	cfg := config.New()
	if path := c.String(configFlag.Name); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if c.IsSet(logLevelFlag.Name) {
		cfg.Set("log.level", c.String(logLevelFlag.Name))
	}
	c.App.Metadata[envKey] = &env{cfg: cfg, log: cfg.CreateLogger(c.App.ErrWriter)}

	return nil
}

func appEnv(c *cli.Context) *env {
	return c.App.Metadata[envKey].(*env)
}

// wantArgs fails with a usage error unless exactly n positional arguments
// were given.
func wantArgs(c *cli.Context, n int) error {
	if c.Args().Len() != n {
		return cli.Exit(fmt.Sprintf("Usage: %s %s %s", c.App.Name, c.Command.Name, c.Command.ArgsUsage), exitFailure)
	}

	return nil
}
