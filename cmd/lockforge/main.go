package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/config"
)

// configPath is where preferences are looked up relative to the working
// directory. `lockforge init` writes this file.
const configPath = "lockforge.toml"

func main() {
	prefs := config.DefaultFileConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := config.LoadFile(configPath); err == nil {
			prefs = loaded
		} else {
			slog.Warn("failed to load preferences, using defaults", "path", configPath, "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{Prefs: prefs})

	app := &cli.Command{
		Name:     "lockforge",
		Usage:    "Generate strong passwords from the terminal",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// Runner holds the dependencies for CLI command actions.
type Runner struct {
	prefs  *config.FileConfig
	input  io.Reader
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Prefs  *config.FileConfig
	Input  io.Reader
	Output io.Writer
}

// NewRunner creates a Runner, filling unset options with defaults.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Prefs == nil {
		opts.Prefs = config.DefaultFileConfig()
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		prefs:  opts.Prefs,
		input:  opts.Input,
		output: opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		generateCommand, strengthCommand, hashCommand, tuiCommand, initCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}
