package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/export"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/history"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/password"
)

// Generate produces one or more passwords and prints each to stdout. Side
// messages go to stderr so piped output stays clean.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	opts := password.Config{
		Length:           cmd.Int("length"),
		Uppercase:        cmd.Bool("upper"),
		Lowercase:        cmd.Bool("lower"),
		Digits:           cmd.Bool("digits"),
		Symbols:          cmd.Bool("symbols"),
		ExcludeAmbiguous: cmd.Bool("exclude-ambiguous"),
	}

	if opts.Length < 1 || opts.Length > 128 {
		return fmt.Errorf("length must be between 1 and 128, got %d", opts.Length)
	}

	count := cmd.Int("count")
	if count < 1 {
		count = 1
	}

	src := password.CryptoSource()
	entries := make([]history.Entry, 0, count)

	for i := 0; i < count; i++ {
		pw := password.Generate(opts, src)
		if pw == "" {
			return fmt.Errorf("at least one character category must be enabled")
		}

		strength := password.Evaluate(pw)
		entries = append(entries, history.Entry{
			ID:        uuid.New().String(),
			Password:  pw,
			Score:     strength.Score,
			Label:     string(strength.Label),
			CreatedAt: time.Now().UTC(),
		})

		if cmd.Bool("score") {
			fmt.Fprintf(r.output, "%s\t%d %s\n", pw, strength.Score, strength.Label)
		} else {
			fmt.Fprintln(r.output, pw)
		}
	}

	if cmd.Bool("copy") {
		if err := clipboard.WriteAll(entries[len(entries)-1].Password); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "copied to clipboard")
	}

	if out := cmd.String("output"); out != "" {
		format, err := export.ParseFormat(cmd.String("format"))
		if err != nil {
			return err
		}

		name, err := export.WriteFile(out, format, entries)
		if err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %d passwords to %s\n", len(entries), name)
	}

	return nil
}

// Strength scores the password given as an argument, falling back to stdin
// when no argument is passed.
func (r *Runner) Strength(ctx context.Context, cmd *cli.Command) error {
	text := cmd.StringArg("password")
	if text == "" {
		data, err := io.ReadAll(r.input)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}
	if text == "" {
		return fmt.Errorf("usage: lockforge strength <password>")
	}

	strength := password.Evaluate(text)
	fmt.Fprintf(r.output, "%d %s\n", strength.Score, strength.Label)
	return nil
}
