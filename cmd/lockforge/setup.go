package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/config"
)

// Init writes the default preferences file for later editing.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := config.CreateFile(path); err != nil {
		return err
	}

	fmt.Fprintf(r.output, "wrote preferences to %s\n", path)
	return nil
}
