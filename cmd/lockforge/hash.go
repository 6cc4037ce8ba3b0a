package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/crypto"
)

// HashCreate prints the argon2id PHC string for the given password.
func (r *Runner) HashCreate(ctx context.Context, cmd *cli.Command) error {
	text := cmd.StringArg("password")
	if text == "" {
		return fmt.Errorf("usage: lockforge hash create <password>")
	}

	hasher := crypto.NewHasher(crypto.DefaultParams())
	encoded, err := hasher.Hash(text)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintln(r.output, encoded)
	return nil
}

// HashVerify checks a password against an encoded hash. Exits non-zero on
// mismatch so scripts can branch on the result.
func (r *Runner) HashVerify(ctx context.Context, cmd *cli.Command) error {
	text := cmd.StringArg("password")
	encoded := cmd.StringArg("hash")
	if text == "" || encoded == "" {
		return fmt.Errorf("usage: lockforge hash verify <password> <hash>")
	}

	match, err := crypto.Verify(text, encoded)
	if err != nil {
		return fmt.Errorf("failed to verify hash: %w", err)
	}

	if !match {
		fmt.Fprintln(r.output, "no match")
		os.Exit(1)
	}

	fmt.Fprintln(r.output, "match")
	return nil
}
