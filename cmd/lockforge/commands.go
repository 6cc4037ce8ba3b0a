// Command definitions for the lockforge CLI.
package main

import "github.com/urfave/cli/v3"

func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate one or more passwords",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   "Password length",
				Value:   r.prefs.Generator.Length,
			},
			&cli.BoolFlag{
				Name:  "upper",
				Usage: "Include uppercase letters",
				Value: r.prefs.Generator.Uppercase,
			},
			&cli.BoolFlag{
				Name:  "lower",
				Usage: "Include lowercase letters",
				Value: r.prefs.Generator.Lowercase,
			},
			&cli.BoolFlag{
				Name:  "digits",
				Usage: "Include digits",
				Value: r.prefs.Generator.Digits,
			},
			&cli.BoolFlag{
				Name:  "symbols",
				Usage: "Include symbols",
				Value: r.prefs.Generator.Symbols,
			},
			&cli.BoolFlag{
				Name:    "exclude-ambiguous",
				Aliases: []string{"x"},
				Usage:   "Exclude ambiguous characters (0O1lI)",
				Value:   r.prefs.Generator.ExcludeAmbiguous,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of passwords to generate",
				Value:   1,
			},
			&cli.BoolFlag{
				Name:  "score",
				Usage: "Print the strength score next to each password",
			},
			&cli.BoolFlag{
				Name:    "copy",
				Aliases: []string{"c"},
				Usage:   "Copy the last password to the clipboard",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the generated passwords to a file",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output file format (txt, csv, json, md)",
				Value:   r.prefs.Export.Format,
			},
		},
		Action: r.Generate,
	}
}

func strengthCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "strength",
		Aliases: []string{"check"},
		Usage:   "Score a password without generating one",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "password",
			},
		},
		Action: r.Strength,
	}
}

func hashCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "hash",
		Usage: "Hash and verify passwords with argon2id",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Hash a password for storage",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "password",
					},
				},
				Action: r.HashCreate,
			},
			{
				Name:  "verify",
				Usage: "Verify a password against an encoded hash",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "password",
					},
					&cli.StringArg{
						Name: "hash",
					},
				},
				Action: r.HashVerify,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Launch the interactive terminal UI",
		Action:  r.TUI,
	}
}

func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a preferences file with the default settings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path for the preferences file",
				Value: configPath,
			},
		},
		Action: r.Init,
	}
}
