package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clicycle/internal/interactive"
	"github.com/alexisbeaulieu97/clicycle/pkg/clicycle"
)

func newSelectCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [option]...",
		Short: "Pick one option from a menu",
		Long: `Pick one option from a menu. With a terminal on stdin this is an
arrow-key menu; otherwise it falls back to a numbered prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newCLI(cmd, flags)
			if err != nil {
				return err
			}
			defer cli.Close() //nolint:errcheck

			options := args
			if len(options) == 0 {
				options = []string{"apple", "banana", "cherry"}
			}

			if interactive.IsTerminal(os.Stdin) {
				choices := make([]clicycle.Choice, 0, len(options))
				for _, opt := range options {
					choices = append(choices, clicycle.Choice{Label: opt})
				}
				value, ok, err := cli.InteractiveSelect("option", choices, 0)
				if err != nil {
					return err
				}
				if !ok {
					return cli.Warning("Selection cancelled")
				}
				return cli.Success("Selected " + value)
			}

			value, err := cli.SelectFromList("option", options, "")
			if err != nil {
				return err
			}
			return cli.Success("Selected " + value)
		},
	}

	return cmd
}
