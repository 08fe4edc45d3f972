package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clicycle/internal/logger"
	"github.com/alexisbeaulieu97/clicycle/pkg/clicycle"
)

type rootFlags struct {
	verbose   bool
	themePath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "clicycle",
		Short:         "Clicycle renders self-spacing terminal output components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log each spacing decision to stderr")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Path to a theme overlay file")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newSelectCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newCLI builds a Clicycle instance from the persistent flags, writing
// to the command's stdout.
func newCLI(cmd *cobra.Command, flags *rootFlags) (*clicycle.Clicycle, error) {
	opts := []clicycle.Option{
		clicycle.WithOutput(cmd.OutOrStdout()),
		clicycle.WithInput(cmd.InOrStdin()),
	}

	if flags.themePath != "" {
		th, err := clicycle.LoadTheme(flags.themePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, clicycle.WithTheme(th))
	}

	if flags.verbose {
		log, err := logger.New(logger.Options{Level: "debug", HumanReadable: true, Writer: cmd.ErrOrStderr()})
		if err != nil {
			return nil, err
		}
		opts = append(opts, clicycle.WithLogger(log))
	}

	return clicycle.New(opts...)
}
