package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joaobcpatricio/gotemplate/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	debug  bool
	config string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "gotemplate",
		Short:        "gotemplate — a counter, its build configuration and a few small demos",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "%s\n%s\n", rt.info.Name(), rt.info.Version()); err != nil {
				return err
			}

			ex := usecase.NewExample(rt.info,
				usecase.WithOutput(out),
				usecase.WithOverflowPolicy(rt.cfg.Counter.Overflow),
				usecase.WithLogger(rt.log),
			)
			return ex.PrintConfigured()
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "path to a gotemplate.yaml (optional; searched upward from the working directory if omitted)")

	cmd.AddCommand(
		versionCmd(),
		demoCmd(),
		countCmd(flags),
		tuiCmd(flags),
	)
	return cmd
}
