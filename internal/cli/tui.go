package cli

import (
	"github.com/spf13/cobra"

	"github.com/joaobcpatricio/gotemplate/internal/ui/tui"
)

func tuiCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			return tui.Run(tui.Deps{
				Project:  rt.info,
				Overflow: rt.cfg.Counter.Overflow,
				Logger:   rt.log,
				Debug:    rt.debug,
			})
		},
	}
}
