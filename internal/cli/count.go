package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
	"github.com/joaobcpatricio/gotemplate/internal/usecase"
)

func countCmd(flags *rootFlags) *cobra.Command {
	var times int
	var overflow string

	c := &cobra.Command{
		Use:   "count",
		Short: "Increment a fresh counter and print its value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if times < 0 {
				return fmt.Errorf("--times must be >= 0, got %d", times)
			}

			rt, err := loadRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			policy := rt.cfg.Counter.Overflow
			if strings.TrimSpace(overflow) != "" {
				policy, err = domain.ParseOverflowPolicy(overflow)
				if err != nil {
					return err
				}
			}

			ex := usecase.NewExample(rt.info,
				usecase.WithOutput(cmd.OutOrStdout()),
				usecase.WithOverflowPolicy(policy),
				usecase.WithLogger(rt.log),
			)
			for i := 0; i < times; i++ {
				ex.CounterAddOne()
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ex.Counter())
			return err
		},
	}

	c.Flags().IntVarP(&times, "times", "n", 1, "Number of increments")
	c.Flags().StringVar(&overflow, "overflow", "", "Overflow policy: saturate|wrap (defaults to config)")
	return c
}
