package cli

import (
	"github.com/spf13/cobra"

	"github.com/joaobcpatricio/gotemplate/internal/ui/tui"
	"github.com/joaobcpatricio/gotemplate/internal/usecase"
)

func demoCmd() *cobra.Command {
	var petName string
	var petAge int

	c := &cobra.Command{
		Use:   "demo",
		Short: "Show the weekday, shared position and pet examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := tui.DefaultTheme()
			return usecase.RunDemo(cmd.OutOrStdout(), usecase.DemoOptions{
				Title:   theme.Heading,
				PetName: petName,
				PetAge:  petAge,
			})
		},
	}

	c.Flags().StringVar(&petName, "pet-name", "Buddy", "Name of the explicitly constructed pet")
	c.Flags().IntVar(&petAge, "pet-age", 3, "Age of the explicitly constructed pet")
	return c
}
