package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command: pick a body from the catalog
// interactively and print its details. The catalog response already carries
// every attribute, so no second request is made.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick a body interactively and show its details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bodies, err := c.fetchBodies(ctx)
			if err != nil {
				return fmt.Errorf("error fetching data: %w", err)
			}
			if len(bodies) == 0 {
				printInfo(c.err, "No bodies returned")
				return nil
			}

			p := tea.NewProgram(NewBodyListModel(bodies), tea.WithContext(ctx), tea.WithOutput(c.err))
			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			m, ok := finalModel.(BodyListModel)
			if !ok || m.Selected == nil {
				printInfo(c.err, "No selection made")
				return nil
			}
			return c.printDetails(*m.Selected)
		},
	}
}
