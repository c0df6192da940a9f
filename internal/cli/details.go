package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

// detailsCommand creates the details command for a single body.
func (c *CLI) detailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details <name>",
		Short: "Show everything the API knows about one body",
		Long: `Show the header line, mass and physical attributes of one body.

The name is the API identifier, which is usually the French name in lower case
(e.g. "terre", "lune", "mars"). Attributes the API does not provide are shown
as "not available".`,
		Example: `  solarsys details mars
  solarsys details lune -o json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeBodyIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			body, err := c.fetchBody(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("error fetching details for %s: %w", name, err)
			}
			return c.printDetails(*body)
		},
	}
}

// fetchBody performs the single detail request behind a spinner.
func (c *CLI) fetchBody(ctx context.Context, id string) (*solarsys.CelestialBody, error) {
	prog := newProgress(loggerFromContext(ctx))
	fetch := func(ctx context.Context) (*solarsys.CelestialBody, error) {
		return c.newClient().GetBody(ctx, id)
	}
	body, err := withSpinner(ctx, c.err, fmt.Sprintf("Fetching %s...", id), fetch)
	if err != nil {
		return nil, err
	}
	prog.done("Fetched " + body.ID)
	return body, nil
}

// printDetails writes b in the configured output format.
func (c *CLI) printDetails(b solarsys.CelestialBody) error {
	if c.config.Output != OutputText {
		return c.encode(b)
	}
	return c.newPrinter().Details(b)
}
