package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

// runList prints one summary line per body. It is the root command's action.
func (c *CLI) runList(cmd *cobra.Command, args []string) error {
	bodies, err := c.fetchBodies(cmd.Context())
	if err != nil {
		return fmt.Errorf("error fetching data: %w", err)
	}

	if c.config.Output != OutputText {
		return c.encode(bodies)
	}
	return c.newPrinter().Summaries(bodies)
}

// fetchBodies performs the single catalog request behind a spinner.
func (c *CLI) fetchBodies(ctx context.Context) ([]solarsys.CelestialBody, error) {
	prog := newProgress(loggerFromContext(ctx))
	bodies, err := withSpinner(ctx, c.err, "Fetching bodies...", c.newClient().ListBodies)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Fetched %d bodies", len(bodies)))
	return bodies, nil
}
