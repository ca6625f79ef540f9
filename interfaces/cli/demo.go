package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/plotmcp/domain/plot"
)

// newDemoCmd creates the demo command.
func (a *App) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open a fixed demo bar chart in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.setup()
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			path, err := a.displayer(rt.config).Show(plot.DemoFigure())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "Opened %s\n", path)
			return nil
		},
	}
}
