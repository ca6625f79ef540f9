package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newTypesCmd creates the types command.
func (a *App) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported plot types",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.setup()
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TYPE\tNAME\tDESCRIPTION")
			for _, t := range rt.advisor.PlotTypes() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", t, t.Label(), rt.advisor.Description(cmd.Context(), t.String()))
			}
			return w.Flush()
		},
	}
}

// newDescribeCmd creates the describe command.
func (a *App) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <plot-type>",
		Short: "Print the description of a plot type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.setup()
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			_, _ = fmt.Fprintln(a.stdout, rt.advisor.Description(cmd.Context(), args[0]))
			return nil
		},
	}
}

// newExampleCmd creates the example command.
func (a *App) newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <plot-type>",
		Short: "Print the first example record of a plot type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.setup()
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			ex, err := rt.advisor.Example(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(ex)
		},
	}
}
