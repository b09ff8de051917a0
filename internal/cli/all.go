package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAllCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run the cycles exercise, then the battleship exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := c.runCycles(ctx, cyclesOptions{asJSON: asJSON}); err != nil {
				return err
			}
			if !asJSON {
				fmt.Fprintln(c.out)
			}
			return c.runBattleship(ctx, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON messages instead of text")

	return cmd
}
