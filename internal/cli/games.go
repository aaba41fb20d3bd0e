package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/yearzero/internal/game/yze"
)

// NewGamesCommand creates the games command, which lists supported games
// and the die types legal for each.
func NewGamesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List supported games and their die types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, game := range yze.Games() {
				types, err := yze.GameDice(game)
				if err != nil {
					return err
				}
				names := make([]string, len(types))
				for i, t := range types {
					names[i] = string(t)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s", game)
				for _, n := range names {
					fmt.Fprintf(cmd.OutOrStdout(), " %s", n)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
