package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/yearzero/internal/game/yze"
)

// ModifyOptions holds flags for the modify command.
type ModifyOptions struct {
	*RootOptions
	Game     string
	Dice     string
	Modifier int
}

// NewModifyCommand creates the modify command, which applies a difficulty
// modifier to a dice-quantity mapping without rolling anything.
func NewModifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ModifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Apply a difficulty modifier to a dice pool",
		Long: `Rewrite a dice-quantity mapping with a signed difficulty modifier and
print the result. For Twilight 2000 this walks the A > B > C > D die ladder;
for the other games it adds to the skill-equivalent dice, overflowing a malus
into negative dice where the game has them.

Example:
  yzroll modify --game myz --modifier -3 --dice skill=2
  yzroll modify --game t2k --modifier +2 --dice t2kD8=1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModify(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Game, "game", "", "game identifier (defaults to engine.default_game)")
	cmd.Flags().StringVar(&opts.Dice, "dice", "", "dice pool as type=count list")
	cmd.Flags().IntVar(&opts.Modifier, "modifier", 0, "signed difficulty modifier")

	return cmd
}

// runModify parses the mapping, applies the modifier, and prints the result.
func runModify(cmd *cobra.Command, opts *ModifyOptions) error {
	qty, err := parseQuantities(opts.Dice)
	if err != nil {
		return err
	}
	game := yze.Game(opts.Game)
	if game == "" {
		game = yze.Game(opts.Config.Engine.DefaultGame)
	}
	out, err := yze.Modify(game, opts.Modifier, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatQuantities(out))
	return nil
}
