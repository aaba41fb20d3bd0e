package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/yearzero/internal/game/dice"
	"github.com/cory-johannsen/yearzero/internal/game/preset"
	"github.com/cory-johannsen/yearzero/internal/game/yze"
)

// RollOptions holds flags for the roll command.
type RollOptions struct {
	*RootOptions
	Game    string
	Dice    string
	Preset  string
	MaxPush int
	Push    int
	Seed    int64
}

// NewRollCommand creates the roll command.
func NewRollCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RollOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll a dice pool",
		Long: `Roll a Year Zero dice pool and print the result, optionally pushing it.

Example:
  yzroll roll --game fbl --dice base=3,skill=2,gear=1
  yzroll roll --game t2k --dice t2kD10=1,t2kD6=1,ammo=2 --push 1
  yzroll roll --preset hunter --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Game, "game", "", "game identifier (defaults to engine.default_game)")
	cmd.Flags().StringVar(&opts.Dice, "dice", "", "dice pool as type=count list, e.g. base=3,skill=2")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "named preset from engine.preset_file")
	cmd.Flags().IntVar(&opts.MaxPush, "max-push", -1, "push ceiling (defaults to engine.max_push)")
	cmd.Flags().IntVar(&opts.Push, "push", 0, "number of pushes to apply after the roll")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "deterministic seed; 0 uses secure randomness")

	return cmd
}

// runRoll builds the pool from flags or a preset, rolls, pushes, and prints.
func runRoll(cmd *cobra.Command, opts *RollOptions) error {
	game, qty, maxPush, err := resolvePool(opts)
	if err != nil {
		return err
	}

	var src dice.Source = dice.NewCryptoSource()
	if opts.Seed != 0 {
		src = dice.NewSeededSource(opts.Seed)
	}
	src = dice.NewLoggedSource(src, opts.Logger)

	pool, err := yze.NewPool(game, qty, yze.WithMaxPush(maxPush), yze.WithSource(src))
	if err != nil {
		return err
	}
	opts.Logger.Info("pool rolled",
		zap.String("pool_id", pool.ID.String()),
		zap.String("game", string(pool.Game)),
		zap.Int("size", pool.Size()),
		zap.Int("successes", pool.Successes()),
	)

	for i := 0; i < opts.Push; i++ {
		if !pool.Pushable() {
			break
		}
		pool.Push()
		opts.Logger.Info("pool pushed",
			zap.String("pool_id", pool.ID.String()),
			zap.Int("push_count", pool.PushCount),
			zap.Int("successes", pool.Successes()),
		)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderPool(pool))
	return nil
}

// resolvePool merges preset, flags, and config defaults into the pool
// construction inputs. Flags beat preset values beat config defaults.
func resolvePool(opts *RollOptions) (yze.Game, yze.Quantities, int, error) {
	game := yze.Game(opts.Game)
	var qty yze.Quantities
	maxPush := opts.MaxPush

	if opts.Preset != "" {
		path := opts.Config.Engine.PresetFile
		if path == "" {
			return "", nil, 0, fmt.Errorf("preset %q requested but engine.preset_file is not configured", opts.Preset)
		}
		presets, err := preset.LoadFile(path)
		if err != nil {
			return "", nil, 0, err
		}
		p, ok := presets[opts.Preset]
		if !ok {
			return "", nil, 0, fmt.Errorf("preset %q not found in %s", opts.Preset, path)
		}
		if game == "" {
			game = p.Game
		}
		qty = p.Dice.Clone()
		if maxPush < 0 && p.MaxPush > 0 {
			maxPush = p.MaxPush
		}
	}

	if opts.Dice != "" {
		parsed, err := parseQuantities(opts.Dice)
		if err != nil {
			return "", nil, 0, err
		}
		qty = parsed
	}
	if qty == nil {
		return "", nil, 0, fmt.Errorf("no dice given: pass --dice or --preset")
	}
	if game == "" {
		game = yze.Game(opts.Config.Engine.DefaultGame)
	}
	if maxPush < 0 {
		maxPush = opts.Config.Engine.MaxPush
	}
	return game, qty, maxPush, nil
}

// renderPool formats the pool read model for the terminal: one line per die
// with its full push history, then the derived metrics.
func renderPool(p *yze.Pool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pool %s (%s)\n", p.ID, p.Game)
	for _, d := range p.Dice {
		fmt.Fprintf(&b, "  %-12s %s\n", d.Type.ID, renderResults(d))
	}
	fmt.Fprintf(&b, "size=%d successes=%d banes=%d", p.Size(), p.Successes(), p.Banes())
	if p.Game == yze.GameAlien {
		fmt.Fprintf(&b, " stress=%d panic=%d", p.Stress(), p.Panic())
	}
	if p.Game == yze.GameTwilight2000 && p.Mishap() {
		b.WriteString(" MISHAP")
	}
	fmt.Fprintf(&b, " pushed=%d pushable=%t\n", p.PushCount, p.Pushable())
	return b.String()
}

// renderResults formats one die's history: discarded results in brackets,
// labels after a colon.
func renderResults(d *yze.Die) string {
	parts := make([]string, 0, len(d.Results))
	for _, r := range d.Results {
		s := fmt.Sprintf("%d", r.Value)
		if r.Label != "" {
			s += ":" + r.Label
		}
		if r.Discarded {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
