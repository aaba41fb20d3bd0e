// Package cli implements the yzroll command tree: rolling and pushing Year
// Zero dice pools, rewriting pools with difficulty modifiers, and listing
// the supported games.
package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/yearzero/internal/config"
	"github.com/cory-johannsen/yearzero/internal/game/yze"
	"github.com/cory-johannsen/yearzero/internal/observability"
)

// RootOptions holds global flags and state shared by all commands.
type RootOptions struct {
	// ConfigPath is the optional --config file path.
	ConfigPath string

	// Config is populated in PersistentPreRunE.
	Config config.Config
	// Logger is populated in PersistentPreRunE.
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the yzroll CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "yzroll",
		Short: "Year Zero Engine dice roller",
		Long: `yzroll rolls dice pools under the Year Zero Engine family of rules:
Mutant Year Zero, Forbidden Lands, Alien RPG, Tales from the Loop, Vaesen,
Coriolis, and Twilight 2000.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger(cfg.Logging)
			if err != nil {
				return err
			}
			opts.Config = cfg
			opts.Logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to configuration file")

	cmd.AddCommand(NewRollCommand(opts))
	cmd.AddCommand(NewModifyCommand(opts))
	cmd.AddCommand(NewGamesCommand(opts))

	return cmd
}

// parseQuantities parses a comma-separated "type=count" list into a
// dice-quantity mapping, e.g. "base=3,skill=2,gear=1".
//
// Postcondition: returns a non-empty Quantities or a descriptive error;
// legality per game is left to the engine.
func parseQuantities(spec string) (yze.Quantities, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("dice spec must be non-empty, e.g. %q", "base=3,skill=2")
	}
	qty := make(yze.Quantities)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, countStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid dice spec entry %q: expected type=count", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, fmt.Errorf("invalid count in dice spec entry %q: %w", part, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid count in dice spec entry %q: must be >= 0", part)
		}
		qty[yze.TypeID(strings.TrimSpace(id))] += n
	}
	if len(qty) == 0 {
		return nil, fmt.Errorf("dice spec %q holds no entries", spec)
	}
	return qty, nil
}

// formatQuantities renders a quantity mapping as a stable "type=count" list.
func formatQuantities(qty yze.Quantities) string {
	ids := make([]string, 0, len(qty))
	for id, n := range qty {
		if n > 0 {
			ids = append(ids, string(id))
		}
	}
	sort.Strings(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%s=%d", id, qty[yze.TypeID(id)])
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, ",")
}
