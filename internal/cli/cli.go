// Package cli implements the exercises command-line driver.
//
// The driver runs the two exercises against a scenario, prints
// every result and checks it against the scenario expectations.
// A failed check exits with the code of its exercise: 2 for the
// dependency cycles, 3 for battleship.
//
// # Commands
//
//   - cycles: print the nodes of the graph that lie on a cycle
//   - battleship: place the fleet and fire the scenario shots
//   - play: fire shots interactively at a hidden fleet
//   - all: cycles, then battleship
//
// Scenarios come from --file, SCENARIO_FILE or the built-in default.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-exercises/internal/config"
	"github.com/saeidalz13/battleship-exercises/internal/scenario"
	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
)

const appName = "exercises"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out         io.Writer
	cfg         config.Config
	styles      styles
	gameManager mb.GameManager

	scenario         scenario.Scenario
	scenarioFromFile bool
}

// New creates a CLI printing results to out and logs to logW.
func New(out, logW io.Writer, cfg config.Config) *CLI {
	renderer := lipgloss.NewRenderer(out)
	if cfg.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &CLI{
		Logger:      newLogger(logW, parseLevel(cfg.LogLevel)),
		out:         out,
		cfg:         cfg,
		styles:      newStyles(renderer),
		gameManager: mb.NewBattleshipGameManager(),
		scenario:    scenario.Default(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose      bool
		scenarioFile string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Dependency cycle and battleship exercises",
		Long:          `Runs the dependency cycle detector and the battleship board against a scenario and checks the results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			if scenarioFile == "" {
				scenarioFile = c.cfg.ScenarioFile
			}
			return c.loadScenario(scenarioFile)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&scenarioFile, "file", "f", "", "scenario TOML file (default: built-in scenario)")

	root.AddCommand(c.newCyclesCmd())
	root.AddCommand(c.newBattleshipCmd())
	root.AddCommand(c.newPlayCmd())
	root.AddCommand(c.newAllCmd())

	return root
}

func (c *CLI) loadScenario(path string) error {
	if path == "" {
		c.Logger.Debug("using built-in scenario")
		return nil
	}

	s, err := scenario.Load(path)
	if err != nil {
		return newExitError(ExitCodeFailure, err)
	}

	c.Logger.Debug("loaded scenario", "name", s.Name, "path", path, "keys", len(s.Graph), "ships", len(s.Ships), "shots", len(s.Shots))
	c.scenario = s
	c.scenarioFromFile = true
	return nil
}
