package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-exercises/internal/scenario"
	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
)

func (c *CLI) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Fire shots interactively at a hidden fleet",
		Long:  `Opens an interactive board. The fleet comes from the scenario file when one is given, otherwise a built-in fleet is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd.Context(), cmd.InOrStdin())
		},
	}
}

func (c *CLI) playFleet() []mb.ShipSpec {
	if c.scenarioFromFile && c.scenario.HasBoard() {
		return c.scenario.Ships
	}
	return scenario.Fleet()
}

func (c *CLI) runPlay(ctx context.Context, in io.Reader) error {
	logger := loggerFromContext(ctx)

	game := c.gameManager.CreateGame()
	defer c.gameManager.TerminateGame(game.Uuid())

	if err := game.PlaceFleet(c.playFleet()); err != nil {
		return newExitError(ExitCodeFailure, err)
	}
	logger.Debug("created game", "uuid", game.Uuid(), "ships", len(game.Board().Ships()))

	p := tea.NewProgram(
		newPlayModel(game, c.styles),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(c.out),
	)
	final, err := p.Run()
	if err != nil {
		return newExitError(ExitCodeFailure, fmt.Errorf("run board: %w", err))
	}

	if m, ok := final.(playModel); ok {
		logger.Info("game over", "uuid", game.Uuid(), "shots", m.shots, "sunk", game.Board().SunkenShips(), "finished", game.IsFinished())
	}
	return nil
}
