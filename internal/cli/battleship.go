package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cerr "github.com/saeidalz13/battleship-exercises/internal/error"
	"github.com/saeidalz13/battleship-exercises/internal/scenario"
	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
	"github.com/saeidalz13/battleship-exercises/models/report"
)

func (c *CLI) newBattleshipCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "battleship",
		Short: "Place the scenario fleet and fire the scenario shots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBattleship(cmd.Context(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON messages instead of text")

	return cmd
}

func (c *CLI) runBattleship(ctx context.Context, asJSON bool) error {
	logger := loggerFromContext(ctx)

	if !c.scenario.HasBoard() {
		logger.Warn("scenario has no ships; skipping", "scenario", c.scenario.Name)
		return nil
	}

	game := c.gameManager.CreateGame()
	defer c.gameManager.TerminateGame(game.Uuid())
	logger.Debug("created game", "uuid", game.Uuid(), "ships", len(c.scenario.Ships), "shots", len(c.scenario.Shots))

	enc := json.NewEncoder(c.out)
	var encErr error

	if !asJSON {
		c.styles.printTitle(c.out, "Battleship in %q", c.scenario.Name)
	}

	checkErr := scenario.RunBattleship(c.scenario, game, func(result mb.ShotResult) {
		logger.Debug("shot resolved", "x", result.Point.X, "y", result.Point.Y, "outcome", result.Outcome)
		if !asJSON {
			fmt.Fprintf(c.out, "  Result of (%d,%d): %s\n", result.Point.X, result.Point.Y, c.styles.outcome(result))
			return
		}

		msg := report.NewMessage[report.RespShot](report.CodeShotResult)
		msg.AddPayload(report.NewRespShot(result, game.Board().SunkenShips()))
		if err := enc.Encode(msg); err != nil && encErr == nil {
			encErr = err
		}
	})
	if encErr != nil {
		return newExitError(ExitCodeFailure, encErr)
	}

	if asJSON {
		if err := c.writeBattleshipJSON(enc, game, checkErr); err != nil {
			return newExitError(ExitCodeFailure, err)
		}
	} else {
		c.printBattleship(game, checkErr)
	}

	if checkErr != nil {
		return newExitError(ExitCodeBattleship, checkErr)
	}
	return nil
}

func (c *CLI) printBattleship(game *mb.Game, checkErr error) {
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, c.styles.board(game.Board(), true, nil))
	fmt.Fprintln(c.out)

	board := game.Board()
	c.styles.printInfo(c.out, "%d of %d ships sunk", board.SunkenShips(), len(board.Ships()))

	if checkErr != nil {
		c.styles.printError(c.out, "%s", checkErr)
		return
	}
	c.styles.printSuccess(c.out, "shot outcomes match the expected ones")
}

func (c *CLI) writeBattleshipJSON(enc *json.Encoder, game *mb.Game, checkErr error) error {
	if errors.Is(checkErr, cerr.ErrOutOfGridBound) || errors.Is(checkErr, cerr.ErrPlacementRejected) {
		msg := report.NewMessage[report.NoPayload](report.CodeInvalidScenario)
		msg.AddError(checkErr.Error(), "invalid scenario")
		return enc.Encode(msg)
	}

	msg := report.NewMessage[report.RespBoard](report.CodeBoardReport)
	msg.AddPayload(report.NewRespBoard(game))
	if err := enc.Encode(msg); err != nil {
		return err
	}

	return enc.Encode(selfCheckMessage(checkErr))
}
