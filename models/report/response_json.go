package report

import (
	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
)

type RespCycles struct {
	Graph       map[string][]string `json:"graph"`
	CyclicNodes []string            `json:"cyclic_nodes"`
}

type RespShot struct {
	X           uint8      `json:"x"`
	Y           uint8      `json:"y"`
	Outcome     mb.Outcome `json:"outcome"`
	ShipName    string     `json:"ship_name,omitempty"`
	SunkenShips int        `json:"sunken_ships"`
}

func NewRespShot(result mb.ShotResult, sunkenShips int) RespShot {
	return RespShot{
		X:           result.Point.X,
		Y:           result.Point.Y,
		Outcome:     result.Outcome,
		ShipName:    result.ShipName,
		SunkenShips: sunkenShips,
	}
}

type RespShip struct {
	Name     string     `json:"name"`
	Start    mb.Point   `json:"start"`
	End      mb.Point   `json:"end"`
	HitCells []mb.Point `json:"hit_cells,omitempty"`
	IsSunk   bool       `json:"is_sunk"`
}

type RespBoard struct {
	GameUuid    string     `json:"game_uuid"`
	Ships       []RespShip `json:"ships"`
	SunkenShips int        `json:"sunken_ships"`
	IsFinished  bool       `json:"is_finished"`
}

func NewRespBoard(game *mb.Game) RespBoard {
	board := game.Board()
	ships := board.Ships()

	resp := RespBoard{
		GameUuid:    game.Uuid(),
		Ships:       make([]RespShip, 0, len(ships)),
		SunkenShips: board.SunkenShips(),
		IsFinished:  game.IsFinished(),
	}
	for _, ship := range ships {
		resp.Ships = append(resp.Ships, RespShip{
			Name:     ship.Name(),
			Start:    ship.Start(),
			End:      ship.End(),
			HitCells: ship.HitCells(),
			IsSunk:   ship.IsSunk(),
		})
	}
	return resp
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
