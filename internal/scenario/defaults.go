package scenario

import (
	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
	"github.com/saeidalz13/battleship-exercises/models/dependency"
)

// Default is used when no scenario file is given: the
// services graph and a single three cell ship sunk in
// three shots after a miss and a repeat.
func Default() Scenario {
	return Scenario{
		Name: "default",
		Graph: dependency.Dictionary{
			"A": {"C"},
			"B": {"C", "D"},
			"D": {"E"},
			"E": {"F", "Q"},
			"F": {"D"},
			"G": {"L"},
			"C": {"M"},
			"M": {"A"},
		},
		ExpectCyclic: []string{"A", "C", "D", "E", "F", "M"},
		Ships: []mb.ShipSpec{
			{Name: "Nina", Start: mb.NewPoint(0, 0), End: mb.NewPoint(2, 0)},
		},
		Shots: []Shot{
			{X: 1, Y: 1, Expect: "miss"},
			{X: 1, Y: 1, Expect: "repeat"},
			{X: 2, Y: 0, Expect: "hit", Ship: "Nina"},
			{X: 1, Y: 0, Expect: "hit", Ship: "Nina"},
			{X: 0, Y: 0, Expect: "sunk", Ship: "Nina"},
		},
	}
}

// Fleet is the set of ships the interactive game starts
// with when the scenario has none.
func Fleet() []mb.ShipSpec {
	return []mb.ShipSpec{
		{Name: "Nina", Start: mb.NewPoint(0, 0), End: mb.NewPoint(2, 0)},
		{Name: "Pinta", Start: mb.NewPoint(5, 1), End: mb.NewPoint(5, 4)},
		{Name: "Santa Maria", Start: mb.NewPoint(2, 7), End: mb.NewPoint(6, 7)},
		{Name: "Dinghy", Start: mb.NewPoint(9, 9), End: mb.NewPoint(9, 9)},
	}
}
