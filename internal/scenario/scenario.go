// Package scenario loads exercise inputs and their expected
// results from TOML files.
//
// A scenario file looks like:
//
//	name = "services"
//	expect_cyclic = ["A", "C", "M"]
//
//	[graph]
//	A = ["C"]
//	C = ["M"]
//	M = ["A"]
//
//	[[ships]]
//	name = "Nina"
//	start = { x = 0, y = 0 }
//	end = { x = 2, y = 0 }
//
//	[[shots]]
//	x = 1
//	y = 1
//	expect = "miss"
package scenario

import (
	"fmt"

	"github.com/BurntSushi/toml"

	cerr "github.com/saeidalz13/battleship-exercises/internal/error"
	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
	"github.com/saeidalz13/battleship-exercises/models/dependency"
)

type Shot struct {
	X uint8 `toml:"x"`
	Y uint8 `toml:"y"`

	// Optional. Empty means the outcome is not checked
	Expect string `toml:"expect"`
	Ship   string `toml:"ship"`
}

func (s Shot) Point() mb.Point {
	return mb.NewPoint(s.X, s.Y)
}

type Scenario struct {
	Name  string                `toml:"name"`
	Graph dependency.Dictionary `toml:"graph"`

	// nil means the cycle result is printed but not checked
	ExpectCyclic []string `toml:"expect_cyclic"`

	Ships []mb.ShipSpec `toml:"ships"`
	Shots []Shot        `toml:"shots"`
}

func (s Scenario) HasGraph() bool {
	return len(s.Graph) > 0
}

func (s Scenario) HasBoard() bool {
	return len(s.Ships) > 0 || len(s.Shots) > 0
}

// Load decodes and validates the scenario file at path.
func Load(path string) (Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	if err := s.validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Parse decodes a scenario from TOML text.
func Parse(data string) (Scenario, error) {
	var s Scenario
	if _, err := toml.Decode(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (s Scenario) validate() error {
	if !s.HasGraph() && !s.HasBoard() {
		return cerr.ErrEmptyScenario(s.Name)
	}

	for _, shot := range s.Shots {
		if shot.Expect == "" {
			continue
		}
		if _, err := mb.ParseOutcome(shot.Expect); err != nil {
			return err
		}
	}
	return nil
}
