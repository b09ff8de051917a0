package battleship

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewShipNormalizes(t *testing.T) {
	tests := []struct {
		name          string
		start         Point
		end           Point
		expectedStart Point
		expectedEnd   Point
		expectedLen   int
		expectedXAxis bool
		expectedValid bool
	}{
		{
			name:          "horizontal in order",
			start:         NewPoint(0, 0),
			end:           NewPoint(2, 0),
			expectedStart: NewPoint(0, 0),
			expectedEnd:   NewPoint(2, 0),
			expectedLen:   3,
			expectedXAxis: true,
			expectedValid: true,
		},
		{
			name:          "horizontal reversed",
			start:         NewPoint(7, 4),
			end:           NewPoint(3, 4),
			expectedStart: NewPoint(3, 4),
			expectedEnd:   NewPoint(7, 4),
			expectedLen:   5,
			expectedXAxis: true,
			expectedValid: true,
		},
		{
			name:          "vertical reversed",
			start:         NewPoint(5, 9),
			end:           NewPoint(5, 6),
			expectedStart: NewPoint(5, 6),
			expectedEnd:   NewPoint(5, 9),
			expectedLen:   4,
			expectedXAxis: false,
			expectedValid: true,
		},
		{
			name:          "single cell",
			start:         NewPoint(4, 4),
			end:           NewPoint(4, 4),
			expectedStart: NewPoint(4, 4),
			expectedEnd:   NewPoint(4, 4),
			expectedLen:   1,
			expectedXAxis: true,
			expectedValid: true,
		},
		{
			name:          "diagonal",
			start:         NewPoint(0, 0),
			end:           NewPoint(2, 3),
			expectedStart: NewPoint(0, 0),
			expectedEnd:   NewPoint(2, 3),
			expectedLen:   3,
			expectedXAxis: false,
			expectedValid: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship := NewShip(test.start, test.end, "test")

			if ship.Start() != test.expectedStart || ship.End() != test.expectedEnd {
				t.Fatalf("expected span: %v-%v\t got: %v-%v", test.expectedStart, test.expectedEnd, ship.Start(), ship.End())
			}
			if ship.Len() != test.expectedLen {
				t.Fatalf("expected len: %d\t got: %d", test.expectedLen, ship.Len())
			}
			if ship.OnXAxis() != test.expectedXAxis {
				t.Fatalf("expected on x axis: %t\t got: %t", test.expectedXAxis, ship.OnXAxis())
			}
			if ship.IsValid() != test.expectedValid {
				t.Fatalf("expected valid: %t\t got: %t", test.expectedValid, ship.IsValid())
			}
		})
	}
}

func TestIsHitExactlyOnSpan(t *testing.T) {
	ships := []*Ship{
		NewShip(NewPoint(0, 0), NewPoint(2, 0), "Nina"),
		NewShip(NewPoint(6, 8), NewPoint(6, 3), "Pinta"),
		NewShip(NewPoint(9, 9), NewPoint(9, 9), "Dinghy"),
	}

	for _, ship := range ships {
		t.Run(ship.Name(), func(t *testing.T) {
			spanned := make(map[Point]bool)
			for _, cell := range ship.Cells() {
				spanned[cell] = true
			}
			if len(spanned) != ship.Len() {
				t.Fatalf("expected %d cells\t got: %d", ship.Len(), len(spanned))
			}

			for x := uint8(0); x < MapSize; x++ {
				for y := uint8(0); y < MapSize; y++ {
					p := NewPoint(x, y)
					if ship.IsHit(p) != spanned[p] {
						t.Fatalf("expected is hit at %v: %t\t got: %t", p, spanned[p], ship.IsHit(p))
					}
				}
			}
		})
	}
}

func TestIsHitDoesNotMutate(t *testing.T) {
	ship := NewShip(NewPoint(1, 1), NewPoint(1, 2), "Nina")
	for i := 0; i < 3; i++ {
		if !ship.IsHit(NewPoint(1, 1)) {
			t.Fatal("expected (1,1) to be on the ship")
		}
	}
	if len(ship.HitCells()) != 0 {
		t.Fatalf("expected no hit cells\t got: %v", ship.HitCells())
	}
}

func TestDiagonalShipSpansNothing(t *testing.T) {
	ship := NewShip(NewPoint(0, 0), NewPoint(2, 3), "Skew")
	if ship.Cells() != nil {
		t.Fatalf("expected no cells\t got: %v", ship.Cells())
	}
	if ship.IsHit(NewPoint(0, 0)) {
		t.Fatal("diagonal ship must not report hits")
	}
	if ship.RegisterHit(NewPoint(0, 0)) {
		t.Fatal("diagonal ship must never sink")
	}
}

func TestRegisterHit(t *testing.T) {
	ship := NewShip(NewPoint(3, 5), NewPoint(3, 7), "Santa Maria")

	if ship.RegisterHit(NewPoint(4, 5)) {
		t.Fatal("miss must not sink the ship")
	}
	if len(ship.HitCells()) != 0 {
		t.Fatalf("miss must not mark a cell\t got: %v", ship.HitCells())
	}

	steps := []struct {
		p        Point
		expected bool
	}{
		{NewPoint(3, 7), false},
		{NewPoint(3, 5), false},
		// hitting the same slot twice changes nothing
		{NewPoint(3, 5), false},
		{NewPoint(3, 6), true},
	}
	for _, step := range steps {
		if got := ship.RegisterHit(step.p); got != step.expected {
			t.Fatalf("expected sunk after %v: %t\t got: %t", step.p, step.expected, got)
		}
	}

	expectedHits := []Point{NewPoint(3, 5), NewPoint(3, 6), NewPoint(3, 7)}
	if diff := cmp.Diff(expectedHits, ship.HitCells()); diff != "" {
		t.Fatalf("hit cells mismatch (-expected +got):\n%s", diff)
	}
	if !ship.IsSunk() {
		t.Fatal("expected ship to be sunk")
	}
}
