package battleship

import cerr "github.com/saeidalz13/battleship-exercises/internal/error"

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeRepeat
	OutcomeHit
	OutcomeSunk
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeRepeat:
		return "repeat"
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// Only hit and sunk carry the name of a ship
func (o Outcome) NamesShip() bool {
	return o == OutcomeHit || o == OutcomeSunk
}

func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "miss":
		return OutcomeMiss, nil
	case "repeat":
		return OutcomeRepeat, nil
	case "hit":
		return OutcomeHit, nil
	case "sunk":
		return OutcomeSunk, nil
	default:
		return 0, cerr.ErrInvalidOutcome(s)
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
