package report

const (
	CodeCycleReport uint8 = iota
	CodeShotResult
	CodeBoardReport

	// Sent once per exercise after all results
	CodeSelfCheckPassed
	CodeSelfCheckFailed

	// Scenario could not be loaded or a shot
	// was outside the grid
	CodeInvalidScenario
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
