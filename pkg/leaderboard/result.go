package leaderboard

// Result is the outcome of a played match, seen from its first competitor.
type Result int

const (
	FirstWins  Result = +1
	Draw       Result = 0
	SecondWins Result = -1
)

// ResultOf returns the Result of a match given the score of each side.
func ResultOf(first, second int) Result {
	switch {
	case first > second:
		return FirstWins
	case first < second:
		return SecondWins
	default:
		return Draw
	}
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case FirstWins:
		return "1-0"
	case Draw:
		return "½-½"
	case SecondWins:
		return "0-1"
	default:
		return "?-?"
	}
}

// PointsSystem is the number of leaderboard points awarded for each
// outcome of a match.
type PointsSystem struct {
	Win  int `yaml:"win"`
	Draw int `yaml:"draw"`
	Loss int `yaml:"loss"`
}

// DefaultPoints is the usual 3-1-0 association football scoring.
var DefaultPoints = PointsSystem{Win: 3, Draw: 1, Loss: 0}
