package leaderboard

import (
	"fmt"
	"io"
	"math"
)

// Report writes the standings as a boxed table.
func Report(w io.Writer, standings []Standing) {
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║     Name              Pts   Pld  Win Draw Loss    Diff    Elo  Error ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════════════╣")
	for i := range standings {
		standing := &standings[i]
		low, elo, high := standing.Rating()

		fmt.Fprintf(w,
			"║ %2d. %-15.15s  %4d  %4d %4d %4d %4d  %+6d  %+5.0f  %5.0f ║\n",
			i+1, standing.Name,
			standing.Points, standing.Played,
			standing.Wins, standing.Draws, standing.Losses,
			standing.Difference(),
			elo, math.Abs(math.Max(high-elo, elo-low)),
		)
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════════════╝")
}
