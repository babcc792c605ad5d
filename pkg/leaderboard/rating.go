// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package leaderboard

import "math"

// Rating returns the performance elo of a competitor against the field along
// with the lower and upper bounds of its 95% confidence interval. A
// competitor who has not played, or who won or lost every game, has a
// rating of 0 since the estimate is unbounded.
func Rating(wins, draws, losses int) (low float64, elo float64, high float64) {
	n := float64(wins + draws + losses) // total number of games

	if n == 0 {
		return 0, 0, 0
	}

	w := float64(wins) / n   // measured win probability
	d := float64(draws) / n  // measured draw probability
	l := float64(losses) / n // measured loss probability

	// empirical mean of the score
	mu := w + d/2

	// standard error of the mean score
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(n)

	high = scoreToElo(mu + phiInv(0.975)*sigma)
	low = scoreToElo(mu + phiInv(0.025)*sigma)

	return low, scoreToElo(mu), high
}

// scoreToElo converts an expected score into an elo difference. Scores of
// 0 or 1 have no finite elo and map to 0.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

// phiInv is the quantile function of the standard normal distribution.
func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
