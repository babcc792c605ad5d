// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
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

// Package leaderboard aggregates reported match scores into standings.
package leaderboard

import (
	"cmp"
	"slices"

	"laptudirm.com/x/league/pkg/internal/util"
)

// Competitor is an entrant of a competition.
type Competitor struct {
	ID   int64
	Name string
}

// Match is a scheduled match with its reported scores. A nil score means
// the match has not been played yet.
type Match struct {
	First, Second           int64
	FirstScore, SecondScore *int
}

// Played reports whether both scores of the match have been reported.
func (match Match) Played() bool {
	return match.FirstScore != nil && match.SecondScore != nil
}

// Standing is the record of one competitor in the leaderboard.
type Standing struct {
	Competitor

	Played              int
	Wins, Draws, Losses int

	ScoreFor, ScoreAgainst int

	Points int
}

// Difference returns the score difference of the competitor.
func (standing *Standing) Difference() int {
	return standing.ScoreFor - standing.ScoreAgainst
}

// Rating returns the performance rating of the competitor. See Rating.
func (standing *Standing) Rating() (low, elo, high float64) {
	return Rating(standing.Wins, standing.Draws, standing.Losses)
}

func (standing *Standing) record(result Result, scored, conceded int, points PointsSystem) {
	standing.Played++
	standing.ScoreFor += scored
	standing.ScoreAgainst += conceded

	switch result {
	case FirstWins:
		standing.Wins++
		standing.Points += points.Win
	case Draw:
		standing.Draws++
		standing.Points += points.Draw
	case SecondWins:
		standing.Losses++
		standing.Points += points.Loss
	}
}

// Compute builds the standings of the given competitors from the matches
// played between them. Matches without both scores are ignored, as are
// matches involving unknown competitors.
//
// Standings are ordered by points, wins, score difference and score for,
// all descending. Competitors still tied are ordered by name, in natural
// order, and then by id.
func Compute(points PointsSystem, competitors []Competitor, matches []Match) []Standing {
	standings := make([]Standing, len(competitors))
	index := make(map[int64]*Standing, len(competitors))
	for i, competitor := range competitors {
		standings[i].Competitor = competitor
		index[competitor.ID] = &standings[i]
	}

	for _, match := range matches {
		if !match.Played() {
			continue
		}

		first, found1 := index[match.First]
		second, found2 := index[match.Second]
		if !found1 || !found2 {
			continue
		}

		result := ResultOf(*match.FirstScore, *match.SecondScore)
		first.record(result, *match.FirstScore, *match.SecondScore, points)
		second.record(-result, *match.SecondScore, *match.FirstScore, points)
	}

	slices.SortStableFunc(standings, func(a, b Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Difference(), a.Difference()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.ScoreFor, a.ScoreFor); c != 0 {
			return c
		}
		if c := util.AlphanumCompare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return standings
}
