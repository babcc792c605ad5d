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

package schedule

// RoundRobin generates a single round-robin schedule using the circle
// method. For n competitors it returns n-1 rounds of n/2 matches each, and
// every pair of competitors meets in exactly one of those matches.
//
// In every round the competitor at seat i plays the one at seat n-1-i,
// after which all seats except the first are rotated by one. The order of
// ids decides the pairings, so the same input always gives the same
// schedule.
//
// The number of competitors must be even and at least two, and no
// identifier may be repeated.
func RoundRobin[ID comparable](ids []ID) ([]Round[ID], error) {
	if err := validate(FormatRoundRobin, ids); err != nil {
		return nil, err
	}

	if len(ids)%2 != 0 {
		return nil, &InputError{
			Format: FormatRoundRobin,
			Size:   len(ids),
			Err:    ErrOddCompetitorCount,
		}
	}

	seats := newCircle(ids)
	n := seats.len()

	rounds := make([]Round[ID], 0, n-1)
	for number := 1; number < n; number++ {
		round := Round[ID]{
			Number:  number,
			Matches: make([]Match[ID], 0, n/2),
		}

		for i := 0; i < n/2; i++ {
			round.Matches = append(round.Matches, Match[ID]{
				First:  seats.at(i),
				Second: seats.at(n - 1 - i),
			})
		}

		rounds = append(rounds, round)
		seats.rotate()
	}

	return rounds, nil
}
