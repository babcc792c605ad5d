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

// Package schedule generates pairing schedules for competitions. A schedule
// is a list of rounds, and every round is a list of matches between two
// distinct competitors. Generators are pure: they never modify their input
// and keep no state between calls.
package schedule

import "fmt"

// Formats supported by New.
const (
	FormatRoundRobin = "round-robin"
	FormatGauntlet   = "gauntlet"
)

// Match is a single pairing of two distinct competitors.
type Match[ID comparable] struct {
	First, Second ID
}

// Has reports whether the given competitor plays in the match.
func (match Match[ID]) Has(id ID) bool {
	return match.First == id || match.Second == id
}

// Round is a numbered set of matches. Round numbers start at 1.
type Round[ID comparable] struct {
	Number  int
	Matches []Match[ID]
}

// Generator turns an ordered list of competitor identifiers into a schedule.
type Generator[ID comparable] func(ids []ID) ([]Round[ID], error)

// New returns the Generator for the given format. An empty format selects
// the round-robin generator.
func New[ID comparable](format string) (Generator[ID], error) {
	switch format {
	case FormatRoundRobin, "":
		return RoundRobin[ID], nil
	case FormatGauntlet:
		return Gauntlet[ID], nil
	default:
		return nil, fmt.Errorf("new schedule: invalid format %q", format)
	}
}

// Formats lists every format accepted by New.
func Formats() []string {
	return []string{FormatRoundRobin, FormatGauntlet}
}
