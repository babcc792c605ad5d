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

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumCompare compares two strings in natural order, so that "Team 2"
// sorts before "Team 10". Runs of digits are compared by numeric value and
// everything else byte-wise. The result is -1, 0 or +1 like strings.Compare.
func AlphanumCompare(a, b string) int {
	chunks_a := chunkify(a)
	chunks_b := chunkify(b)

	for i := 0; i < len(chunks_a) && i < len(chunks_b); i++ {
		aInt, aErr := strconv.Atoi(chunks_a[i])
		bInt, bErr := strconv.Atoi(chunks_b[i])

		// If both chunks are numeric, compare them as integers
		if aErr == nil && bErr == nil {
			switch {
			case aInt < bInt:
				return -1
			case aInt > bInt:
				return +1
			}

			continue
		}

		if cmp := strings.Compare(chunks_a[i], chunks_b[i]); cmp != 0 {
			return cmp
		}
	}

	// One is a prefix of the other, so the shorter comes first. Strings
	// like "a01" and "a1" fall back to a plain comparison to stay total.
	switch {
	case len(chunks_a) < len(chunks_b):
		return -1
	case len(chunks_a) > len(chunks_b):
		return +1
	default:
		return strings.Compare(a, b)
	}
}

// AlphanumLess reports whether a sorts before b in natural order.
func AlphanumLess(a, b string) bool {
	return AlphanumCompare(a, b) < 0
}
