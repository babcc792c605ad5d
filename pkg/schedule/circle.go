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

// circle is the rotating seat arrangement of the circle method. Seat 0 is
// the fixed pivot; the other seats turn around it. The buffer is never
// reordered, a rotation only advances the offset.
//
// One rotation is equivalent to taking the competitor in the last seat and
// reinserting it at seat 1, shifting seats 1..n-2 up by one.
type circle[ID comparable] struct {
	seats  []ID
	offset int // number of rotations done
}

// newCircle copies ids into a buffer owned by the circle.
func newCircle[ID comparable](ids []ID) *circle[ID] {
	seats := make([]ID, len(ids))
	copy(seats, ids)
	return &circle[ID]{seats: seats}
}

func (c *circle[ID]) len() int {
	return len(c.seats)
}

// at returns the competitor currently sitting at seat i.
func (c *circle[ID]) at(i int) ID {
	if i == 0 {
		return c.seats[0]
	}

	// After r rotations seat i holds the competitor which started at
	// seat 1 + (i-1-r) mod (n-1).
	ring := len(c.seats) - 1
	idx := ((i-1-c.offset)%ring + ring) % ring
	return c.seats[1+idx]
}

// rotate turns every seat but the pivot by one position.
func (c *circle[ID]) rotate() {
	c.offset = (c.offset + 1) % (len(c.seats) - 1)
}
