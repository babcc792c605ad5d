package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// arrangement returns the current seat arrangement of the circle.
func (c *circle[ID]) arrangement() []ID {
	out := make([]ID, c.len())
	for i := range out {
		out[i] = c.at(i)
	}
	return out
}

func TestCircle_RotateMovesLastSeatToSecond(t *testing.T) {
	c := newCircle([]string{"A", "B", "C", "D", "E", "F"})
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, c.arrangement())

	c.rotate()
	assert.Equal(t, []string{"A", "F", "B", "C", "D", "E"}, c.arrangement())

	c.rotate()
	assert.Equal(t, []string{"A", "E", "F", "B", "C", "D"}, c.arrangement())
}

func TestCircle_FullTurnRestoresArrangement(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8}
	c := newCircle(ids)

	for i := 0; i < len(ids)-1; i++ {
		c.rotate()
	}
	assert.Equal(t, ids, c.arrangement())
}

func TestCircle_OwnsItsBuffer(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	c := newCircle(ids)

	ids[1] = "Z"
	assert.Equal(t, "B", c.at(1))
}

func TestCircle_TwoSeats(t *testing.T) {
	c := newCircle([]string{"A", "B"})
	c.rotate()
	assert.Equal(t, []string{"A", "B"}, c.arrangement())
}
