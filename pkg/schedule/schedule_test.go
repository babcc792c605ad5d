package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}

	for _, format := range []string{"", FormatRoundRobin} {
		generate, err := New[string](format)
		require.NoError(t, err)

		rounds, err := generate(ids)
		require.NoError(t, err)
		assert.Len(t, rounds, 3)
	}

	generate, err := New[string](FormatGauntlet)
	require.NoError(t, err)
	rounds, err := generate(ids)
	require.NoError(t, err)
	assert.Len(t, rounds, 3)
	assert.Len(t, rounds[0].Matches, 1)

	_, err = New[string]("swiss")
	assert.EqualError(t, err, `new schedule: invalid format "swiss"`)
}

func TestGauntlet(t *testing.T) {
	rounds, err := Gauntlet([]string{"A", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, []Round[string]{
		{Number: 1, Matches: []Match[string]{{"A", "B"}}},
		{Number: 2, Matches: []Match[string]{{"A", "C"}}},
	}, rounds)
}

func TestGauntlet_InvalidInput(t *testing.T) {
	_, err := Gauntlet([]string{"A"})
	assert.ErrorIs(t, err, ErrInvalidInputSize)

	_, err = Gauntlet([]string{"A", "B", "B"})
	assert.ErrorIs(t, err, ErrDuplicateIdentifier)
}

func TestMatch_Has(t *testing.T) {
	match := Match[string]{First: "A", Second: "B"}
	assert.True(t, match.Has("A"))
	assert.True(t, match.Has("B"))
	assert.False(t, match.Has("C"))
}
