package analytics

import (
	"errors"
	"testing"
	"time"

	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWindows(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	previous, current, err := SelectWindows(now, 30, 366, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, now, current.End)
	assert.Equal(t, now.Add(-30*day), current.Start)
	assert.Equal(t, current.Start, previous.End)
	assert.Equal(t, now.Add(-60*day), previous.Start)
	assert.Equal(t, current.Duration(), previous.Duration())

	assert.True(t, current.Contains(current.Start))
	assert.False(t, current.Contains(current.End))
	assert.True(t, previous.Contains(now.Add(-45*day)))
}

func TestSelectWindowsLabels(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	previous, current, err := SelectWindows(now, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mar 14, 2024 - Mar 15, 2024", current.Label)
	assert.Equal(t, "Mar 13, 2024 - Mar 14, 2024", previous.Label)
}

func TestSelectWindowsRejectsLookback(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	for _, l := range []int{0, -1, -30} {
		_, _, err := SelectWindows(now, l, 366, time.UTC)
		require.Error(t, err)
		assert.True(t, gerr.IsInvalidArgument(err))
		assert.True(t, errors.Is(err, gerr.ErrLookbackNotPositive))
	}

	_, _, err := SelectWindows(now, 367, 366, time.UTC)
	require.Error(t, err)
	assert.True(t, gerr.IsInvalidArgument(err))
	assert.True(t, errors.Is(err, gerr.ErrLookbackTooLong))

	// unset maximum falls back to the hard cap
	_, _, err = SelectWindows(now, 3650, 0, time.UTC)
	assert.NoError(t, err)
	_, _, err = SelectWindows(now, 3651, 0, time.UTC)
	assert.True(t, errors.Is(err, gerr.ErrLookbackTooLong))
}
