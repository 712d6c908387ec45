package timeline_test

import (
	"testing"
	"time"

	"github.com/railboard/railboard/pkg/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()

	location, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	return location
}

func TestNewAxisFloorsToHalfHour(t *testing.T) {
	location := newYork(t)

	now := time.Date(2024, 1, 15, 10, 17, 42, 0, location)
	axis := timeline.NewAxis(now)

	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, location), axis.Start)
	assert.Equal(t, time.Date(2024, 1, 15, 13, 0, 0, 0, location), axis.End)

	later := time.Date(2024, 1, 15, 10, 45, 0, 0, location)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, location), timeline.NewAxis(later).Start)
}

func TestAxisMapsWindowOntoDrawableRegion(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, newYork(t))
	axis := timeline.NewAxis(now)

	assert.Equal(t, timeline.LeftMargin, axis.X(axis.Start))
	assert.Equal(t, timeline.CanvasWidth-timeline.RightMargin, axis.X(axis.End))
}

func TestAxisStrictlyIncreasing(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 17, 0, 0, newYork(t))
	axis := timeline.NewAxis(now)

	previous := axis.X(axis.Start)
	for timestamp := axis.Start.Add(time.Minute); !timestamp.After(axis.End); timestamp = timestamp.Add(time.Minute) {
		x := axis.X(timestamp)
		assert.Greater(t, x, previous, "at %s", timestamp)
		previous = x
	}
}

func TestAxisNowInsideDrawableRegion(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 17, 0, 0, newYork(t))
	axis := timeline.NewAxis(now)

	x := axis.X(now)

	assert.GreaterOrEqual(t, x, timeline.LeftMargin)
	assert.LessOrEqual(t, x, timeline.CanvasWidth-timeline.RightMargin)
}

func TestAxisOutOfWindowMapsOutsideMargins(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, newYork(t))
	axis := timeline.NewAxis(now)

	assert.Less(t, axis.X(axis.Start.Add(-time.Hour)), timeline.LeftMargin)
	assert.Greater(t, axis.X(axis.End.Add(time.Hour)), timeline.CanvasWidth-timeline.RightMargin)
}
