package timetable_test

import (
	"testing"
	"time"

	"github.com/railboard/railboard/pkg/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return parsed
}

func routeStop(t *testing.T, code string, scheduled string, actual string) timetable.StationStop {
	t.Helper()

	stop := timetable.StationStop{
		StationCode: code,
		StationName: code + " Station",
		Scheduled:   mustParseTime(t, scheduled),
	}

	if actual != "" {
		actualTime := mustParseTime(t, actual)
		stop.Actual = &actualTime
	}

	return stop
}

func TestExtractSegmentsInOrder(t *testing.T) {
	route := []timetable.StationStop{
		routeStop(t, "NYP", "2024-01-15T06:02:00-05:00", ""),
		routeStop(t, "NWK", "2024-01-15T06:16:00-05:00", "2024-01-15T06:17:00-05:00"),
		routeStop(t, "TRE", "2024-01-15T06:55:00-05:00", ""),
		routeStop(t, "PHL", "2024-01-15T07:40:00-05:00", ""),
	}

	segments := timetable.ExtractSegments(route, []string{"NYP", "NWK", "PHL"})

	require.Len(t, segments, 2)

	assert.Equal(t, "NYP", segments[0].From.StationCode)
	assert.Equal(t, "NWK", segments[0].To.StationCode)
	assert.Equal(t, "NWK", segments[1].From.StationCode)
	assert.Equal(t, "PHL", segments[1].To.StationCode)

	// The delayed NWK stop reports an actual time, so both the arrival of leg
	// one and the departure of leg two use it
	assert.Equal(t, mustParseTime(t, "2024-01-15T06:17:00-05:00"), segments[0].To.EffectiveTime())
	assert.Equal(t, mustParseTime(t, "2024-01-15T06:17:00-05:00"), segments[1].From.EffectiveTime())
	assert.Equal(t, mustParseTime(t, "2024-01-15T06:02:00-05:00"), segments[0].From.EffectiveTime())
}

func TestExtractSegmentsReversedDirection(t *testing.T) {
	route := []timetable.StationStop{
		routeStop(t, "PHL", "2024-01-15T06:02:00-05:00", ""),
		routeStop(t, "NWK", "2024-01-15T07:10:00-05:00", ""),
		routeStop(t, "NYP", "2024-01-15T07:40:00-05:00", ""),
	}

	segments := timetable.ExtractSegments(route, []string{"NYP", "NWK", "PHL"})

	assert.Nil(t, segments)
}

func TestExtractSegmentsSkippedStation(t *testing.T) {
	route := []timetable.StationStop{
		routeStop(t, "NYP", "2024-01-15T06:02:00-05:00", ""),
		routeStop(t, "PHL", "2024-01-15T07:40:00-05:00", ""),
	}

	segments := timetable.ExtractSegments(route, []string{"NYP", "NWK", "PHL"})

	// NWK never matches so the matched stations collapse to a single NYP->PHL leg
	require.Len(t, segments, 1)
	assert.Equal(t, "NYP", segments[0].From.StationCode)
	assert.Equal(t, "PHL", segments[0].To.StationCode)
}

func TestExtractSegmentsSingleMatch(t *testing.T) {
	route := []timetable.StationStop{
		routeStop(t, "NYP", "2024-01-15T06:02:00-05:00", ""),
		routeStop(t, "BOS", "2024-01-15T10:40:00-05:00", ""),
	}

	segments := timetable.ExtractSegments(route, []string{"NYP", "NWK", "PHL"})

	assert.Nil(t, segments)
}

func TestExtractSegmentsCaseNormalisation(t *testing.T) {
	route := []timetable.StationStop{
		routeStop(t, "nyp", "2024-01-15T06:02:00-05:00", ""),
		routeStop(t, "Nwk", "2024-01-15T06:16:00-05:00", ""),
	}

	segments := timetable.ExtractSegments(route, []string{" NYP ", "nwk"})

	require.Len(t, segments, 1)
	assert.Equal(t, "nyp", segments[0].From.StationCode)
}

func TestExtractSegmentsRepeatedRequestedCode(t *testing.T) {
	// An out-and-back route can serve the same requested code twice. Each
	// request is an independent match attempt against a strictly later stop.
	route := []timetable.StationStop{
		routeStop(t, "NYP", "2024-01-15T06:02:00-05:00", ""),
		routeStop(t, "NWK", "2024-01-15T06:16:00-05:00", ""),
		routeStop(t, "NYP", "2024-01-15T07:00:00-05:00", ""),
	}

	segments := timetable.ExtractSegments(route, []string{"NYP", "NWK", "NYP"})

	require.Len(t, segments, 2)
	assert.Equal(t, mustParseTime(t, "2024-01-15T06:02:00-05:00"), segments[0].From.Scheduled)
	assert.Equal(t, mustParseTime(t, "2024-01-15T07:00:00-05:00"), segments[1].To.Scheduled)
}

func TestExtractSegmentsBoundsAndDeterminism(t *testing.T) {
	route := []timetable.StationStop{
		routeStop(t, "BOS", "2024-01-15T05:00:00-05:00", ""),
		routeStop(t, "NYP", "2024-01-15T06:02:00-05:00", ""),
		routeStop(t, "NWK", "2024-01-15T06:16:00-05:00", ""),
		routeStop(t, "PHL", "2024-01-15T07:40:00-05:00", ""),
		routeStop(t, "WAS", "2024-01-15T09:30:00-05:00", ""),
	}

	requested := []string{"NYP", "NWK", "PHL", "WAS"}

	first := timetable.ExtractSegments(route, requested)
	second := timetable.ExtractSegments(route, requested)

	assert.LessOrEqual(t, len(first), len(requested)-1)
	assert.Equal(t, first, second)
}

func TestEffectiveTimeFallsBackToScheduled(t *testing.T) {
	stop := routeStop(t, "NYP", "2024-01-15T06:02:00-05:00", "")

	assert.Equal(t, stop.Scheduled, stop.EffectiveTime())
}
