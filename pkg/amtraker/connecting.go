package amtraker

import (
	"context"
	"fmt"
	"sort"

	"github.com/cenkalti/backoff/v4"
	"github.com/railboard/railboard/pkg/timetable"
	"github.com/railboard/railboard/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const maxConcurrentTrainFetches = 8

// FindConnectingTrains finds every train that passes through at least two of
// the requested stations in the requested order and returns them as an
// interchange document, ordered by first departure.
//
// Train IDs are collected from all requested stations so trains serving only
// part of the corridor still show up. A station that cannot be fetched is
// logged and skipped, the call only fails when no station responds at all.
func (client *Client) FindConnectingTrains(ctx context.Context, stations []string) (*timetable.Document, error) {
	stations = timetable.NormaliseStationCodes(stations)

	if len(stations) < 2 {
		return nil, fmt.Errorf("need at least two stations, got %d", len(stations))
	}

	var trainIDs []string
	fetchedStations := 0

	for _, stationCode := range stations {
		var station *Station

		err := backoff.Retry(func() error {
			var fetchErr error
			station, fetchErr = client.FetchStation(ctx, stationCode)

			return fetchErr
		}, retryBackoff(ctx))

		if err != nil {
			log.Warn().Err(err).Str("station", stationCode).Msg("Failed to fetch station")

			continue
		}

		fetchedStations++
		trainIDs = append(trainIDs, station.TrainIDs...)
	}

	if fetchedStations == 0 {
		return nil, fmt.Errorf("could not fetch station info for any of %v", stations)
	}

	trainIDs = util.RemoveDuplicateStrings(trainIDs, nil)
	sort.Strings(trainIDs)

	// Results slot in by index so the output never depends on fetch timing
	results := make([]*timetable.Train, len(trainIDs))

	fetchPool := pool.New().WithMaxGoroutines(maxConcurrentTrainFetches)

	for index, trainID := range trainIDs {
		index, trainID := index, trainID

		fetchPool.Go(func() {
			var train *Train

			err := backoff.Retry(func() error {
				var fetchErr error
				train, fetchErr = client.FetchTrain(ctx, trainID)

				return fetchErr
			}, retryBackoff(ctx))

			if err != nil {
				log.Warn().Err(err).Str("train", trainID).Msg("Failed to fetch train")

				return
			}

			results[index] = convertTrain(train, stations)
		})
	}

	fetchPool.Wait()

	document := &timetable.Document{
		Stations: stations,
		Trains:   []timetable.Train{},
	}

	for _, train := range results {
		if train != nil {
			document.Trains = append(document.Trains, *train)
		}
	}

	document.SortByFirstDeparture()

	return document, nil
}

// convertTrain maps a provider train onto the interchange model, returning
// nil for trains with no extractable segments so callers can drop them.
func convertTrain(train *Train, stations []string) *timetable.Train {
	route := make([]timetable.StationStop, 0, len(train.Stations))

	for _, stop := range train.Stations {
		scheduled, hasScheduled := stop.ScheduledTime()
		if !hasScheduled {
			continue
		}

		stationStop := timetable.StationStop{
			StationCode: stop.Code,
			StationName: stop.Name,
			Scheduled:   scheduled,
		}

		if actual, hasActual := stop.ActualTime(); hasActual {
			stationStop.Actual = &actual
		}

		route = append(route, stationStop)
	}

	segments := timetable.ExtractSegments(route, stations)
	if len(segments) == 0 {
		return nil
	}

	return &timetable.Train{
		TrainID:   train.TrainID,
		TrainNum:  train.TrainNum.String(),
		RouteName: train.RouteName,
		Status:    timetable.TrainStatus(train.TrainState),
		Segments:  segments,
	}
}
