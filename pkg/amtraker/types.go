package amtraker

import (
	"encoding/json"
	"time"
)

// Station is one entry of the Amtraker v3 /stations response.
type Station struct {
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	TrainIDs []string `json:"trains"`
}

// Train is one entry of the Amtraker v3 /trains response. TrainNum arrives as
// a bare number for some routes, so it decodes through json.Number.
type Train struct {
	TrainID    string         `json:"trainID"`
	TrainNum   json.Number    `json:"trainNum"`
	RouteName  string         `json:"routeName"`
	TrainState string         `json:"trainState"`
	Stations   []TrainStation `json:"stations"`
}

// TrainStation is one stop on a train's route. The provider reports separate
// scheduled/realtime arrival and departure fields, any of which can be empty.
type TrainStation struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	SchArr string `json:"schArr"`
	SchDep string `json:"schDep"`
	Arr    string `json:"arr"`
	Dep    string `json:"dep"`
}

// ScheduledTime prefers the scheduled departure, falling back to the
// scheduled arrival for terminal stops.
func (station *TrainStation) ScheduledTime() (time.Time, bool) {
	return parseStopTime(station.SchDep, station.SchArr)
}

// ActualTime prefers the realtime departure, falling back to the realtime
// arrival. The second return is false when the provider reported neither.
func (station *TrainStation) ActualTime() (time.Time, bool) {
	return parseStopTime(station.Dep, station.Arr)
}

func parseStopTime(preferred string, fallback string) (time.Time, bool) {
	for _, value := range []string{preferred, fallback} {
		if value == "" {
			continue
		}

		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}
