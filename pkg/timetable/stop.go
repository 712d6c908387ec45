package timetable

import "time"

// StationStop is a single appearance of a station on a train's route with the
// provider's scheduled time and, when reported, the realtime actual time.
type StationStop struct {
	StationCode string     `json:"station_code" groups:"basic"`
	StationName string     `json:"station_name" groups:"basic"`
	Scheduled   time.Time  `json:"scheduled" groups:"basic"`
	Actual      *time.Time `json:"actual" groups:"basic"`
}

// EffectiveTime returns the actual time when the provider reported one,
// falling back to the scheduled time otherwise.
func (stop *StationStop) EffectiveTime() time.Time {
	if stop.Actual != nil {
		return *stop.Actual
	}

	return stop.Scheduled
}
