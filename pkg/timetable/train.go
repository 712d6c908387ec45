package timetable

import "time"

// TrainStatus is the provider's train state. The provider sends free text so
// values outside the canonical set are preserved as-is and rendered with the
// default bar style.
type TrainStatus string

const (
	TrainStatusActive       TrainStatus = "Active"
	TrainStatusPredeparture TrainStatus = "Predeparture"
	TrainStatusCompleted    TrainStatus = "Completed"
)

type Train struct {
	TrainID   string      `json:"train_id" groups:"basic"`
	TrainNum  string      `json:"train_num" groups:"basic"`
	RouteName string      `json:"route_name" groups:"basic"`
	Status    TrainStatus `json:"status" groups:"basic"`
	Segments  []Segment   `json:"segments" groups:"basic"`
}

// FirstDeparture returns the effective departure time of the train's first
// segment. The second return is false for a train with no segments.
func (train *Train) FirstDeparture() (time.Time, bool) {
	if len(train.Segments) == 0 {
		return time.Time{}, false
	}

	return train.Segments[0].From.EffectiveTime(), true
}

// LastArrival returns the effective arrival time of the train's last segment.
func (train *Train) LastArrival() (time.Time, bool) {
	if len(train.Segments) == 0 {
		return time.Time{}, false
	}

	return train.Segments[len(train.Segments)-1].To.EffectiveTime(), true
}
