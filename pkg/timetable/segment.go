package timetable

// Segment is one directed leg of travel between two consecutive requested
// stations. The stations are not necessarily adjacent on the train's full
// route. Provider data can be inconsistent, so From is expected but not
// guaranteed to precede To.
type Segment struct {
	From StationStop `json:"from" groups:"basic"`
	To   StationStop `json:"to" groups:"basic"`
}
