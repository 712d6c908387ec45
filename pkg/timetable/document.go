package timetable

import (
	"encoding/json"
	"io"

	"golang.org/x/exp/slices"
)

// Document is the interchange format between the fetch and render halves of
// the pipeline. Station order is the caller's requested travel direction.
type Document struct {
	Stations []string `json:"stations" groups:"basic"`
	Trains   []Train  `json:"trains" groups:"basic"`
}

func ParseDocument(reader io.Reader) (*Document, error) {
	var document Document

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&document); err != nil {
		return nil, err
	}

	return &document, nil
}

// SortByFirstDeparture orders the trains by their first effective departure
// time. The sort is stable so trains with identical times keep provider order.
func (document *Document) SortByFirstDeparture() {
	slices.SortStableFunc(document.Trains, func(a Train, b Train) int {
		left, leftOK := a.FirstDeparture()
		right, rightOK := b.FirstDeparture()

		switch {
		case !leftOK && !rightOK:
			return 0
		case !leftOK:
			return 1
		case !rightOK:
			return -1
		}

		return left.Compare(right)
	})
}

func (document *Document) MarshalBinary() ([]byte, error) {
	return json.Marshal(document)
}

func (document *Document) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, document)
}
