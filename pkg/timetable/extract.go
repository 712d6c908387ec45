package timetable

import "strings"

// ExtractSegments matches a train's full ordered stop list against the
// requested station codes and returns one Segment per consecutive pair of
// matched stations.
//
// Requested codes are walked in order. Each code matches the first stop on
// the route with the same (case-normalised) code strictly after the
// previously matched stop, which enforces direction of travel. A code with no
// such stop is skipped, so a train omitting an intermediate station still
// yields the legs it does cover. Fewer than two matches yields nil and the
// caller drops the train.
//
// The result depends only on the inputs. Malformed or sparse routes never
// produce an error, just a shorter list.
func ExtractSegments(route []StationStop, requested []string) []Segment {
	var matched []StationStop
	lastMatchedIndex := -1

	for _, requestedCode := range requested {
		requestedCode = NormaliseStationCode(requestedCode)

		for index := lastMatchedIndex + 1; index < len(route); index++ {
			if NormaliseStationCode(route[index].StationCode) == requestedCode {
				matched = append(matched, route[index])
				lastMatchedIndex = index

				break
			}
		}
	}

	if len(matched) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(matched)-1)
	for index := 1; index < len(matched); index++ {
		segments = append(segments, Segment{
			From: matched[index-1],
			To:   matched[index],
		})
	}

	return segments
}

func NormaliseStationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormaliseStationCodes returns a new slice with every code normalised.
func NormaliseStationCodes(codes []string) []string {
	normalised := make([]string, 0, len(codes))
	for _, code := range codes {
		normalised = append(normalised, NormaliseStationCode(code))
	}

	return normalised
}
