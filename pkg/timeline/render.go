package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/railboard/railboard/pkg/bitmapfont"
	"github.com/railboard/railboard/pkg/raster"
	"github.com/railboard/railboard/pkg/timetable"
	"github.com/railboard/railboard/pkg/util"
)

const DisplayTimezone = "America/New_York"

const (
	fontScale  = 2
	charHeight = bitmapfont.GlyphHeight

	// Station codes at the top of the bar, a gap, the train name underneath,
	// plus padding
	barHeight = charHeight + 2 + charHeight*fontScale + 4

	// Smallest row that fits a bar plus its time labels, bounds how many
	// trains one render can show
	minRowHeight = barHeight + charHeight + 6
)

// Request is everything one render call needs. It owns no long-lived state,
// callers build a fresh one per render. Now must always be current even when
// the train data came from a cache.
type Request struct {
	Trains       []timetable.Train
	Stations     []string
	Now          time.Time
	BufferBefore time.Duration
	BufferAfter  time.Duration
	CacheAge     time.Duration
}

type segmentPosition struct {
	x1        int
	x2        int
	departure time.Time
	arrival   time.Time
	segment   timetable.Segment
}

type barStyle struct {
	hollow  bool
	striped bool
	ink     raster.Colour
}

// styleForStatus maps the provider's train state onto a bar appearance.
// Unrecognised states get the solid default.
func styleForStatus(status timetable.TrainStatus) barStyle {
	switch status {
	case timetable.TrainStatusPredeparture:
		return barStyle{hollow: true, ink: raster.Black}
	case timetable.TrainStatusCompleted:
		return barStyle{striped: true, ink: raster.White}
	default:
		return barStyle{ink: raster.White}
	}
}

// Render composes the full timeline raster for a request. Output is
// pixel-identical for identical request content. Render tolerates any train
// and segment content, inconsistent provider times collapse to zero-width
// bars and surplus rows are silently dropped, it only fails when the display
// timezone cannot be loaded.
func Render(request Request) (*raster.Canvas, error) {
	font := bitmapfont.Get()

	location, err := time.LoadLocation(DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("loading display timezone: %w", err)
	}

	now := request.Now.In(location)
	axis := NewAxis(now)

	canvas := raster.NewCanvas(CanvasWidth, CanvasHeight)

	drawScaffolding(canvas, font, axis, now, request.CacheAge)
	drawStationHeader(canvas, font, request.Stations)

	visible := visibleTrains(request.Trains, axis)

	if len(visible) == 0 {
		font.Draw(canvas, "No trains in next 3 hours", CanvasWidth/2, CanvasHeight/2-charHeight*fontScale/2, raster.Black, bitmapfont.AnchorCentre, fontScale)

		return canvas, nil
	}

	availableHeight := CanvasHeight - TopMargin - BottomMargin

	if maxRows := availableHeight / minRowHeight; len(visible) > maxRows {
		visible = visible[:maxRows]
	}

	rowHeight := availableHeight / len(visible)

	for index, train := range visible {
		drawTrainRow(canvas, font, axis, location, train, index, rowHeight, request)
	}

	return canvas, nil
}

// visibleTrains keeps trains whose travel overlaps the window, preserving
// input order. Document order is the canonical draw order, the renderer
// never re-sorts.
func visibleTrains(trains []timetable.Train, axis Axis) []timetable.Train {
	var visible []timetable.Train

	for _, train := range trains {
		firstDeparture, ok := train.FirstDeparture()
		if !ok {
			continue
		}

		lastArrival, _ := train.LastArrival()

		if lastArrival.Before(axis.Start) || firstDeparture.After(axis.End) {
			continue
		}

		visible = append(visible, train)
	}

	return visible
}

func drawScaffolding(canvas *raster.Canvas, font *bitmapfont.Font, axis Axis, now time.Time, cacheAge time.Duration) {
	chartBottom := CanvasHeight - BottomMargin

	stamp := strings.ToLower(now.Format("Jan 2 2006 3:04pm"))
	if cacheAge > 0 {
		stamp += fmt.Sprintf("  data %dm", int(cacheAge.Minutes()))
	}

	stampWidth, _ := font.Measure(stamp, 1)
	canvas.FillRect(CanvasWidth-4-stampWidth-2, 3, CanvasWidth-4+2, 4+charHeight+1, raster.White)
	font.Draw(canvas, stamp, CanvasWidth-4, 4, raster.Black, bitmapfont.AnchorRight, 1)

	canvas.HLine(0, CanvasWidth, chartBottom, raster.Black)

	for marker := axis.Start; !marker.After(axis.End); marker = marker.Add(WindowRounding) {
		x := axis.X(marker)

		// Light gridline, every third pixel
		for y := TopMargin; y < chartBottom; y++ {
			if y%3 == 0 {
				canvas.Set(x, y, raster.Black)
			}
		}

		font.Draw(canvas, clockLabel(marker), x, chartBottom+8, raster.Black, bitmapfont.AnchorCentre, fontScale)
	}

	canvas.VLine(axis.X(now), TopMargin, chartBottom, raster.Black, true)
}

// drawStationHeader lists the requested station codes down the left margin.
// Headers and segments are always built from the same station set, so every
// code a segment references has a header slot.
func drawStationHeader(canvas *raster.Canvas, font *bitmapfont.Font, stations []string) {
	y := 4

	for _, code := range timetable.NormaliseStationCodes(stations) {
		font.Draw(canvas, font.Sanitise(code), 4, y, raster.Black, bitmapfont.AnchorLeft, 1)
		y += charHeight + 2
	}
}

func drawTrainRow(canvas *raster.Canvas, font *bitmapfont.Font, axis Axis, location *time.Location, train timetable.Train, index int, rowHeight int, request Request) {
	yCentre := TopMargin + index*rowHeight + rowHeight/2
	barTop := yCentre - barHeight/2
	barBottom := yCentre + barHeight/2

	style := styleForStatus(train.Status)

	var positions []segmentPosition

	for _, segment := range train.Segments {
		departure := segment.From.EffectiveTime().In(location)
		arrival := segment.To.EffectiveTime().In(location)

		visibleDeparture := maxTime(departure, axis.Start)
		visibleArrival := minTime(arrival, axis.End)

		if !visibleArrival.After(axis.Start) || !visibleDeparture.Before(axis.End) {
			continue
		}

		x1 := axis.X(visibleDeparture)

		// Bars reaching the window end extend to the image edge
		x2 := CanvasWidth
		if arrival.Before(axis.End) {
			x2 = axis.X(visibleArrival)
		}

		// Inconsistent provider data collapses to a zero-width bar
		if x2 < x1 {
			x2 = x1
		}

		positions = append(positions, segmentPosition{
			x1:        x1,
			x2:        x2,
			departure: departure,
			arrival:   arrival,
			segment:   segment,
		})

		drawBar(canvas, x1, barTop, x2, barBottom, style)
	}

	if len(positions) == 0 {
		return
	}

	blockX1 := positions[0].x1
	blockX2 := positions[len(positions)-1].x2

	drawBuffers(canvas, axis, positions, blockX1, blockX2, barTop, barBottom, request)
	drawTimeLabels(canvas, font, axis, positions, barTop)
	drawStationCodes(canvas, font, positions, barTop, style)
	drawTrainName(canvas, font, train, blockX1, blockX2, barBottom, style)
}

func drawBar(canvas *raster.Canvas, x1 int, y1 int, x2 int, y2 int, style barStyle) {
	canvas.FillRect(x1, y1, x2, y2, raster.Black)

	if style.hollow {
		canvas.FillRect(x1+2, y1+2, x2-2, y2-2, raster.White)
	} else if style.striped {
		for x := x1 + 3; x < x2-1; x += 4 {
			canvas.VLine(x, y1+1, y2-1, raster.White, false)
		}
	}
}

// drawBuffers renders the schedule-slack checkerboards immediately before the
// first segment and after the last. Buffers clamp to the window, they never
// wrap, and a bar already touching the image edge leaves no room for a
// trailing buffer.
func drawBuffers(canvas *raster.Canvas, axis Axis, positions []segmentPosition, blockX1 int, blockX2 int, barTop int, barBottom int, request Request) {
	if request.BufferBefore > 0 {
		bufferStart := positions[0].departure.Add(-request.BufferBefore)
		bufferStartX := axis.X(maxTime(bufferStart, axis.Start))

		if bufferStartX < blockX1 {
			canvas.Checkerboard(bufferStartX, barTop, blockX1, barBottom)
		}
	}

	if request.BufferAfter > 0 && blockX2 < CanvasWidth {
		bufferEnd := positions[len(positions)-1].arrival.Add(request.BufferAfter)
		bufferEndX := axis.X(minTime(bufferEnd, axis.End))

		if bufferEndX > blockX2 {
			canvas.Checkerboard(blockX2, barTop, min(bufferEndX, CanvasWidth), barBottom)
		}
	}
}

type textSpan struct {
	left       int
	right      int
	label      string
	anchorLeft bool
}

// drawTimeLabels places departure, intermediate and arrival times above the
// bars, dropping any label that would overlap one already drawn.
func drawTimeLabels(canvas *raster.Canvas, font *bitmapfont.Font, axis Axis, positions []segmentPosition, barTop int) {
	timeY := barTop - charHeight - 3

	var spans []textSpan

	for index, position := range positions {
		isFirst := index == 0
		isLast := index == len(positions)-1

		if isFirst {
			label := clockLabel(position.departure)
			width, _ := font.Measure(label, 1)
			spans = append(spans, textSpan{position.x1, position.x1 + width, label, true})
		}

		if !isLast {
			gapCentre := (position.x2 + positions[index+1].x1) / 2
			label := clockLabel(position.arrival)
			width, _ := font.Measure(label, 1)
			spans = append(spans, textSpan{gapCentre - width/2, gapCentre + width/2, label, false})
		}

		if isLast && !position.arrival.After(axis.End) {
			label := clockLabel(position.arrival)
			width, _ := font.Measure(label, 1)
			spans = append(spans, textSpan{position.x2 - width, position.x2, label, false})
		}
	}

	const minGap = 4
	lastRight := -1000

	for _, span := range spans {
		if span.left <= lastRight+minGap {
			continue
		}

		// White backing so labels stay legible over gridlines
		canvas.FillRect(span.left-1, timeY-1, span.right+1, timeY+charHeight+1, raster.White)

		if span.anchorLeft {
			font.Draw(canvas, span.label, span.left, timeY, raster.Black, bitmapfont.AnchorLeft, 1)
		} else {
			font.Draw(canvas, span.label, (span.left+span.right)/2, timeY, raster.Black, bitmapfont.AnchorCentre, 1)
		}

		lastRight = span.right
	}
}

func drawStationCodes(canvas *raster.Canvas, font *bitmapfont.Font, positions []segmentPosition, barTop int, style barStyle) {
	stationY := barTop + 2

	const padding = 4

	minWidth, _ := font.Measure("XXX", 1)
	minWidth += padding * 2

	for index, position := range positions {
		isFirst := index == 0
		isLast := index == len(positions)-1

		fromCode := font.Sanitise(timetable.NormaliseStationCode(position.segment.From.StationCode))
		toCode := font.Sanitise(timetable.NormaliseStationCode(position.segment.To.StationCode))

		if position.x2-position.x1 > minWidth {
			if isFirst {
				font.Draw(canvas, fromCode, position.x1+padding, stationY, style.ink, bitmapfont.AnchorLeft, 1)
			}

			if isLast {
				font.Draw(canvas, toCode, position.x2-padding, stationY, style.ink, bitmapfont.AnchorRight, 1)
			}
		}

		if !isLast {
			gapCentre := (position.x2 + positions[index+1].x1) / 2
			codeWidth, _ := font.Measure(toCode, 1)

			canvas.FillRect(gapCentre-codeWidth/2-2, stationY-1, gapCentre+codeWidth/2+2, stationY+charHeight+1, raster.Black)
			font.Draw(canvas, toCode, gapCentre, stationY, raster.White, bitmapfont.AnchorCentre, 1)
		}
	}
}

// drawTrainName centres the route name and number across the train's full
// block, falling back to edge alignment when centring would clip.
func drawTrainName(canvas *raster.Canvas, font *bitmapfont.Font, train timetable.Train, blockX1 int, blockX2 int, barBottom int, style barStyle) {
	trainNameY := barBottom - charHeight*fontScale - 2

	route := train.RouteName
	if route == "" {
		route = "Train"
	}
	if route == "Northeast Regional" {
		route = "NE Regional"
	}

	label := font.Sanitise(util.TrimString(strings.TrimSpace(route+" "+train.TrainNum), 40))
	labelWidth, _ := font.Measure(label, fontScale)

	centreX := (blockX1 + blockX2) / 2

	const trainPadding = 8

	switch {
	case centreX+labelWidth/2 > CanvasWidth:
		font.Draw(canvas, label, blockX1+trainPadding, trainNameY, style.ink, bitmapfont.AnchorLeft, fontScale)
	case centreX-labelWidth/2 < 0:
		font.Draw(canvas, label, blockX2-trainPadding, trainNameY, style.ink, bitmapfont.AnchorRight, fontScale)
	default:
		font.Draw(canvas, label, centreX, trainNameY, style.ink, bitmapfont.AnchorCentre, fontScale)
	}
}

func clockLabel(timestamp time.Time) string {
	hour := timestamp.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d", hour, timestamp.Minute())
}

func maxTime(a time.Time, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

func minTime(a time.Time, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}
