package timeline

import "time"

// Canvas geometry for the 800x480 e-ink target.
const (
	CanvasWidth  = 800
	CanvasHeight = 480

	LeftMargin   = 50
	RightMargin  = 40
	TopMargin    = 0
	BottomMargin = 40

	WindowLength   = 3 * time.Hour
	WindowRounding = 30 * time.Minute
)

// Axis is a fixed affine mapping between absolute timestamps and horizontal
// pixel coordinates. X is a pure function of its argument and the axis
// bounds, so one axis instance serves every bar and label in a render pass.
// Timestamps outside the window map to coordinates outside the drawable
// region, clipping is the renderer's job.
type Axis struct {
	Start time.Time
	End   time.Time
}

// NewAxis builds the window for a reference time: start is the timestamp
// floored to the previous half hour so the grid lands on clean clock
// boundaries and the reference time itself sits inside the window.
func NewAxis(now time.Time) Axis {
	start := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), (now.Minute()/30)*30, 0, 0, now.Location())

	return Axis{
		Start: start,
		End:   start.Add(WindowLength),
	}
}

// X maps a timestamp onto the horizontal pixel axis.
func (axis Axis) X(timestamp time.Time) int {
	window := axis.End.Sub(axis.Start).Seconds()
	elapsed := timestamp.Sub(axis.Start).Seconds()

	drawable := float64(CanvasWidth - LeftMargin - RightMargin)

	return LeftMargin + int(elapsed/window*drawable)
}
