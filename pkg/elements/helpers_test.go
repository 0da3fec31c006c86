package elements

import (
	"math"
	"testing"

	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

const epsilon = 1e-9

func pointsClose(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func floatsClose(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// draw validates the element and replays it onto a fresh recorder.
func draw(t *testing.T, e Element) *drawing.Recorder {
	t.Helper()
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	rec := &drawing.Recorder{}
	e.Draw(rec)
	return rec
}
