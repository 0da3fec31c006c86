package elements

import (
	"math"
	"testing"

	"github.com/Nikolay-Lysenko/renovation/pkg/geometry"
)

func TestPowerOutletDraw(t *testing.T) {
	outlet := PowerOutlet{
		AnchorPoint: geometry.Point{X: 2, Y: 1},
		Length:      0.3,
	}
	rec := draw(t, &outlet)

	if len(rec.Arcs) != 1 || len(rec.Segments) != 3 || len(rec.Circles) != 0 {
		t.Fatalf(
			"recorded %d arcs, %d segments, %d circles, want 1, 3, 0",
			len(rec.Arcs), len(rec.Segments), len(rec.Circles),
		)
	}

	arc := rec.Arcs[0]
	if !pointsClose(arc.Center, outlet.AnchorPoint) {
		t.Errorf("arc center = %v, want anchor point", arc.Center)
	}
	if !floatsClose(arc.RX, 0.15) || !floatsClose(arc.RY, 0.15) {
		t.Errorf("arc radii = %v, %v, want 0.15, 0.15", arc.RX, arc.RY)
	}
	if arc.Theta1 != 0 || arc.Theta2 != 180 {
		t.Errorf("arc range = [%v, %v], want [0, 180]", arc.Theta1, arc.Theta2)
	}
	if arc.Style.Width != 0.5 || arc.Style.Stroke != "black" {
		t.Errorf("arc style = %+v, want default black stroke", arc.Style)
	}

	apex := geometry.Point{X: 2, Y: 1.15}
	if !pointsClose(rec.Segments[0].From, outlet.AnchorPoint) || !pointsClose(rec.Segments[0].To, apex) {
		t.Errorf("inner stem = %+v, want anchor to %v", rec.Segments[0], apex)
	}
	bar := rec.Segments[1]
	if !pointsClose(bar.From, geometry.Point{X: 1.85, Y: 1.15}) || !pointsClose(bar.To, geometry.Point{X: 2.15, Y: 1.15}) {
		t.Errorf("bar = %+v, want (1.85, 1.15) to (2.15, 1.15)", bar)
	}
	tip := rec.Segments[2]
	if !pointsClose(tip.From, apex) || !pointsClose(tip.To, geometry.Point{X: 2, Y: 1.3}) {
		t.Errorf("tip stem = %+v, want %v to (2, 1.3)", tip, apex)
	}
}

func TestPowerOutletVariants(t *testing.T) {
	base := PowerOutlet{AnchorPoint: geometry.Point{X: 2, Y: 1}, Length: 0.3}

	t.Run("Waterproof", func(t *testing.T) {
		outlet := base
		outlet.Waterproof = true
		rec := draw(t, &outlet)
		if len(rec.Segments) != 4 {
			t.Fatalf("recorded %d segments, want 4", len(rec.Segments))
		}
		radius := rec.Segments[3]
		reach := 0.15 * math.Sqrt2 / 2
		want := geometry.Point{X: 2 - reach, Y: 1 + reach}
		if !pointsClose(radius.From, outlet.AnchorPoint) || !pointsClose(radius.To, want) {
			t.Errorf("waterproof radius = %+v, want anchor to %v", radius, want)
		}
	})

	t.Run("HighVoltage", func(t *testing.T) {
		outlet := base
		outlet.HighVoltage = true
		rec := draw(t, &outlet)
		if len(rec.Segments) != 5 {
			t.Fatalf("recorded %d segments, want 5", len(rec.Segments))
		}
		// Each tick is centered on the stem.
		for i, wantY := range []float64{1 + 0.7*0.3, 1 + 0.85*0.3} {
			tick := rec.Segments[3+i]
			midX := (tick.From.X + tick.To.X) / 2
			midY := (tick.From.Y + tick.To.Y) / 2
			if !floatsClose(midX, 2) || !floatsClose(midY, wantY) {
				t.Errorf("tick %d midpoint = (%v, %v), want (2, %v)", i, midX, midY, wantY)
			}
		}
	})

	t.Run("LowCurrent", func(t *testing.T) {
		outlet := base
		outlet.LowCurrent = true
		rec := draw(t, &outlet)
		if len(rec.Circles) != 1 {
			t.Fatalf("recorded %d circles, want 1", len(rec.Circles))
		}
		circle := rec.Circles[0]
		if !pointsClose(circle.Center, geometry.Point{X: 2, Y: 1.3}) {
			t.Errorf("marker center = %v, want tip end (2, 1.3)", circle.Center)
		}
		if !floatsClose(circle.Radius, 0.075) {
			t.Errorf("marker radius = %v, want 0.075", circle.Radius)
		}
		if circle.Style.Fill != "" {
			t.Errorf("marker fill = %q, want unfilled", circle.Style.Fill)
		}
	})
}

func TestElectricalCableDraw(t *testing.T) {
	cable := ElectricalCable{Length: 2}
	rec := draw(t, &cable)

	if len(rec.Circles) != 1 {
		t.Fatalf("recorded %d circles, want a single junction dot", len(rec.Circles))
	}
	dot := rec.Circles[0]
	if !pointsClose(dot.Center, geometry.Point{}) || !floatsClose(dot.Radius, 0.125) {
		t.Errorf("junction dot = %+v, want radius 0.125 at origin", dot)
	}
	if dot.Style.Fill != "black" {
		t.Errorf("junction dot fill = %q, want black", dot.Style.Fill)
	}

	if len(rec.Arcs) != 4 {
		t.Fatalf("recorded %d arcs, want 4", len(rec.Arcs))
	}
	for i, arc := range rec.Arcs {
		wantCenter := geometry.Point{X: (float64(i) + 0.5) * 0.5}
		if !pointsClose(arc.Center, wantCenter) {
			t.Errorf("arc %d center = %v, want %v", i, arc.Center, wantCenter)
		}
		if !floatsClose(arc.RX, 0.25) || !floatsClose(arc.RY, 0.25) {
			t.Errorf("arc %d radii = %v, %v, want 0.25, 0.25", i, arc.RX, arc.RY)
		}
		wantTheta1, wantTheta2 := 0.0, 180.0
		if i%2 == 1 {
			wantTheta1, wantTheta2 = 180.0, 360.0
		}
		if arc.Theta1 != wantTheta1 || arc.Theta2 != wantTheta2 {
			t.Errorf(
				"arc %d range = [%v, %v], want [%v, %v]",
				i, arc.Theta1, arc.Theta2, wantTheta1, wantTheta2,
			)
		}
	}
}

func TestElectricalCableValidate(t *testing.T) {
	cable := ElectricalCable{Length: 1.2}
	if err := cable.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if cable.NumberOfArcs != 4 {
		t.Errorf("NumberOfArcs after validation = %d, want default 4", cable.NumberOfArcs)
	}

	cable = ElectricalCable{Length: 1.2, NumberOfArcs: -2}
	if err := cable.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for negative arc count")
	}

	cable = ElectricalCable{}
	if err := cable.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for missing length")
	}
}
