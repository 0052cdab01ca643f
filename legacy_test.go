package progressbar

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// TestLegacy_MatchesHorizontal replays the same value sequences through the
// legacy strategy and the general engine and compares every pixel.
func TestLegacy_MatchesHorizontal(t *testing.T) {
	sizes := []struct{ w, h int }{
		{180, 40}, {104, 10}, {7, 7}, {5, 5}, {6, 6},
	}
	for _, size := range sizes {
		g := Geometry{Width: size.w, Height: size.h, BorderThickness: 1, MarginSize: 1}
		legacy := NewLegacyRenderer(size.w, size.h, 1)
		general := NewHorizontal(g, LeftToRight)
		a, b := newIndexed(t, size.w, size.h), newIndexed(t, size.w, size.h)

		rng := rand.New(rand.NewPCG(uint64(size.w), uint64(size.h)))
		prev := 0.0
		for i := 0; i < 300; i++ {
			next := rng.Float64()
			switch i % 5 {
			case 0:
				next = 0
			case 1:
				next = 1
			case 2:
				next = 0.001
			}
			legacy.Render(a, RatioSample(prev), RatioSample(next))
			general.Render(b, RatioSample(prev), RatioSample(next))
			prev = next

			if !slices.Equal(a.Pix(), b.Pix()) {
				t.Fatalf("%dx%d step %d (ratio %g): legacy and general output differ", size.w, size.h, i, next)
			}
		}
	}
}

func TestLegacy_UpdatesMatchEngine(t *testing.T) {
	legacy := NewLegacyRenderer(180, 40, 1)
	engine := NewFillEngine(176, 2, 180, false)
	for _, step := range [][2]float64{{0, 0.5}, {0.5, 0.2}, {0.2, 0}, {0, 1}, {1, 0.999}, {0.3, 0.3}} {
		got := legacy.ComputeFillUpdate(step[0], step[1])
		want := engine.ComputeFillUpdate(step[0], step[1])
		if got != want {
			t.Errorf("%g->%g: legacy %+v, engine %+v", step[0], step[1], got, want)
		}
	}
}

func TestLegacy_SampleBoundaries(t *testing.T) {
	legacy := NewLegacyRenderer(180, 40, 1)
	engine := NewFillEngine(176, 2, 180, false)
	samples := []Sample{
		{Ratio: 0},
		{Ratio: 0, AboveMin: true, BelowMax: true},
		{Ratio: 1, AboveMin: true, BelowMax: true},
		{Ratio: 1, AboveMin: true},
	}
	for _, old := range samples {
		for _, next := range samples {
			if got, want := legacy.Update(old, next), engine.Update(old, next); got != want {
				t.Errorf("%+v->%+v: legacy %+v, engine %+v", old, next, got, want)
			}
		}
	}
}

func TestLegacy_StrokeMatchesHorizontal(t *testing.T) {
	for _, stroke := range []int{0, 2, 3} {
		g := Geometry{Width: 60, Height: 20, BorderThickness: stroke, MarginSize: 1}
		legacy := NewLegacyRenderer(g.Width, g.Height, stroke)
		general := NewHorizontal(g, LeftToRight)
		a, b := newIndexed(t, g.Width, g.Height), newIndexed(t, g.Width, g.Height)
		prev := 0.0
		for _, v := range []float64{0.4, 1, 0.001, 0.999, 0} {
			legacy.Render(a, RatioSample(prev), RatioSample(v))
			general.Render(b, RatioSample(prev), RatioSample(v))
			prev = v
			if !slices.Equal(a.Pix(), b.Pix()) {
				t.Fatalf("stroke %d ratio %g: legacy and general output differ", stroke, v)
			}
		}
	}
}

func TestLegacy_DegenerateWidth(t *testing.T) {
	legacy := NewLegacyRenderer(4, 10, 1)
	if u := legacy.ComputeFillUpdate(0, 1); !u.Empty() {
		t.Errorf("no interior: update = %+v, want empty", u)
	}
}
