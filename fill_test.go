package progressbar

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

// line simulates one row of a bar along its fill axis.
type line []uint8

func (l line) apply(u FillUpdate) {
	for c := range u.Coords() {
		l[c] = u.Index
	}
}

func (l line) filled() int {
	n := 0
	for _, v := range l {
		if v == IndexBar {
			n++
		}
	}
	return n
}

func TestFillUpdate_Len(t *testing.T) {
	tests := []struct {
		name string
		u    FillUpdate
		want int
	}{
		{"zero", FillUpdate{}, 0},
		{"ascending", FillUpdate{From: 2, To: 52, Step: 1}, 50},
		{"descending", FillUpdate{From: 51, To: 21, Step: -1}, 30},
		{"inverted bounds", FillUpdate{From: 10, To: 2, Step: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.u.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
			if got := len(tt.u.Writes()); got != tt.want {
				t.Errorf("len(Writes()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFillUpdate_CoordsStopEarly(t *testing.T) {
	u := FillUpdate{From: 0, To: 10, Step: 1}
	var got []int
	for c := range u.Coords() {
		if c == 3 {
			break
		}
		got = append(got, c)
	}
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("Coords() = %v, want [0 1 2]", got)
	}
}

func TestFillEngine_ConcreteScenario(t *testing.T) {
	e := NewFillEngine(100, 2, 104, false)

	grow := e.ComputeFillUpdate(0.0/100, 50.0/100)
	if grow.Index != IndexBar {
		t.Errorf("grow index = %d, want IndexBar", grow.Index)
	}
	coords := slices.Sorted(grow.Coords())
	if coords[0] != 2 || coords[len(coords)-1] != 51 || len(coords) != 50 {
		t.Errorf("grow covers [%d, %d] (%d), want [2, 52)", coords[0], coords[len(coords)-1], len(coords))
	}

	shrink := e.ComputeFillUpdate(50.0/100, 20.0/100)
	if shrink.Index != IndexBackground {
		t.Errorf("shrink index = %d, want IndexBackground", shrink.Index)
	}
	if shrink.Step != -1 {
		t.Errorf("shrink step = %d, want -1", shrink.Step)
	}
	writes := shrink.Writes()
	if len(writes) != 30 || writes[0].Coord != 51 || writes[len(writes)-1].Coord != 22 {
		t.Errorf("shrink writes %d from %d to %d, want 30 from 51 to 22",
			len(writes), writes[0].Coord, writes[len(writes)-1].Coord)
	}
}

func TestFillEngine_BoundaryPolicy(t *testing.T) {
	r, _ := NewRange(-40, 130)
	e := NewFillEngine(96, 2, 100, false)

	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"minimum is empty", -40, 0},
		{"just above minimum shows one pixel", -39, 1},
		{"just below maximum is not full", 129.9, 95},
		{"maximum is full", 130, 96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extent(r.RatioOf(tt.value)); got != tt.want {
				t.Errorf("Extent(%g) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestFillEngine_ExtentEdgeCases(t *testing.T) {
	if got := NewFillEngine(0, 0, 0, false).Extent(0.5); got != 0 {
		t.Errorf("zero-length Extent = %d, want 0", got)
	}
	if got := NewFillEngine(0, 2, 4, false).ComputeFillUpdate(0, 1); !got.Empty() {
		t.Errorf("zero-length update = %+v, want empty", got)
	}
	// A one-pixel axis cannot satisfy both rules; it stays empty below max.
	one := NewFillEngine(1, 0, 1, false)
	if got := one.Extent(0.5); got != 0 {
		t.Errorf("one-pixel Extent(0.5) = %d, want 0", got)
	}
	if got := one.Extent(1); got != 1 {
		t.Errorf("one-pixel Extent(1) = %d, want 1", got)
	}
}

// TestFillEngine_TouchBound checks that a render pass never touches more
// lines than the extent delta and never leaves the fillable run.
func TestFillEngine_TouchBound(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, mirrored := range []bool{false, true} {
		e := NewFillEngine(37, 3, 43, mirrored)
		old := 0.0
		for i := 0; i < 2000; i++ {
			next := rng.Float64()
			if i%7 == 0 {
				next = float64(rng.IntN(2)) // hit both ends often
			}
			u := e.ComputeFillUpdate(old, next)
			delta := e.Extent(next) - e.Extent(old)
			if delta < 0 {
				delta = -delta
			}
			if u.Len() > delta {
				t.Fatalf("mirrored=%v %g->%g touched %d lines, delta %d", mirrored, old, next, u.Len(), delta)
			}
			for c := range u.Coords() {
				if c < 3 || c >= 40 {
					t.Fatalf("mirrored=%v %g->%g wrote coord %d outside [3, 40)", mirrored, old, next, c)
				}
			}
			old = next
		}
	}
}

// TestFillEngine_Convergence checks that the final line depends only on the
// final value, whatever path led there.
func TestFillEngine_Convergence(t *testing.T) {
	r, _ := NewRange(0, 100)
	for _, mirrored := range []bool{false, true} {
		e := NewFillEngine(100, 2, 104, mirrored)

		run := func(values ...float64) line {
			l := make(line, 104)
			prev := r.Min
			for _, v := range values {
				l.apply(e.ComputeFillUpdate(r.RatioOf(prev), r.RatioOf(v)))
				prev = v
			}
			return l
		}

		direct := run(30)
		viaPeak := run(50, 30)
		viaZigzag := run(100, 0, 0.1, 99.9, 30)
		if !slices.Equal(direct, viaPeak) || !slices.Equal(direct, viaZigzag) {
			t.Errorf("mirrored=%v: paths to 30 disagree (filled %d, %d, %d)",
				mirrored, direct.filled(), viaPeak.filled(), viaZigzag.filled())
		}
		if direct.filled() != 30 {
			t.Errorf("mirrored=%v: filled = %d, want 30", mirrored, direct.filled())
		}
	}
}

// TestFillEngine_MirroredToMinimum drives a reversed bar through the forced
// boundary pixels and back to the minimum: nothing may stay lit.
func TestFillEngine_MirroredToMinimum(t *testing.T) {
	r, _ := NewRange(-40, 130)
	for _, length := range []int{1, 2, 96, 176} {
		e := NewFillEngine(length, 2, length+4, true)
		l := make(line, length+4)
		prev := r.Min
		for _, v := range []float64{-39, -40, -39.5, 129.9, 130, -39, -40} {
			l.apply(e.ComputeFillUpdate(r.RatioOf(prev), r.RatioOf(v)))
			prev = v
		}
		if got := l.filled(); got != 0 {
			t.Errorf("length %d: %d pixels lit at minimum, want 0", length, got)
		}
	}
}

func TestFillEngine_RandomSequencesMatchExtent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, mirrored := range []bool{false, true} {
		e := NewFillEngine(50, 1, 52, mirrored)
		l := make(line, 52)
		old := 0.0
		for i := 0; i < 500; i++ {
			next := rng.Float64()
			l.apply(e.ComputeFillUpdate(old, next))
			if got, want := l.filled(), e.Extent(next); got != want {
				t.Fatalf("mirrored=%v step %d: filled %d, want %d", mirrored, i, got, want)
			}
			old = next
		}
	}
}

// TestFillEngine_BoundaryFollowsValue covers values next to a bound whose
// ratio rounds onto the bound itself.
func TestFillEngine_BoundaryFollowsValue(t *testing.T) {
	nearMax, _ := NewRange(-1, 1)
	tiny, _ := NewRange(0, 1e300)

	tests := []struct {
		name  string
		rng   Range
		value float64
		ratio float64
		want  int
	}{
		{"below maximum rounding to 1", nearMax, math.Nextafter(1, 0), 1, 175},
		{"above minimum underflowing to 0", tiny, 1e-300, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rng.RatioOf(tt.value); got != tt.ratio {
				t.Fatalf("RatioOf(%g) = %g, want %g", tt.value, got, tt.ratio)
			}
			for _, mirrored := range []bool{false, true} {
				e := NewFillEngine(176, 2, 180, mirrored)
				if got := e.ExtentOf(tt.rng.Sample(tt.value)); got != tt.want {
					t.Errorf("mirrored=%v: ExtentOf = %d, want %d", mirrored, got, tt.want)
				}

				l := make(line, 180)
				l.apply(e.Update(tt.rng.Sample(tt.rng.Min), tt.rng.Sample(tt.value)))
				if got := l.filled(); got != tt.want {
					t.Errorf("mirrored=%v: filled %d after update, want %d", mirrored, got, tt.want)
				}
			}
		})
	}
}

func TestFillEngine_ShrinkOffMaximumWithEqualRatios(t *testing.T) {
	r, _ := NewRange(-1, 1)
	below := math.Nextafter(1, 0)
	for _, mirrored := range []bool{false, true} {
		e := NewFillEngine(176, 2, 180, mirrored)
		l := make(line, 180)
		l.apply(e.Update(r.Sample(r.Min), r.Sample(r.Max)))
		u := e.Update(r.Sample(r.Max), r.Sample(below))
		if u.Len() != 1 || u.Index != IndexBackground {
			t.Errorf("mirrored=%v: update = %+v, want one background line", mirrored, u)
		}
		l.apply(u)
		if got := l.filled(); got != 175 {
			t.Errorf("mirrored=%v: filled = %d, want 175", mirrored, got)
		}
		l.apply(e.Update(r.Sample(below), r.Sample(r.Min)))
		if got := l.filled(); got != 0 {
			t.Errorf("mirrored=%v: filled = %d at minimum, want 0", mirrored, got)
		}
	}
}

func TestRatioSample(t *testing.T) {
	tests := []struct {
		ratio    float64
		aboveMin bool
		belowMax bool
	}{
		{0, false, true},
		{0.5, true, true},
		{1, true, false},
		{math.NaN(), false, false},
	}
	for _, tt := range tests {
		s := RatioSample(tt.ratio)
		if s.AboveMin != tt.aboveMin || s.BelowMax != tt.belowMax {
			t.Errorf("RatioSample(%g) = %+v", tt.ratio, s)
		}
	}
}
