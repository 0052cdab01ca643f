package main

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/progressbar"
	"github.com/gogpu/progressbar/internal/config"
	"github.com/gogpu/progressbar/surface"
)

// placed is a bar together with the surface it owns.
type placed struct {
	bar *progressbar.Bar
	src *surface.Indexed
}

func (p placed) bounds() image.Rectangle {
	return p.src.Bounds().Add(p.bar.Position())
}

// display composes bars over a solid background.
type display struct {
	bg     *image.Uniform
	frame  *image.RGBA
	bars   []placed
	byName map[string]*progressbar.Bar
}

func newDisplay(s *config.Scenario) (*display, error) {
	bg, err := config.ParseColor(s.Display.Background, color.Black)
	if err != nil {
		return nil, err
	}
	if bg == nil {
		bg = color.Transparent
	}
	bars, err := s.BuildAll()
	if err != nil {
		return nil, err
	}

	d := &display{
		bg:     image.NewUniform(bg),
		frame:  image.NewRGBA(image.Rect(0, 0, s.Display.Width, s.Display.Height)),
		byName: make(map[string]*progressbar.Bar, len(bars)),
	}
	for _, b := range bars {
		src, ok := b.Surface().(*surface.Indexed)
		if !ok {
			return nil, fmt.Errorf("bar %q does not own an indexed surface", b.Name())
		}
		d.bars = append(d.bars, placed{bar: b, src: src})
		d.byName[b.Name()] = b
	}

	xdraw.Draw(d.frame, d.frame.Bounds(), d.bg, image.Point{}, xdraw.Src)
	d.refresh()
	return d, nil
}

// apply assigns every value of a step. Rejected values are reported but do
// not stop the remaining assignments.
func (d *display) apply(step config.Step) error {
	var first error
	for _, a := range step.Set {
		if err := d.byName[a.Bar].SetValue(a.Value); err != nil && first == nil {
			first = fmt.Errorf("bar %q: %w", a.Bar, err)
		}
	}
	return first
}

// refresh redraws the bars that changed since the last refresh and returns
// the changed display rectangles.
func (d *display) refresh() []image.Rectangle {
	var changed []image.Rectangle
	for _, p := range d.bars {
		if p.src.Dirty().Empty() {
			continue
		}
		r := p.bounds()
		xdraw.Draw(d.frame, r, d.bg, image.Point{}, xdraw.Src)
		p.src.Draw(d.frame, r.Min)
		changed = append(changed, p.src.Dirty().Add(r.Min))
		p.src.ClearDirty()
	}
	return changed
}
