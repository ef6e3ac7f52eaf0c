// SPDX-License-Identifier: Unlicense OR MIT

package rating

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Scale is a row of rating items. It displays the chosen rating when
// one is present and the average rating otherwise, and lets the user
// choose a rating by pressing or dragging across the items.
type Scale struct {
	cfg   Config
	items []Item

	average   float32
	chosen    int
	hasChosen bool

	listeners []func(s *Scale)
	// assigned counts the assignments of the chosen rating.
	assigned int
	changed  bool

	// pressed holds the pointers that pressed inside the scale.
	pressed []pointer.ID
}

// NewScale returns a Scale of cfg.ScaleSize items displaying the
// average rating.
func NewScale(cfg Config, average float32) *Scale {
	n := cfg.ScaleSize
	if n < 0 {
		n = 0
	}
	s := &Scale{
		cfg:     cfg,
		items:   make([]Item, n),
		average: average,
	}
	for i := range s.items {
		s.items[i].StarRating = i + 1
	}
	return s
}

// Config returns the configuration of the scale.
func (s *Scale) Config() Config {
	return s.cfg
}

// Average returns the average rating.
func (s *Scale) Average() float32 {
	return s.average
}

// SetAverage sets the average rating. The average is displayed only
// while no rating is chosen.
func (s *Scale) SetAverage(r float32) {
	s.average = r
}

// Chosen returns the chosen rating and whether a rating is chosen. A
// chosen rating of zero means that the user chose no items, which is
// distinct from no choice.
func (s *Scale) Chosen() (int, bool) {
	return s.chosen, s.hasChosen
}

// SetChosen sets the chosen rating and notifies the OnChange
// listeners, even if r equals the current rating.
func (s *Scale) SetChosen(r int) {
	s.chosen, s.hasChosen = r, true
	s.notify()
}

// ClearChosen removes the chosen rating and notifies the OnChange
// listeners. The scale displays the average rating again.
func (s *Scale) ClearChosen() {
	s.chosen, s.hasChosen = 0, false
	s.notify()
}

// OnChange registers f to be called after every assignment of the
// chosen rating, in the order of registration.
func (s *Scale) OnChange(f func(s *Scale)) {
	s.listeners = append(s.listeners, f)
}

// Changed reports whether the chosen rating was assigned since the
// last call to Changed.
func (s *Scale) Changed() bool {
	changed := s.changed
	s.changed = false
	return changed
}

// Items returns a copy of the item state from the most recent
// layout.
func (s *Scale) Items() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Scale) notify() {
	s.assigned++
	s.changed = true
	for _, f := range s.listeners {
		f(s)
	}
}

// Update processes pointer events and reports whether the chosen
// rating was assigned. Of the presses processed by one call, only the
// first that lands on an item chooses its rating; the other pointers
// are still tracked and choose by dragging.
func (s *Scale) Update(gtx layout.Context) bool {
	assigned := s.assigned
	pressHit := false
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
				break
			}
			s.press(e.PointerID)
			if e.Source == pointer.Touch {
				gtx.Execute(pointer.GrabCmd{Tag: s, ID: e.PointerID})
			}
			if !pressHit {
				pressHit = s.choose(e.Position)
			}
		case pointer.Drag:
			if !s.isPressed(e.PointerID) {
				break
			}
			if s.choose(e.Position) {
				break
			}
			if r, ok := s.Chosen(); ok && r == 0 {
				break
			}
			if len(s.items) > 0 && e.Position.X < float32(s.items[0].Bounds.Min.X) {
				s.SetChosen(0)
			}
		case pointer.Release:
			s.release(e.PointerID)
		case pointer.Cancel:
			s.pressed = s.pressed[:0]
		}
	}
	return s.assigned != assigned
}

// choose chooses the rating of the first item containing p, unless
// it is already chosen. It reports whether an item contains p.
func (s *Scale) choose(p f32.Point) bool {
	for _, it := range s.items {
		if !contains(it.Bounds, p) {
			continue
		}
		if r, ok := s.Chosen(); !ok || r != it.StarRating {
			s.SetChosen(it.StarRating)
		}
		return true
	}
	return false
}

func (s *Scale) press(id pointer.ID) {
	if !s.isPressed(id) {
		s.pressed = append(s.pressed, id)
	}
}

func (s *Scale) release(id pointer.ID) {
	for i, p := range s.pressed {
		if p == id {
			s.pressed = append(s.pressed[:i], s.pressed[i+1:]...)
			return
		}
	}
}

func (s *Scale) isPressed(id pointer.ID) bool {
	for _, p := range s.pressed {
		if p == id {
			return true
		}
	}
	return false
}

// Layout processes events and draws the scale to fill the maximum
// constraints.
func (s *Scale) Layout(gtx layout.Context) layout.Dimensions {
	s.Update(gtx)
	size := gtx.Constraints.Max
	s.arrange(gtx, size)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, s)
	for _, it := range s.items {
		st := op.Offset(it.Bounds.Min).Push(gtx.Ops)
		igtx := gtx
		igtx.Constraints = layout.Exact(it.Bounds.Size())
		it.Layout(igtx, &s.cfg)
		st.Pop()
	}
	return layout.Dimensions{Size: size}
}

// arrange computes the bounds and display state of every item for a
// scale of the given size.
func (s *Scale) arrange(gtx layout.Context, size image.Point) {
	n := len(s.items)
	if n == 0 {
		return
	}
	pad := float32(gtx.Dp(s.cfg.ItemPadding))
	slotW := float32(size.X) / float32(n)
	slotH := float32(size.Y) - 2*pad
	icon := fitSize(imageSize(gtx, s.cfg.Empty, s.cfg.imageScale()), slotW-2*pad, slotH-2*pad)
	top := float32(size.Y)/2 - icon.Y/2
	isz := image.Pt(round(icon.X), round(icon.Y))
	for i := range s.items {
		it := &s.items[i]
		pos := image.Pt(round(float32(i)*slotW+pad), round(top))
		it.Bounds = image.Rectangle{Min: pos, Max: pos.Add(isz)}
		if s.hasChosen {
			it.Chosen = s.chosen > i
			it.PercentFilled = 0
		} else {
			it.Chosen = false
			it.PercentFilled = percentFilled(s.average, i)
		}
	}
}

// percentFilled returns the filled fraction of the item at index i
// for an average rating. Items above the average get zero or less.
func percentFilled(average float32, i int) float32 {
	if average-1 > float32(i) {
		return 1
	}
	return average - float32(i)
}

// fitSize scales sz to the largest size that fits within maxW and
// maxH while preserving its aspect ratio.
func fitSize(sz image.Point, maxW, maxH float32) f32.Point {
	if sz.X <= 0 || sz.Y <= 0 || maxW <= 0 || maxH <= 0 {
		return f32.Point{}
	}
	w, h := float32(sz.X), float32(sz.Y)
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	return f32.Pt(w*scale, h*scale)
}

func contains(r image.Rectangle, p f32.Point) bool {
	return float32(r.Min.X) <= p.X && p.X < float32(r.Max.X) &&
		float32(r.Min.Y) <= p.Y && p.Y < float32(r.Max.Y)
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
