// SPDX-License-Identifier: Unlicense OR MIT

package rating

import (
	"image"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

// Item is the state of one position of a Scale. Items are owned by
// their Scale, which updates them on every layout.
type Item struct {
	// StarRating is the rating the item represents, starting at 1.
	StarRating int
	// PercentFilled is the fraction of the filled image to reveal.
	// Values at or below 0 draw the item empty, values at or above 1
	// draw it completely filled.
	PercentFilled float32
	// Chosen draws the item with the chosen image only.
	Chosen bool
	// Bounds is the area of the item relative to its Scale.
	Bounds image.Rectangle
}

// Layout draws the item to fill the maximum constraints. The images
// are centered and scaled down to fit when they exceed the item.
func (it Item) Layout(gtx layout.Context, cfg *Config) layout.Dimensions {
	size := gtx.Constraints.Max
	gtx.Constraints = layout.Exact(size)
	scale := cfg.imageScale()
	chosen, empty, filled := it.layers(gtx, cfg)
	if chosen {
		drawImage(gtx, cfg.Chosen, scale)
	}
	if empty {
		drawImage(gtx, cfg.Empty, scale)
	}
	if filled >= 0 {
		defer clip.Rect{Max: image.Pt(filled, size.Y)}.Push(gtx.Ops).Pop()
		drawImage(gtx, cfg.Filled, scale)
	}
	return layout.Dimensions{Size: size}
}

// layers returns the layers to draw for an item filling the maximum
// constraints: whether to draw the chosen and empty images, and the
// width of the filled image to reveal, or -1 to hide it.
func (it Item) layers(gtx layout.Context, cfg *Config) (chosen, empty bool, filled int) {
	size := gtx.Constraints.Max
	switch {
	case it.Chosen:
		return true, false, -1
	case it.PercentFilled <= 0:
		return false, true, -1
	case it.PercentFilled >= 1:
		return false, true, size.X
	}
	iw := imageSize(gtx, cfg.Filled, cfg.imageScale()).X
	w := revealWidth(float32(size.X), float32(iw), it.PercentFilled)
	return false, true, int(math.Round(float64(w)))
}

// revealWidth returns the width of the filled image to show for a
// container of width cw, an image of width iw and the fraction p. An
// image narrower than its container is centered, so the reveal starts
// at its left margin instead of the container edge.
func revealWidth(cw, iw, p float32) float32 {
	if iw < cw {
		return (cw-iw)/2 + iw*p
	}
	return cw * p
}

// imageSize returns the unscaled size in pixels of src, the way
// widget.Image computes it.
func imageSize(gtx layout.Context, src paint.ImageOp, scale float32) image.Point {
	sz := src.Size()
	return image.Point{
		X: gtx.Dp(unit.Dp(float32(sz.X) * scale)),
		Y: gtx.Dp(unit.Dp(float32(sz.Y) * scale)),
	}
}

func drawImage(gtx layout.Context, src paint.ImageOp, scale float32) {
	if src.Size() == (image.Point{}) {
		return
	}
	widget.Image{
		Src:      src,
		Fit:      widget.ScaleDown,
		Position: layout.Center,
		Scale:    scale,
	}.Layout(gtx)
}
