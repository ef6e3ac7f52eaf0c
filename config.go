// SPDX-License-Identifier: Unlicense OR MIT

package rating

import (
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// DefaultScaleSize is the number of items in a scale created by
// NewConfig.
const DefaultScaleSize = 5

// Config describes the images and geometry of a Scale. A Scale copies
// its Config at construction; later changes have no effect on it.
type Config struct {
	// Empty is drawn for items that are neither chosen nor filled. Its
	// aspect ratio determines the size of every item.
	Empty paint.ImageOp
	// Filled is revealed from the left in proportion to the average
	// rating.
	Filled paint.ImageOp
	// Chosen replaces the other images for items at or below the
	// chosen rating.
	Chosen paint.ImageOp
	// ItemPadding is the space around each item.
	ItemPadding unit.Dp
	// ScaleSize is the number of items in the scale.
	ScaleSize int
	// ImageScale is the ratio of image pixels to dps. If zero, one
	// image pixel maps to one dp.
	ImageScale float32
}

// NewConfig returns a Config for a scale of DefaultScaleSize items and
// no padding.
func NewConfig(empty, filled, chosen paint.ImageOp) Config {
	return Config{
		Empty:     empty,
		Filled:    filled,
		Chosen:    chosen,
		ScaleSize: DefaultScaleSize,
	}
}

func (c *Config) imageScale() float32 {
	if c.ImageScale == 0 {
		return 1
	}
	return c.ImageScale
}
