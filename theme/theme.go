// SPDX-License-Identifier: Unlicense OR MIT

// Package theme provides rating configurations and labels in the
// Material Design style of gioui.org/widget/material.
package theme

import (
	"fmt"
	"image/color"
	"strconv"

	"gioui.org/widget/material"
	"gioui.org/x/rating"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// Stars returns a Config of star icons size pixels wide. Empty stars
// are outlined in the theme foreground, the average is filled with the
// foreground and chosen stars use the contrast background.
func Stars(th *material.Theme, size int) (rating.Config, error) {
	return iconConfig(th, size, icons.ToggleStarBorder, icons.ToggleStar)
}

// Hearts is like Stars with heart icons.
func Hearts(th *material.Theme, size int) (rating.Config, error) {
	return iconConfig(th, size, icons.ActionFavoriteBorder, icons.ActionFavorite)
}

func iconConfig(th *material.Theme, size int, outline, solid []byte) (rating.Config, error) {
	empty, err := rating.IconImage(outline, size, th.Palette.Fg)
	if err != nil {
		return rating.Config{}, err
	}
	filled, err := rating.IconImage(solid, size, th.Palette.Fg)
	if err != nil {
		return rating.Config{}, err
	}
	chosen, err := rating.IconImage(solid, size, th.Palette.ContrastBg)
	if err != nil {
		return rating.Config{}, err
	}
	return rating.NewConfig(empty, filled, chosen), nil
}

// Summary returns a body label describing the state of s.
func Summary(th *material.Theme, s *rating.Scale) material.LabelStyle {
	l := material.Body1(th, summary(s))
	if _, ok := s.Chosen(); ok {
		l.Color = th.Palette.ContrastBg
	} else {
		l.Color = mulAlpha(th.Palette.Fg, 0xbb)
	}
	return l
}

func summary(s *rating.Scale) string {
	n := s.Config().ScaleSize
	if r, ok := s.Chosen(); ok {
		return fmt.Sprintf("You chose %d of %d", r, n)
	}
	avg := strconv.FormatFloat(float64(s.Average()), 'f', -1, 32)
	return fmt.Sprintf("%s of %d", avg, n)
}

func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}
