// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image"
	"testing"

	"gioui.org/widget/material"
	"gioui.org/x/rating"
)

func TestStars(t *testing.T) {
	th := material.NewTheme()
	for name, config := range map[string]func(*material.Theme, int) (rating.Config, error){
		"stars":  Stars,
		"hearts": Hearts,
	} {
		cfg, err := config(th, 32)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg.ScaleSize != rating.DefaultScaleSize {
			t.Errorf("%s: ScaleSize = %d, want %d", name, cfg.ScaleSize, rating.DefaultScaleSize)
		}
		for _, img := range []struct {
			name string
			size image.Point
		}{
			{"empty", cfg.Empty.Size()},
			{"filled", cfg.Filled.Size()},
			{"chosen", cfg.Chosen.Size()},
		} {
			if want := image.Pt(32, 32); img.size != want {
				t.Errorf("%s: %s image size = %v, want %v", name, img.name, img.size, want)
			}
		}
	}
	if _, err := Stars(th, 0); err == nil {
		t.Error("zero size: expected error")
	}
}

func TestSummary(t *testing.T) {
	th := material.NewTheme()
	cfg, err := Stars(th, 16)
	if err != nil {
		t.Fatal(err)
	}
	s := rating.NewScale(cfg, 3.5)
	if got, want := Summary(th, s).Text, "3.5 of 5"; got != want {
		t.Errorf("average summary = %q, want %q", got, want)
	}
	for avg, want := range map[float32]string{
		3.25: "3.25 of 5",
		3.75: "3.75 of 5",
		4:    "4 of 5",
	} {
		s.SetAverage(avg)
		if got := Summary(th, s).Text; got != want {
			t.Errorf("average %v summary = %q, want %q", avg, got, want)
		}
	}
	s.SetChosen(2)
	l := Summary(th, s)
	if got, want := l.Text, "You chose 2 of 5"; got != want {
		t.Errorf("chosen summary = %q, want %q", got, want)
	}
	if l.Color != th.Palette.ContrastBg {
		t.Errorf("chosen summary color = %v, want %v", l.Color, th.Palette.ContrastBg)
	}
}
