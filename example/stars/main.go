// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that demonstrates the rating scale. Run with -empty,
// -filled and -chosen to use images from files instead of icons.

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/x/rating"
	"gioui.org/x/rating/theme"
)

var (
	emptyFile  = flag.String("empty", "", "image file for empty items")
	filledFile = flag.String("filled", "", "image file for the filled average")
	chosenFile = flag.String("chosen", "", "image file for chosen items")
	iconSet    = flag.String("icons", "stars", "icon set when no image files are given (stars or hearts)")
	scaleSize  = flag.Int("size", rating.DefaultScaleSize, "number of items")
	padding    = flag.Float64("padding", 4, "item padding in dp")
	average    = flag.Float64("average", 3.5, "initial average rating")
	height     = flag.Float64("height", 64, "scale height in dp")
)

func main() {
	flag.Parse()
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Rating"), app.Size(unit.Dp(480), unit.Dp(240)))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	cfg, err := loadConfig(th)
	if err != nil {
		return err
	}
	cfg.ScaleSize = *scaleSize
	cfg.ItemPadding = unit.Dp(*padding)

	scale := rating.NewScale(cfg, float32(*average))
	scale.OnChange(func(s *rating.Scale) {
		if r, ok := s.Chosen(); ok {
			log.Printf("chosen rating: %d", r)
		} else {
			log.Print("chosen rating cleared")
		}
	})

	var (
		ops       op.Ops
		clearBtn  widget.Clickable
		randomBtn widget.Clickable
	)
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if clearBtn.Clicked(gtx) {
				scale.ClearChosen()
			}
			if randomBtn.Clicked(gtx) {
				scale.SetAverage(rand.Float32() * float32(cfg.ScaleSize))
			}
			layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(*height))
						gtx.Constraints.Min = gtx.Constraints.Max
						return scale.Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
					layout.Rigid(theme.Summary(th, scale).Layout),
					layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{}.Layout(gtx,
							layout.Rigid(material.Button(th, &clearBtn, "Clear").Layout),
							layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
							layout.Rigid(material.Button(th, &randomBtn, "Random average").Layout),
						)
					}),
				)
			})
			e.Frame(gtx.Ops)
		}
	}
}

// loadConfig reads the item images from the image flags, or uses an
// icon set if none are given.
func loadConfig(th *material.Theme) (rating.Config, error) {
	if *emptyFile == "" && *filledFile == "" && *chosenFile == "" {
		const iconSize = 128
		switch *iconSet {
		case "stars":
			return theme.Stars(th, iconSize)
		case "hearts":
			return theme.Hearts(th, iconSize)
		default:
			return rating.Config{}, errors.New("unknown icon set: " + *iconSet)
		}
	}
	if *emptyFile == "" || *filledFile == "" || *chosenFile == "" {
		return rating.Config{}, errors.New("-empty, -filled and -chosen must be given together")
	}
	empty, err := openImage(*emptyFile)
	if err != nil {
		return rating.Config{}, err
	}
	filled, err := openImage(*filledFile)
	if err != nil {
		return rating.Config{}, err
	}
	chosen, err := openImage(*chosenFile)
	if err != nil {
		return rating.Config{}, err
	}
	return rating.NewConfig(empty, filled, chosen), nil
}

func openImage(path string) (paint.ImageOp, error) {
	f, err := os.Open(path)
	if err != nil {
		return paint.ImageOp{}, err
	}
	defer f.Close()
	return rating.DecodeImage(f)
}
