// SPDX-License-Identifier: Unlicense OR MIT

package rating_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"gioui.org/x/rating"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

func TestIconImage(t *testing.T) {
	img, err := rating.IconImage(icons.ToggleStar, 24, color.NRGBA{R: 0xff, A: 0xff})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Size(), image.Pt(24, 24); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

func TestIconImageErrors(t *testing.T) {
	if _, err := rating.IconImage([]byte("not iconvg"), 24, color.NRGBA{}); err == nil {
		t.Error("invalid data: expected error")
	}
	if _, err := rating.IconImage(icons.ToggleStar, 0, color.NRGBA{}); err == nil {
		t.Error("zero size: expected error")
	}
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 7, 3))); err != nil {
		t.Fatal(err)
	}
	img, err := rating.DecodeImage(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Size(), image.Pt(7, 3); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}

	_, err = rating.DecodeImage(strings.NewReader("garbage"))
	if err == nil || !strings.HasPrefix(err.Error(), "rating:") {
		t.Errorf("garbage input: got error %v", err)
	}
}
