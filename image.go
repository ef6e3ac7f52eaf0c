// SPDX-License-Identifier: Unlicense OR MIT

package rating

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"gioui.org/op/paint"
	"golang.org/x/exp/shiny/iconvg"
	_ "golang.org/x/image/webp"
)

// IconImage rasterizes IconVG data to an image size pixels wide, in
// color c.
func IconImage(data []byte, size int, c color.NRGBA) (paint.ImageOp, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return paint.ImageOp{}, fmt.Errorf("rating: icon: %w", err)
	}
	if size <= 0 {
		return paint.ImageOp{}, fmt.Errorf("rating: icon: invalid size %d", size)
	}
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: size, Y: int(float32(size) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBAModel.Convert(c).(color.RGBA)
	if err := iconvg.Decode(&ico, data, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	}); err != nil {
		return paint.ImageOp{}, fmt.Errorf("rating: icon: %w", err)
	}
	return paint.NewImageOp(img), nil
}

// DecodeImage decodes a PNG, JPEG, GIF or WebP image.
func DecodeImage(r io.Reader) (paint.ImageOp, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return paint.ImageOp{}, fmt.Errorf("rating: decode image: %w", err)
	}
	return paint.NewImageOp(img), nil
}
