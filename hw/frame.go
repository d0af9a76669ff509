package hw

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"nescore/hw/hwdefs"
)

const (
	frameWidth  = hwdefs.NTSCWidth
	frameHeight = hwdefs.NTSCHeight
)

// Frame is a rendered picture: one 2C02 palette index (0-63) per pixel.
//
// Frame implements image.Image, converting indices with the NES palette, so
// it can be passed to image encoders as is.
type Frame struct {
	Pix [frameWidth * frameHeight]uint8
}

// Index returns the palette index of the pixel at (x, y).
func (f *Frame) Index(x, y int) uint8 {
	return f.Pix[y*frameWidth+x]
}

func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, frameWidth, frameHeight)
}

func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	return Colors[f.Index(x, y)&0x3F]
}

// RGBA converts the frame to an RGBA image.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for i, idx := range f.Pix {
		c := Colors[idx&0x3F]
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}

// SaveAsPNG encodes img as a PNG file at path.
func SaveAsPNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
