package scroll

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Style controls how the visible prefix is stroked
type Style struct {
	Width float64
	Color color.Color
}

// DefaultStyle is a white 4 unit round-capped stroke
var DefaultStyle = Style{Width: 4, Color: color.White}

// Render strokes the first visible units of p into a width x height image.
// The path's viewBox is fitted into the image keeping its aspect ratio.
func Render(p *Path, visible float64, width, height int, style Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	prefix := p.Prefix(visible)
	if len(prefix) == 0 {
		return img
	}

	fit := fitViewBox(p.ViewBox, width, height)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	d := rasterx.NewDasher(width, height, scanner)
	d.SetStroke(fixed.Int26_6(style.Width*fit.scale*64), 4*64,
		rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
	d.SetColor(style.Color)

	for _, sub := range prefix {
		if len(sub) < 2 {
			continue
		}
		d.Start(fit.apply(sub[0]))
		for _, pt := range sub[1:] {
			d.Line(fit.apply(pt))
		}
		d.Stop(false)
	}
	d.Draw()
	return img
}

// viewFit maps user units to image pixels
type viewFit struct {
	scale  float64
	dx, dy float64
}

func fitViewBox(vb ViewBox, width, height int) viewFit {
	scale := math.Min(float64(width)/vb.W, float64(height)/vb.H)
	return viewFit{
		scale: scale,
		dx:    (float64(width)-vb.W*scale)/2 - vb.X*scale,
		dy:    (float64(height)-vb.H*scale)/2 - vb.Y*scale,
	}
}

func (f viewFit) apply(p Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6((p.X*f.scale + f.dx) * 64),
		Y: fixed.Int26_6((p.Y*f.scale + f.dy) * 64),
	}
}

// SavePNG writes img to filename
func SavePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
