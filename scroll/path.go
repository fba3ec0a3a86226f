package scroll

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// curveSteps is how many segments a Bézier curve is flattened into
const curveSteps = 16

// Point is a position in SVG user units
type Point struct {
	X, Y float64
}

// ViewBox is the SVG user-space rectangle the path was drawn in
type ViewBox struct {
	X, Y, W, H float64
}

// Path is an SVG path flattened into polylines, one per subpath
type Path struct {
	Subpaths [][]Point
	ViewBox  ViewBox

	length float64
}

// LoadPath parses an SVG document and flattens its first path.
// Transforms on the path or its groups are not applied.
func LoadPath(r io.Reader) (*Path, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	if len(icon.SVGPaths) == 0 {
		return nil, errors.New("svg has no path")
	}

	f := &flattener{}
	icon.SVGPaths[0].Path.AddTo(f)
	f.flush()

	p := &Path{
		Subpaths: f.subpaths,
		ViewBox:  ViewBox{X: icon.ViewBox.X, Y: icon.ViewBox.Y, W: icon.ViewBox.W, H: icon.ViewBox.H},
	}
	if p.ViewBox.W <= 0 || p.ViewBox.H <= 0 {
		p.ViewBox = p.bounds()
	}
	for _, sub := range p.Subpaths {
		p.length += polylineLength(sub)
	}
	return p, nil
}

// Length returns the total length of every subpath
func (p *Path) Length() float64 {
	return p.length
}

// Prefix returns the polylines covering the first n units of the path
func (p *Path) Prefix(n float64) [][]Point {
	if n <= 0 {
		return nil
	}

	out := make([][]Point, 0, len(p.Subpaths))
	remaining := n
	for _, sub := range p.Subpaths {
		if len(sub) == 0 {
			continue
		}
		kept := []Point{sub[0]}
		for i := 1; i < len(sub); i++ {
			seg := distance(sub[i-1], sub[i])
			if seg >= remaining {
				kept = append(kept, lerp(sub[i-1], sub[i], remaining/seg))
				return append(out, kept)
			}
			remaining -= seg
			kept = append(kept, sub[i])
		}
		out = append(out, kept)
	}
	return out
}

func (p *Path) bounds() ViewBox {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sub := range p.Subpaths {
		for _, pt := range sub {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return ViewBox{W: 1, H: 1}
	}
	return ViewBox{X: minX, Y: minY, W: math.Max(maxX-minX, 1), H: math.Max(maxY-minY, 1)}
}

// flattener is a rasterx.Adder that records straight segments
type flattener struct {
	subpaths [][]Point
	current  []Point
}

func (f *flattener) Start(a fixed.Point26_6) {
	f.flush()
	f.current = []Point{fromFixed(a)}
}

func (f *flattener) Line(b fixed.Point26_6) {
	f.current = append(f.current, fromFixed(b))
}

func (f *flattener) QuadBezier(b, c fixed.Point26_6) {
	p0, p1, p2 := f.last(), fromFixed(b), fromFixed(c)
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		f.current = append(f.current, Point{
			X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
		})
	}
}

func (f *flattener) CubeBezier(b, c, d fixed.Point26_6) {
	p0, p1, p2, p3 := f.last(), fromFixed(b), fromFixed(c), fromFixed(d)
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		f.current = append(f.current, Point{
			X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
		})
	}
}

func (f *flattener) Stop(closeLoop bool) {
	if closeLoop && len(f.current) > 1 {
		f.current = append(f.current, f.current[0])
	}
	f.flush()
}

func (f *flattener) last() Point {
	if len(f.current) == 0 {
		f.current = []Point{{}}
	}
	return f.current[len(f.current)-1]
}

func (f *flattener) flush() {
	if len(f.current) > 1 {
		f.subpaths = append(f.subpaths, f.current)
	}
	f.current = nil
}

var _ rasterx.Adder = (*flattener)(nil)

func fromFixed(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

func polylineLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += distance(pts[i-1], pts[i])
	}
	return total
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
