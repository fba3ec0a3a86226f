package scroll

import (
	"bytes"
	_ "embed"
)

//go:embed wave.svg
var waveSVG []byte

// DefaultPath returns the built-in wave path
func DefaultPath() (*Path, error) {
	return LoadPath(bytes.NewReader(waveSVG))
}
