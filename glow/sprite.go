// Package glow rasterises the soft halo drawn behind particles.
package glow

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed glow.svg
var haloSVG []byte

var (
	mu      sync.Mutex
	sprites = map[int]*image.RGBA{}
)

// Sprite returns a size x size white halo whose alpha falls off from the
// centre to the edge. Sprites are cached per size.
func Sprite(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glow: invalid sprite size %d", size)
	}

	mu.Lock()
	defer mu.Unlock()

	if img, ok := sprites[size]; ok {
		return img, nil
	}
	img, err := svgToImage(haloSVG, size, size)
	if err != nil {
		return nil, fmt.Errorf("glow: rasterise halo: %w", err)
	}
	sprites[size] = img
	return img, nil
}

// svgToImage converts SVG data to an RGBA image
func svgToImage(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	return img, nil
}
