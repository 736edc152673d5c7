// Package texture builds the procedural mip-mapped texture for the surface.
//
// Every mip level carries its own tint so the level transitions are visible
// on screen; that is the whole point of the texture.
package texture

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// DefaultSize is the base (level 0) texture size.
const DefaultSize = 256

// levelTints colors each mip level distinctly. Deeper levels than the table
// has entries wrap around.
var levelTints = [][3]uint8{
	{255, 255, 255}, // 0: untinted
	{120, 180, 255}, // 1: blue
	{120, 255, 160}, // 2: green
	{255, 235, 120}, // 3: yellow
	{255, 170, 110}, // 4: orange
	{255, 120, 140}, // 5: red
	{210, 130, 255}, // 6: purple
	{130, 240, 240}, // 7: cyan
}

// BuildMipChain generates the full mip pyramid for a square power-of-two
// base size, down to 1x1. Level 0 is a grid pattern; each deeper level is a
// bilinear downscale of its parent blended toward that level's tint.
func BuildMipChain(size int) ([]*image.RGBA, error) {
	if size < 1 || size&(size-1) != 0 {
		return nil, fmt.Errorf("mip chain base size must be a power of two, got %d", size)
	}

	base := basePattern(size)
	chain := []*image.RGBA{tinted(base, 0)}

	prev := base
	for s, level := size/2, 1; s >= 1; s, level = s/2, level+1 {
		img := image.NewRGBA(image.Rect(0, 0, s, s))
		draw.ApproxBiLinear.Scale(img, img.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		chain = append(chain, tinted(img, level))
		prev = img
	}

	return chain, nil
}

// basePattern paints the level-0 image: a light checkerboard with dark cell
// borders, so UV tiling and filtering are easy to judge.
func basePattern(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	cell := size / 8
	if cell < 1 {
		cell = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := x/cell, y/cell
			var c color.RGBA
			if (cx+cy)%2 == 0 {
				c = color.RGBA{230, 230, 230, 255}
			} else {
				c = color.RGBA{160, 160, 160, 255}
			}
			if x%cell == 0 || y%cell == 0 {
				c = color.RGBA{60, 60, 60, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// tinted blends an image toward the tint of the given mip level.
// Level 0 passes through as a copy.
func tinted(src *image.RGBA, level int) *image.RGBA {
	tint := levelTints[level%len(levelTints)]
	out := image.NewRGBA(src.Bounds())

	if level == 0 {
		copy(out.Pix, src.Pix)
		return out
	}

	// 50/50 blend keeps the pattern recognizable under the tint.
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i+0] = uint8((uint16(src.Pix[i+0]) + uint16(tint[0])) / 2)
		out.Pix[i+1] = uint8((uint16(src.Pix[i+1]) + uint16(tint[1])) / 2)
		out.Pix[i+2] = uint8((uint16(src.Pix[i+2]) + uint16(tint[2])) / 2)
		out.Pix[i+3] = 255
	}
	return out
}
