package main

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"
)

// previewCols/previewRows bound the terminal texture preview's cell grid
// (spec.md §6 --print-textures), matching the teacher's terminal character
// grid sizing convention in video_terminal.go.
const (
	previewCols = 32
	previewRows = 16
)

// PrintTexturePreview renders a coarse terminal preview of the texture
// currently bound to tile idx: each byte of the tile's TMEM area is drawn as
// a grey level taken from the coarse TMEM occupancy shadow (black where no
// tile owns the byte, brighter for higher owning-tile indices). Texel data
// is not decoded — pixel-exact texel reproduction is an explicit non-goal.
// The image is scaled with golang.org/x/image/draw into a fixed character
// grid, printed as 24-bit ANSI grayscale blocks.
func PrintTexturePreview(out io.Writer, tiles *TileTable, idx int) {
	if idx < 0 || idx >= numTiles {
		return
	}
	td := tiles.Tiles[idx]
	if !td.set {
		return
	}

	w := int((td.LRS-td.ULS)>>2) + 1
	h := int((td.LRT-td.ULT)>>2) + 1
	if w <= 0 || h <= 0 {
		return
	}

	src := image.NewGray(image.Rect(0, 0, w, h))
	start := int(td.Tmem) * 8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := start + y*w + x
			var v byte
			if off >= 0 && off < tmemSize && tiles.tmem[off] >= 0 {
				v = byte(128 + 16*tiles.tmem[off])
			}
			src.SetGray(x, y, color.Gray{Y: v})
		}
	}

	dst := image.NewGray(image.Rect(0, 0, previewCols, previewRows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	fmt.Fprintf(out, "texture preview, tile %d (%dx%d source):\n", idx, w, h)
	for y := 0; y < previewRows; y++ {
		for x := 0; x < previewCols; x++ {
			v := dst.GrayAt(x, y).Y
			fmt.Fprintf(out, "\033[38;2;%d;%d;%dm█\033[0m", v, v, v)
		}
		fmt.Fprintln(out)
	}
}
