package render

import (
	"image/color"

	"torus-life/internal/core"
)

// FillRGBA converts the board into RGBA pixels in buf, one pixel per cell in
// row-major order. buf must hold 4*rows*cols bytes.
func FillRGBA(buf []byte, b core.Board, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	size := b.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			base := (r*size.Cols + c) * 4
			if b.Alive(r, c) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
