package trace

import "image"

// FromImage converts a decoded image.Image into the [][]Color pixel buffer
// the core pipeline consumes, plus its width and height. This is the one
// seam between the core and the decode collaborator (spec §1/§6): decoding
// itself happens elsewhere (image/png in the CLI), this just normalizes
// whatever color model the decoder produced into plain 8-bit RGBA.
//
// Adapted from the teacher's ToNRGBA (pkg/stdimg/imgutils.go): convert via
// the image.Color.RGBA() 16-bit-per-channel values, right-shifted to 8 bits.
func FromImage(img image.Image) (pixels [][]Color, width, height int) {
	b := img.Bounds()
	width = b.Dx()
	height = b.Dy()

	pixels = make([][]Color, height)
	for y := 0; y < height; y++ {
		row := make([]Color, width)
		for x := 0; x < width; x++ {
			r, g, bch, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bch >> 8), A: uint8(a >> 8)}
		}
		pixels[y] = row
	}
	return pixels, width, height
}
