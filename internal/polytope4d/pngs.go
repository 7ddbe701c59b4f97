package polytope4d

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNGSequence16 writes frame k to prefix_k.png (zero padded) as a
// 16 bit per channel PNG, after gamma.
func SavePNGSequence16(frames []*image.RGBA, prefix string, gamma Real) error {
	toU16 := func(c uint8) uint16 {
		n := Real(c) / 255
		if gamma != 1 && gamma > 0 {
			n = math.Pow(n, 1.0/gamma)
		}
		return uint16(math.Round(n * 65535.0))
	}

	n := len(frames)
	width := 1
	if n > 1 {
		width = int(math.Log10(Real(n-1))) + 1
	}
	step := 1
	if n >= 100 {
		step = n / 100
	}

	for k, src := range frames {
		if k%step == 0 {
			percent := Real(k+1) * 100 / Real(n)
			fmt.Printf("[PNG]  %.2f%%\n", percent)
		}
		b := src.Bounds()
		img := image.NewNRGBA64(b)
		for y := 0; y < b.Dy(); y++ {
			so := y * src.Stride
			do := y * img.Stride
			for x := 0; x < b.Dx(); x++ {
				s := so + x*4
				d := do + x*8
				for ch := 0; ch < 3; ch++ {
					v := toU16(src.Pix[s+ch])
					img.Pix[d+2*ch] = uint8(v >> 8)
					img.Pix[d+2*ch+1] = uint8(v)
				}
				img.Pix[d+6] = 0xff
				img.Pix[d+7] = 0xff
			}
		}

		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return err
		}
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
