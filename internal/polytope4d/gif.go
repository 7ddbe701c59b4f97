package polytope4d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
)

// gammaLUT maps an 8-bit channel through 1/gamma.
func gammaLUT(gamma Real) [256]uint8 {
	var lut [256]uint8
	for i := range lut {
		n := Real(i) / 255
		if gamma != 1 && gamma > 0 {
			n = math.Pow(n, 1.0/gamma)
		}
		lut[i] = uint8(math.Round(n * 255))
	}
	return lut
}

// SaveAnimatedGIF writes one GIF frame per image, looping forever.
// delay is in 100ths of a second (e.g., 5 => 20 fps); gamma < 1 darkens,
// > 1 brightens.
func SaveAnimatedGIF(frames []*image.RGBA, path string, delay int, gamma Real) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to write to %s", path)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	lut := gammaLUT(gamma)
	n := len(frames)
	for k, src := range frames {
		if k%max(1, n/100) == 0 {
			percent := Real(k+1) * 100 / Real(n)
			fmt.Printf("[GIF] %.2f%%\n", percent)
		}
		rgba := image.NewRGBA(src.Bounds())
		for i := 0; i < len(src.Pix); i += 4 {
			rgba.Pix[i+0] = lut[src.Pix[i+0]]
			rgba.Pix[i+1] = lut[src.Pix[i+1]]
			rgba.Pix[i+2] = lut[src.Pix[i+2]]
			rgba.Pix[i+3] = 255
		}
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
