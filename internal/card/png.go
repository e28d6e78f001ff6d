package card

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterize parses an SVG document and scan-converts it to a PNG-encoded
// byte slice at the given scale factor (§4.7 "Scaling"). This is the
// CPU-bound step the card renderer is required to offload to a blocking
// worker pool rather than run inline.
func rasterize(svgDoc []byte, scale float64) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgDoc))
	if err != nil {
		return nil, fmt.Errorf("card: parse svg: %w", err)
	}

	w := int(float64(icon.ViewBox.W) * scale)
	h := int(float64(icon.ViewBox.H) * scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("card: degenerate raster size %dx%d", w, h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	out := new(bytes.Buffer)
	if err := png.Encode(out, img); err != nil {
		return nil, fmt.Errorf("card: encode png: %w", err)
	}
	return out.Bytes(), nil
}
