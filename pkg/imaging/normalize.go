// Package imaging prepares uploaded photos for the recognition pipeline:
// decode, force RGB, resize to the model input size.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// TargetSize is the square model input dimension.
const TargetSize = 224

// Normalize decodes an uploaded image and scales it to a TargetSize x
// TargetSize RGBA buffer.
func Normalize(data []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, TargetSize, TargetSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
