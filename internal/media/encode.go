package media

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// JPEGQuality - качество кодирования кадров видео
const JPEGQuality = 70

// EncodeFrame уменьшает кадр вдвое по каждой стороне и кодирует его в JPEG
func EncodeFrame(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width := max(bounds.Dx()/2, 1)
	height := max(bounds.Dy()/2, 1)

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}
