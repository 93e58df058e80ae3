// Package images normalises uploaded images before they are stored.
package images

import (
	"bytes"
	"image"
	"image/png"

	// image.Decode expects decoders to be registered in the global image
	// package. Register the formats we accept via their import side effects.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// maxEdge is the longest edge, in pixels, an uploaded image keeps.
const maxEdge = 1024

// Normalise decodes data as an image and bounds it to maxEdge pixels on its
// long edge, re-encoding as PNG. It returns the encoded bytes and ".png".
// If the bytes do not decode as a supported image they are returned
// unchanged with an empty extension; normalisation is best effort and never
// rejects an upload.
func Normalise(data []byte) ([]byte, string) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, ""
	}
	bounds := img.Bounds()
	if bounds.Dx() > maxEdge || bounds.Dy() > maxEdge {
		img = resize.Thumbnail(maxEdge, maxEdge, img, resize.Lanczos3)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return data, ""
	}
	return buf.Bytes(), ".png"
}
