// Package imageio decodes image files into pixel buffers and encodes buffers
// back. It is the collaborator around the engine, not part of it: the engine
// itself only sees pixel.Buffer values.
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding supports
// PNG, JPEG, GIF, BMP and TIFF.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/katalvlaran/lvraster/pixel"
)

// ErrUnsupportedFormat indicates a format name or file extension with no encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format names.
const (
	PNG  = "png"
	JPEG = "jpeg"
	GIF  = "gif"
	BMP  = "bmp"
	TIFF = "tiff"
)

// DefaultJPEGQuality is used by Encode for JPEG output.
const DefaultJPEGQuality = 95

// Decode reads an image from r and converts it to a buffer in the given
// channel order. It also returns the format name reported by the decoder.
func Decode(r io.Reader, opts ...pixel.Option) (*pixel.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio.Decode: %w", err)
	}
	b, err := pixel.FromImage(img, opts...)
	if err != nil {
		return nil, format, fmt.Errorf("imageio.Decode: %w", err)
	}
	return b, format, nil
}

// Encode writes b to w in the named format.
func Encode(w io.Writer, b *pixel.Buffer, format string) error {
	img, err := b.ToImage()
	if err != nil {
		return fmt.Errorf("imageio.Encode: %w", err)
	}

	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case GIF:
		err = gif.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("imageio.Encode(%q): %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("imageio.Encode(%q): %w", format, err)
	}
	return nil
}

// FormatFromPath maps a file extension to a format name.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("imageio.FormatFromPath(%q): %w", path, ErrUnsupportedFormat)
	}
}
