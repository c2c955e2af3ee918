package processor

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Decoders for every whitelisted upload format.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/disintegration/imaging"
	"github.com/stegotool/image-service/internal/entity"
)

// DefaultFormat is used at the encode step when no format is known.
const DefaultFormat = "png"

type ImageTranscoder interface {
	Decode(data []byte) (*entity.UploadedImage, error)
	Encode(img *entity.UploadedImage, format string) ([]byte, error)
}

type imageTranscoder struct{}

func NewImageTranscoder() ImageTranscoder {
	return &imageTranscoder{}
}

// Decode parses raw image bytes into an UploadedImage. The format is
// detected from the content, not the filename. Corrupt or unrecognized
// bytes return an error, never a partial image.
func (t *imageTranscoder) Decode(data []byte) (*entity.UploadedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return &entity.UploadedImage{
		Source: img,
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// Encode re-encodes the image. An empty format means "keep the detected
// one", falling back to DefaultFormat when nothing was detected.
func (t *imageTranscoder) Encode(img *entity.UploadedImage, format string) ([]byte, error) {
	tag := strings.ToLower(format)
	if tag == "" {
		tag = img.Format
	}
	if tag == "" {
		tag = DefaultFormat
	}

	f, err := formatFor(tag)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img.Source, f); err != nil {
		return nil, fmt.Errorf("failed to encode image as %s: %w", tag, err)
	}
	return buf.Bytes(), nil
}

func formatFor(tag string) (imaging.Format, error) {
	switch tag {
	case "jpg", "jpeg":
		return imaging.JPEG, nil
	case "png":
		return imaging.PNG, nil
	case "gif":
		return imaging.GIF, nil
	case "bmp":
		return imaging.BMP, nil
	default:
		return 0, fmt.Errorf("unsupported format: %s", tag)
	}
}
