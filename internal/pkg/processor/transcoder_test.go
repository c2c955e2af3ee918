package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stegotool/image-service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeTestImage renders a small gradient and encodes it in the given format.
func encodeTestImage(t *testing.T, width, height int, format imaging.Format) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 20), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func TestDecodeDetectsFormatAndDimensions(t *testing.T) {
	tests := []struct {
		name       string
		format     imaging.Format
		wantFormat string
	}{
		{name: "png", format: imaging.PNG, wantFormat: "png"},
		{name: "jpeg", format: imaging.JPEG, wantFormat: "jpeg"},
		{name: "gif", format: imaging.GIF, wantFormat: "gif"},
		{name: "bmp", format: imaging.BMP, wantFormat: "bmp"},
	}

	transcoder := NewImageTranscoder()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodeTestImage(t, 10, 8, tt.format)

			img, err := transcoder.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, img.Format)
			assert.Equal(t, 10, img.Width)
			assert.Equal(t, 8, img.Height)
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	transcoder := NewImageTranscoder()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "text", data: []byte("definitely not an image")},
		{name: "truncated png header", data: []byte{0x89, 'P', 'N', 'G'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := transcoder.Decode(tt.data)
			assert.Error(t, err)
			assert.Nil(t, img)
		})
	}
}

// TestLosslessRoundTrip checks that decode→encode→decode is pixel-identical
// for lossless formats.
func TestLosslessRoundTrip(t *testing.T) {
	transcoder := NewImageTranscoder()

	data := encodeTestImage(t, 10, 10, imaging.PNG)

	first, err := transcoder.Decode(data)
	require.NoError(t, err)

	reencoded, err := transcoder.Encode(first, "")
	require.NoError(t, err)

	second, err := transcoder.Decode(reencoded)
	require.NoError(t, err)
	require.Equal(t, first.Width, second.Width)
	require.Equal(t, first.Height, second.Height)

	for y := 0; y < first.Height; y++ {
		for x := 0; x < first.Width; x++ {
			r1, g1, b1, a1 := first.Source.At(x, y).RGBA()
			r2, g2, b2, a2 := second.Source.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("pixel (%d,%d) changed across round trip", x, y)
			}
		}
	}
}

// Lossy formats only guarantee the result decodes again, not byte identity.
func TestLossyRoundTripDecodable(t *testing.T) {
	transcoder := NewImageTranscoder()

	data := encodeTestImage(t, 12, 12, imaging.JPEG)

	img, err := transcoder.Decode(data)
	require.NoError(t, err)

	reencoded, err := transcoder.Encode(img, "")
	require.NoError(t, err)

	again, err := transcoder.Decode(reencoded)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", again.Format)
	assert.Equal(t, 12, again.Width)
	assert.Equal(t, 12, again.Height)
}

func TestEncodeDefaultsToDetectedFormat(t *testing.T) {
	transcoder := NewImageTranscoder()

	data := encodeTestImage(t, 6, 6, imaging.BMP)
	img, err := transcoder.Decode(data)
	require.NoError(t, err)

	out, err := transcoder.Encode(img, "")
	require.NoError(t, err)

	again, err := transcoder.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "bmp", again.Format)
}

func TestEncodeFallsBackToPNG(t *testing.T) {
	transcoder := NewImageTranscoder()

	// No detected format on the image and no explicit tag from the caller.
	img := &entity.UploadedImage{
		Source: image.NewRGBA(image.Rect(0, 0, 4, 4)),
		Width:  4,
		Height: 4,
	}

	out, err := transcoder.Encode(img, "")
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestEncodeExplicitFormatWins(t *testing.T) {
	transcoder := NewImageTranscoder()

	data := encodeTestImage(t, 5, 5, imaging.GIF)
	img, err := transcoder.Decode(data)
	require.NoError(t, err)

	out, err := transcoder.Encode(img, "jpg")
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	transcoder := NewImageTranscoder()

	data := encodeTestImage(t, 5, 5, imaging.PNG)
	img, err := transcoder.Decode(data)
	require.NoError(t, err)

	_, err = transcoder.Encode(img, "webp")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestEncodeOutputMatchesStdlibDecode(t *testing.T) {
	transcoder := NewImageTranscoder()

	data := encodeTestImage(t, 7, 3, imaging.PNG)
	img, err := transcoder.Decode(data)
	require.NoError(t, err)

	out, err := transcoder.Encode(img, "png")
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 7, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())
}
