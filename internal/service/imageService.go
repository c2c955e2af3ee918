package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stegotool/image-service/internal/entity"
	"github.com/stegotool/image-service/internal/pkg/datauri"
	"github.com/stegotool/image-service/internal/pkg/processor"
)

// ProcessImage decodes the upload, re-encodes it in its detected format and
// returns the result as a base64 payload with format and dimensions.
func (s *imageService) ProcessImage(file *multipart.FileHeader) (*entity.ProcessResponse, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	img, err := s.transcoder.Decode(data)
	if err != nil {
		return nil, err
	}

	// Empty format keeps the detected one, so "process then return" stays
	// close to identity for supported formats.
	reencoded, err := s.transcoder.Encode(img, "")
	if err != nil {
		return nil, err
	}

	response := &entity.ProcessResponse{
		Success: true,
		Image:   datauri.ToBase64(reencoded),
		Format:  strings.ToLower(img.Format),
		Size:    fmt.Sprintf("%dx%d", img.Width, img.Height),
	}

	// Fire and forget: the client response never depends on the broker.
	event := entity.ProcessedEvent{
		ID:     uuid.New().String(),
		Format: response.Format,
		Size:   response.Size,
		Bytes:  len(reencoded),
	}
	if err := s.producer.SendEvent(event); err != nil {
		logrus.Warnf("Failed to publish processed event: %v", err)
	}

	return response, nil
}

// PrepareDownload reverses the base64 framing and shapes the bytes into an
// attachment. The declared format tag is trusted as supplied: the decoded
// bytes are not validated against it.
func (s *imageService) PrepareDownload(req *entity.DownloadRequest) (*entity.DownloadFile, error) {
	if req == nil || req.Image == "" {
		return nil, entity.ErrNoImageData
	}

	data, err := datauri.FromFramed(req.Image)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = processor.DefaultFormat
	}

	return &entity.DownloadFile{
		Data:        data,
		ContentType: "image/" + format,
		Filename:    "steganography_result." + format,
	}, nil
}
