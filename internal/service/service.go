package service

import (
	"mime/multipart"

	"github.com/stegotool/image-service/internal/entity"
	"github.com/stegotool/image-service/internal/pkg/kafka"
	"github.com/stegotool/image-service/internal/pkg/processor"
)

type ImageService interface {
	ProcessImage(file *multipart.FileHeader) (*entity.ProcessResponse, error)
	PrepareDownload(req *entity.DownloadRequest) (*entity.DownloadFile, error)
}

type imageService struct {
	transcoder processor.ImageTranscoder
	producer   kafka.Producer
}

func NewImageService(transcoder processor.ImageTranscoder, producer kafka.Producer) ImageService {
	return &imageService{
		transcoder: transcoder,
		producer:   producer,
	}
}
