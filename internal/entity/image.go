package entity

import "image"

// UploadedImage is the decoded form of one inbound upload. It lives only
// for the duration of the request that created it.
type UploadedImage struct {
	Source image.Image
	Format string
	Width  int
	Height int
}

type ProcessResponse struct {
	Success bool   `json:"success"`
	Image   string `json:"image"`
	Format  string `json:"format"`
	Size    string `json:"size"`
}

type DownloadRequest struct {
	Image  string `json:"image"`
	Format string `json:"format"`
}

// DownloadFile is the outbound attachment built from a DownloadRequest.
type DownloadFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

type ProcessedEvent struct {
	ID     string `json:"id"`
	Format string `json:"format"`
	Size   string `json:"size"`
	Bytes  int    `json:"bytes"`
}
