package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"withdrawal-service/internal/core/domain"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// allowedContentTypes mirrors the upload widget's accept list.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/mov":       true,
	"video/quicktime": true,
	"video/webm":      true,
	"application/pdf": true,
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true, ".avi": true,
}

// uploadService implements ports.UploadService. Files are classified
// and size-checked only; nothing is written to disk.
type uploadService struct {
	maxSizeMB int
	log       zerolog.Logger
}

// NewUploadService creates a new upload staging service.
func NewUploadService(maxSizeMB int, log zerolog.Logger) ports.UploadService {
	return &uploadService{maxSizeMB: maxSizeMB, log: log}
}

// Stage validates the offered file and returns attachment metadata with
// a fresh att_-prefixed id.
func (s *uploadService) Stage(ctx context.Context, req ports.StageFileRequest) (*domain.Attachment, error) {
	if req.Size > int64(s.maxSizeMB)*1024*1024 {
		return nil, apperror.ErrFileTooLarge(s.maxSizeMB)
	}

	contentType := req.ContentType
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if !allowedContentTypes[contentType] {
		return nil, apperror.ErrUnsupportedFileType(contentType)
	}

	att := &domain.Attachment{
		ID:   fmt.Sprintf("att_%s", uuid.New().String()),
		Type: classify(req.Name, contentType),
		Name: req.Name,
	}
	att.URL = fmt.Sprintf("/staging/%s/%s", att.ID, att.Name)

	s.log.Debug().
		Str("attachment_id", att.ID).
		Str("type", string(att.Type)).
		Int64("size", req.Size).
		Msg("upload staged")

	return att, nil
}

// classify picks the attachment type from the content type, falling
// back to the file extension.
func classify(name, contentType string) domain.AttachmentType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return domain.AttachmentImage
	case strings.HasPrefix(contentType, "video/"):
		return domain.AttachmentVideo
	}

	ext := strings.ToLower(path.Ext(name))
	switch {
	case imageExtensions[ext]:
		return domain.AttachmentImage
	case videoExtensions[ext]:
		return domain.AttachmentVideo
	}
	return domain.AttachmentDocument
}
