package handler

import (
	"withdrawal-service/internal/adapter/http/dto"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/apperror"
	"withdrawal-service/pkg/metrics"
	"withdrawal-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles attachment staging.
type UploadHandler struct {
	uploadSvc ports.UploadService
	maxFiles  int
	collector *metrics.Collector // nil = metrics disabled
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadSvc ports.UploadService, maxFiles int, collector *metrics.Collector) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc, maxFiles: maxFiles, collector: collector}
}

// Stage handles POST /api/v1/uploads. Accepts multipart form files
// under the "files" field and returns attachment metadata for each.
// Files are classified and size-checked only, never written to disk.
func (h *UploadHandler) Stage(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, apperror.Validation("multipart form required"))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.Error(c, apperror.Validation("no files provided"))
		return
	}
	if len(files) > h.maxFiles {
		response.Error(c, apperror.ErrTooManyFiles(h.maxFiles))
		return
	}

	staged := make([]dto.AttachmentResponse, 0, len(files))
	for _, f := range files {
		att, err := h.uploadSvc.Stage(c.Request.Context(), ports.StageFileRequest{
			Name:        f.Filename,
			Size:        f.Size,
			ContentType: f.Header.Get("Content-Type"),
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		if h.collector != nil {
			h.collector.RecordUploadStaged(string(att.Type))
		}
		staged = append(staged, dto.AttachmentResponse{
			ID:   att.ID,
			Type: string(att.Type),
			Name: att.Name,
			URL:  att.URL,
		})
	}

	response.Created(c, staged)
}
