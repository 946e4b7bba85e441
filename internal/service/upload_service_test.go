package service

import (
	"context"
	"strings"
	"testing"

	"withdrawal-service/internal/core/domain"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Stage_Classification(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		contentType string
		want        domain.AttachmentType
	}{
		{"jpeg image", "slip.jpg", "image/jpeg", domain.AttachmentImage},
		{"png image", "receipt.png", "image/png", domain.AttachmentImage},
		{"mp4 video", "proof.mp4", "video/mp4", domain.AttachmentVideo},
		{"webm video", "clip.webm", "video/webm", domain.AttachmentVideo},
		{"pdf document", "invoice.pdf", "application/pdf", domain.AttachmentDocument},
		{"content type with charset", "photo.jpg", "image/jpeg; charset=binary", domain.AttachmentImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUploadService(10, testLogger())
			att, err := svc.Stage(context.Background(), ports.StageFileRequest{
				Name:        tt.fileName,
				Size:        1024,
				ContentType: tt.contentType,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, att.Type)
			assert.Equal(t, tt.fileName, att.Name)
			assert.True(t, strings.HasPrefix(att.ID, "att_"))
			assert.Contains(t, att.URL, att.ID)
		})
	}
}

func TestUploadService_Stage_UniqueIDs(t *testing.T) {
	svc := NewUploadService(10, testLogger())
	req := ports.StageFileRequest{Name: "slip.jpg", Size: 100, ContentType: "image/jpeg"}

	first, err := svc.Stage(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Stage(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUploadService_Stage_FileTooLarge(t *testing.T) {
	svc := NewUploadService(10, testLogger())

	_, err := svc.Stage(context.Background(), ports.StageFileRequest{
		Name:        "huge.mp4",
		Size:        11 * 1024 * 1024,
		ContentType: "video/mp4",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPL_001", appErr.Code)
}

func TestUploadService_Stage_UnsupportedType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{"executable", "application/x-msdownload"},
		{"zip archive", "application/zip"},
		{"plain text", "text/plain"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUploadService(10, testLogger())
			_, err := svc.Stage(context.Background(), ports.StageFileRequest{
				Name:        "file.bin",
				Size:        100,
				ContentType: tt.contentType,
			})
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "UPL_002", appErr.Code)
		})
	}
}

func TestUploadService_Stage_SizeAtLimit(t *testing.T) {
	svc := NewUploadService(10, testLogger())

	att, err := svc.Stage(context.Background(), ports.StageFileRequest{
		Name:        "exact.jpg",
		Size:        10 * 1024 * 1024,
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AttachmentImage, att.Type)
}
