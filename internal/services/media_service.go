package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

// MediaService uploads chat attachments to the object store and hands back
// the metadata the chat message carries.
type MediaService struct {
	minio     *minio.Client
	bucket    string
	publicURL string
}

func NewMediaService(m *minio.Client, bucket, publicURL string) *MediaService {
	return &MediaService{minio: m, bucket: bucket, publicURL: publicURL}
}

func (s *MediaService) Upload(ctx context.Context, reader io.Reader, size int64, contentType, filename, userID string) (*models.ChatMessage, error) {
	objectKey := fmt.Sprintf("%s/%d_%s", userID, time.Now().UnixNano(), filename)
	_, err := s.minio.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(s.publicURL, "/"),
		s.bucket,
		objectKey,
	)

	return &models.ChatMessage{
		FileURL:  url,
		FileName: filename,
		FileSize: size,
		FileType: contentType,
	}, nil
}
