package application

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/featherform/featherform/config"
	"github.com/featherform/featherform/storage"
	"github.com/google/uuid"
)

// MediaService uploads image/video block assets to object storage and
// returns a public src URL for the block.
type MediaService struct{}

func NewMediaService() *MediaService {
	return &MediaService{}
}

func (s *MediaService) Upload(ctx context.Context, formID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := path.Ext(filename)
	objectName := path.Join(formID, uuid.NewString()+ext)

	name, err := storage.PutObject(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(config.MinioPublicBase, "/") + "/" + name, nil
}
