// Package objectstore stores payment proofs in Cloudinary.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Config holds the Cloudinary account credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// Storage implements ports.ObjectStorage. Uploading the same name twice
// replaces the previous asset.
type Storage struct {
	upload uploadAPI
}

func New(cfg Config) (*Storage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &Storage{upload: &cld.Upload}, nil
}

func (s *Storage) Upload(ctx context.Context, folder, name string, blob io.Reader) (string, error) {
	if blob == nil {
		return "", errors.New("blob is nil")
	}

	result, err := s.upload.Upload(ctx, blob, uploader.UploadParams{
		Folder:         folder,
		PublicID:       name,
		Overwrite:      api.Bool(true),
		UniqueFilename: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s/%s: %w", folder, name, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload %s/%s: %s", folder, name, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("failed to upload %s/%s: no url returned", folder, name)
	}

	return result.SecureURL, nil
}
