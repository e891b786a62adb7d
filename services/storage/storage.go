package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService handles venue media uploads.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(publicID string) (string, error)
}

type cloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &cloudinaryStorage{cld: cld, cloudName: cloudName}
}

// UploadFile uploads a file into the specified folder and returns the
// permanent identifier.
func (s *cloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file given its public ID.
func (s *cloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL constructs the public delivery URL for an image asset.
func (s *cloudinaryStorage) GetDownloadURL(publicID string) (string, error) {
	if publicID == "" {
		return "", fmt.Errorf("storage: empty public ID")
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", s.cloudName, publicID), nil
}
