package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores carpet photos and hands back permanent identifiers.
type StorageService interface {
	UploadPhoto(ctx context.Context, localFilePath string) (string, error)
	DeletePhoto(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadPhoto uploads a carpet photo into the carpets folder and returns the
// permanent identifier the booking and classifier reference.
func (s *StorageServiceImpl) UploadPhoto(ctx context.Context, localFilePath string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: "carpets",
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload photo: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return result.PublicID, nil
}

// DeletePhoto deletes a photo from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeletePhoto(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete photo: %w", err)
	}
	return nil
}

// GetDownloadURL constructs the public URL for a stored photo.
func (s *StorageServiceImpl) GetDownloadURL(ctx context.Context, publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get URL string: %w", err)
	}
	return url, nil
}
