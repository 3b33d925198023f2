package utils

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/serviceconnect/booking-backend/config"
)

// MaxImageSize is the upload cap for catalog images.
const MaxImageSize = 500 * 1024 // 500 KB

// Uploader pushes images to Cloudinary and hands back their access URLs.
type Uploader struct {
	client *cloudinary.Cloudinary
	preset string
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, err
	}
	return &Uploader{client: cld, preset: cfg.CloudinaryUploadPreset}, nil
}

// UploadImage stores the file under the given public ID and folder and returns
// the secure URL.
func (u *Uploader) UploadImage(file io.Reader, publicID, folder string) (string, error) {
	ctx := context.Background()
	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		UploadPreset: u.preset,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
