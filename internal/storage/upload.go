package storage

import (
	"context"
	"io"
	"mime/multipart"
)

// Uploader is the slice of the client that multipart uploads need.
// *R2Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// UploadMultipartFile opens a multipart upload and stores it through the
// client, carrying the browser-supplied content type.
func UploadMultipartFile(
	ctx context.Context,
	up Uploader,
	key string,
	file *multipart.FileHeader,
) (string, error) {

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return up.Upload(ctx, key, f, file.Header.Get("Content-Type"))
}
