package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/storage"
)

// Upload bounds: the signup request body is hard-capped so an oversized
// profile image never reaches the asset host; the movie form carries a
// video, so its constant only sets the in-memory parse threshold.
const (
	maxMovieUpload   = 50 << 20
	maxProfileUpload = 2 << 20

	// room for the text fields sharing the body with a capped file
	formFieldHeadroom = 16 << 10
)

func isImage(hdr *multipart.FileHeader) bool {
	return strings.HasPrefix(hdr.Header.Get("Content-Type"), "image/")
}

func isVideo(hdr *multipart.FileHeader) bool {
	return strings.HasPrefix(hdr.Header.Get("Content-Type"), "video/")
}

// uploadField streams one multipart file field to the asset host.
// Returns nil with no error when the field is absent.
func uploadField(ctx context.Context, r *http.Request, assets storage.Store, field, folder, resourceType string, accept func(*multipart.FileHeader) bool) (*models.MediaAsset, error) {
	f, hdr, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, badInput("could not read file field " + field)
	}
	defer f.Close()

	if !accept(hdr) {
		return nil, badInput("invalid file type for " + field)
	}

	asset, err := assets.Upload(ctx, f, folder, resourceType)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// formValue returns a pointer only when the field was present in the
// form, so update handlers can tell "absent" from "empty".
func formValue(r *http.Request, field string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vs, ok := r.MultipartForm.Value[field]
	if !ok || len(vs) == 0 {
		return nil
	}
	return &vs[0]
}
