package storage

import (
	"context"
	"io"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"
)

// Resource types as the asset host classifies them.
const (
	ResourceImage = "image"
	ResourceVideo = "video"
)

// Upload folders per media kind.
const (
	FolderPosters  = "movies/posters"
	FolderVideos   = "movies/videos"
	FolderProfiles = "profiles"
)

// Store is the remote asset host. Uploads return the hosted URL plus the
// opaque id later needed to delete the asset.
type Store interface {
	Upload(ctx context.Context, r io.Reader, folder, resourceType string) (models.MediaAsset, error)
	Delete(ctx context.Context, publicID, resourceType string) error
}
