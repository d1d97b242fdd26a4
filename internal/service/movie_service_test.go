package service

import (
	"context"
	"testing"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMovieService() (*MovieService, *memMovieStore, *memReviewStore, *memUserStore, *fakeAssets) {
	movies, reviews, users, assets := &memMovieStore{}, &memReviewStore{}, &memUserStore{}, &fakeAssets{}
	return NewMovieService(movies, reviews, users, assets), movies, reviews, users, assets
}

func TestListMoviesArabicFallback(t *testing.T) {
	ctx := context.Background()
	svc, movies, _, _, _ := newMovieService()

	require.NoError(t, movies.Insert(ctx, &models.MovieDoc{
		Title: models.Localized{En: "Inception", Ar: "استهلال"},
		Desc:  models.Localized{En: "English only"},
	}))
	require.NoError(t, movies.Insert(ctx, &models.MovieDoc{
		Title: models.Localized{En: "Dune"},
		Desc:  models.Localized{En: "Spice", Ar: "توابل"},
	}))

	out, err := svc.ListMovies(ctx, "ar")
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Equal(t, "استهلال", out[0].Title)
	require.Equal(t, "English only", out[0].Desc) // fallback
	require.Equal(t, "Dune", out[1].Title)        // fallback
	require.Equal(t, "توابل", out[1].Desc)

	en, err := svc.ListMovies(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "Inception", en[0].Title)
}

func TestGetMoviePopulatesCreatorAndReviews(t *testing.T) {
	ctx := context.Background()
	svc, movies, reviews, users, _ := newMovieService()

	admin := &models.UserDoc{Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, users.Insert(ctx, admin))
	reviewer := &models.UserDoc{
		Username:   "sara",
		Email:      "sara@example.com",
		ImgProfile: &models.MediaAsset{URL: "https://cdn.test/profiles/p1", PublicID: "profiles/p1"},
	}
	require.NoError(t, users.Insert(ctx, reviewer))

	m := &models.MovieDoc{
		Title:     models.Localized{En: "Dune", Ar: "كثيب"},
		Desc:      models.Localized{En: "Spice"},
		Price:     9.99,
		CreatedBy: admin.ID,
	}
	require.NoError(t, movies.Insert(ctx, m))
	require.NoError(t, reviews.Insert(ctx, &models.ReviewDoc{Movie: m.ID, User: reviewer.ID, Rating: 4, Comment: "good"}))

	detail, err := svc.GetMovie(ctx, m.ID, "ar")
	require.NoError(t, err)
	require.Equal(t, "كثيب", detail.Title)
	require.Equal(t, "Spice", detail.Desc) // fallback
	require.NotNil(t, detail.CreatedBy)
	require.Equal(t, "admin", detail.CreatedBy.Username)
	require.Len(t, detail.Reviews, 1)
	require.Equal(t, "sara", detail.Reviews[0].User.Username)
	require.NotNil(t, detail.Reviews[0].User.ImgProfile)

	_, err = svc.GetMovie(ctx, primitive.NewObjectID(), "en")
	require.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCreateMovieCleansUpAssetsOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	svc, movies, _, _, assets := newMovieService()
	movies.failInsert = true

	_, err := svc.CreateMovie(ctx, CreateMovieInput{
		Title:  models.Localized{En: "x", Ar: "y"},
		Desc:   models.Localized{En: "x", Ar: "y"},
		Price:  1,
		Poster: models.MediaAsset{PublicID: "movies/posters/p1"},
		Video:  models.MediaAsset{PublicID: "movies/videos/v1"},
	})
	require.Error(t, err)
	require.Contains(t, assets.deleted, "image:movies/posters/p1")
	require.Contains(t, assets.deleted, "video:movies/videos/v1")
}

func TestUpdateMovieReplacesAndDeletesOldAsset(t *testing.T) {
	ctx := context.Background()
	svc, movies, _, _, assets := newMovieService()

	m := &models.MovieDoc{
		Title:     models.Localized{En: "Dune", Ar: "كثيب"},
		Desc:      models.Localized{En: "Spice", Ar: "توابل"},
		Price:     5,
		PosterImg: models.MediaAsset{PublicID: "movies/posters/old"},
		VideoURL:  models.MediaAsset{PublicID: "movies/videos/old"},
	}
	require.NoError(t, movies.Insert(ctx, m))

	titleEn := "Dune: Part Two"
	updated, err := svc.UpdateMovie(ctx, m.ID, UpdateMovieInput{
		TitleEn: &titleEn,
		Poster:  &models.MediaAsset{PublicID: "movies/posters/new"},
	})
	require.NoError(t, err)
	require.Equal(t, "Dune: Part Two", updated.Title.En)
	require.Equal(t, "كثيب", updated.Title.Ar) // untouched
	require.Equal(t, "movies/posters/new", updated.PosterImg.PublicID)
	require.Equal(t, "movies/videos/old", updated.VideoURL.PublicID)
	require.Contains(t, assets.deleted, "image:movies/posters/old")
	require.NotContains(t, assets.deleted, "video:movies/videos/old")
}

func TestDeleteMovieRemovesAssets(t *testing.T) {
	ctx := context.Background()
	svc, movies, _, _, assets := newMovieService()

	m := &models.MovieDoc{
		Title:     models.Localized{En: "Dune"},
		PosterImg: models.MediaAsset{PublicID: "movies/posters/p1"},
		VideoURL:  models.MediaAsset{PublicID: "movies/videos/v1"},
	}
	require.NoError(t, movies.Insert(ctx, m))

	require.NoError(t, svc.DeleteMovie(ctx, m.ID))
	require.Contains(t, assets.deleted, "image:movies/posters/p1")
	require.Contains(t, assets.deleted, "video:movies/videos/v1")

	_, err := svc.GetMovie(ctx, m.ID, "en")
	require.ErrorIs(t, err, ErrMovieNotFound)

	require.ErrorIs(t, svc.DeleteMovie(ctx, m.ID), ErrMovieNotFound)
}
