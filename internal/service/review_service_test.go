package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedMovie(t *testing.T, movies *memMovieStore) primitive.ObjectID {
	t.Helper()
	m := &models.MovieDoc{
		Title:     models.Localized{En: "Inception", Ar: "استهلال"},
		Desc:      models.Localized{En: "A thief steals secrets through dreams."},
		Price:     9.99,
		Reviews:   []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, movies.Insert(context.Background(), m))
	return m.ID
}

func seedUser(t *testing.T, users *memUserStore, name string) primitive.ObjectID {
	t.Helper()
	u := &models.UserDoc{Username: name, Email: name + "@example.com", Role: models.RoleUser}
	require.NoError(t, users.Insert(context.Background(), u))
	return u.ID
}

func TestAddReviewDuplicate(t *testing.T) {
	ctx := context.Background()
	movies, reviews, users := &memMovieStore{}, &memReviewStore{}, &memUserStore{}
	svc := NewReviewService(reviews, movies, users)

	movieID := seedMovie(t, movies)
	userID := seedUser(t, users, "sara")

	view, err := svc.AddReview(ctx, movieID, userID, 5, "great")
	require.NoError(t, err)
	require.Equal(t, "sara", view.User.Username)
	require.Equal(t, 5, view.Rating)

	_, err = svc.AddReview(ctx, movieID, userID, 3, "changed my mind")
	require.ErrorIs(t, err, ErrDuplicateReview)
}

func TestAddReviewMovieNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(&memReviewStore{}, &memMovieStore{}, &memUserStore{})

	_, err := svc.AddReview(ctx, primitive.NewObjectID(), primitive.NewObjectID(), 4, "nice")
	require.ErrorIs(t, err, ErrMovieNotFound)
}

func TestAddReviewRecomputesMean(t *testing.T) {
	ctx := context.Background()
	movies, reviews, users := &memMovieStore{}, &memReviewStore{}, &memUserStore{}
	svc := NewReviewService(reviews, movies, users)

	movieID := seedMovie(t, movies)

	ratings := []int{5, 3, 4, 2, 5}
	for i, r := range ratings {
		userID := seedUser(t, users, "user"+string(rune('a'+i)))
		_, err := svc.AddReview(ctx, movieID, userID, r, "comment")
		require.NoError(t, err)
	}

	m, err := movies.FindByID(ctx, movieID)
	require.NoError(t, err)
	require.InDelta(t, 3.8, m.Rating, 1e-9)
	require.Len(t, m.Reviews, len(ratings))
}
