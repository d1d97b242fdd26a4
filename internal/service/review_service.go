package service

import (
	"context"
	"log"
	"time"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/cache"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService struct {
	reviews ReviewStore
	movies  MovieStore
	users   UserStore
}

func NewReviewService(reviews ReviewStore, movies MovieStore, users UserStore) *ReviewService {
	return &ReviewService{reviews: reviews, movies: movies, users: users}
}

// AddReview inserts a review, appends its id to the movie's review list
// and recomputes the movie's rating as the mean over all its reviews.
// The read-modify-write on the movie is unguarded: concurrent reviews of
// the same movie race on the final save and the last write wins.
func (s *ReviewService) AddReview(ctx context.Context, movieID, userID primitive.ObjectID, rating int, comment string) (*models.ReviewView, error) {
	existing, err := s.reviews.FindOne(ctx, movieID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	rv := &models.ReviewDoc{
		Movie:     movieID,
		User:      userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Insert(ctx, rv); err != nil {
		return nil, err
	}

	movie.Reviews = append(movie.Reviews, rv.ID)

	// Full re-scan, always consistent with the current review set.
	all, err := s.reviews.FindByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, r := range all {
		sum += r.Rating
	}
	if len(all) > 0 {
		movie.Rating = float64(sum) / float64(len(all))
	}
	movie.UpdatedAt = rv.CreatedAt

	if err := s.movies.Replace(ctx, movie); err != nil {
		return nil, err
	}

	if err := cache.Del(ctx, listKey("en"), listKey("ar")); err != nil {
		log.Printf("[reviews] cache invalidation: %v", err)
	}

	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	var authorDoc models.UserDoc
	if author != nil {
		authorDoc = *author
	}

	view := reviewView(*rv, authorDoc)
	return &view, nil
}
