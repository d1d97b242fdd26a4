package service

import (
	"context"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces the services depend on. The repository package
// implements them against Mongo; tests use in-memory fakes. Finders
// return (nil, nil) when no document matches.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
	FindManyByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) error
}

type MovieStore interface {
	List(ctx context.Context) ([]models.MovieDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MovieDoc, error)
	Insert(ctx context.Context, m *models.MovieDoc) error
	Replace(ctx context.Context, m *models.MovieDoc) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ReviewStore interface {
	FindOne(ctx context.Context, movieID, userID primitive.ObjectID) (*models.ReviewDoc, error)
	FindByMovie(ctx context.Context, movieID primitive.ObjectID) ([]models.ReviewDoc, error)
	Insert(ctx context.Context, rv *models.ReviewDoc) error
}
