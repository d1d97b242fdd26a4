package repository

import (
	"context"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/db"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{col: db.DB().Collection("reviews")}
}

func (r *ReviewRepository) FindOne(ctx context.Context, movieID, userID primitive.ObjectID) (*models.ReviewDoc, error) {
	var rv models.ReviewDoc
	err := r.col.FindOne(ctx, bson.M{"movie": movieID, "user": userID}).Decode(&rv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rv, err
}

// FindByMovie returns all reviews for one movie in creation order.
func (r *ReviewRepository) FindByMovie(ctx context.Context, movieID primitive.ObjectID) ([]models.ReviewDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{"movie": movieID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReviewDoc
	for cur.Next(ctx) {
		var rv models.ReviewDoc
		if err := cur.Decode(&rv); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, cur.Err()
}

func (r *ReviewRepository) Insert(ctx context.Context, rv *models.ReviewDoc) error {
	if rv.ID.IsZero() {
		rv.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, rv)
	return err
}
