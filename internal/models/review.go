package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewDoc struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Movie     primitive.ObjectID `json:"movie" bson:"movie"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ReviewAuthor carries the display fields the client shows next to a review.
type ReviewAuthor struct {
	ID         primitive.ObjectID `json:"_id"`
	Username   string             `json:"username"`
	ImgProfile *MediaAsset        `json:"imgProfile,omitempty"`
}

// ReviewView is a review with its author populated.
type ReviewView struct {
	ID        primitive.ObjectID `json:"_id"`
	Rating    int                `json:"rating"`
	Comment   string             `json:"comment"`
	User      ReviewAuthor       `json:"user"`
	CreatedAt time.Time          `json:"createdAt"`
}
