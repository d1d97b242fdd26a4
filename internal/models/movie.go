package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Localized holds both language branches of a bilingual field.
type Localized struct {
	En string `json:"en" bson:"en"`
	Ar string `json:"ar" bson:"ar"`
}

// Pick selects the branch for lang ("ar" selects Arabic, anything else
// English) and falls back to English when the Arabic value is empty.
func (l Localized) Pick(lang string) string {
	if lang == "ar" && l.Ar != "" {
		return l.Ar
	}
	return l.En
}

// MediaAsset is a file stored on the remote asset host.
type MediaAsset struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"publicId" bson:"publicId"`
}

// MovieDoc is the movies collection document. Both language branches are
// always stored; language selection happens at read time.
type MovieDoc struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Title     Localized            `json:"title" bson:"title"`
	Desc      Localized            `json:"desc" bson:"desc"`
	Price     float64              `json:"price" bson:"price"`
	PosterImg MediaAsset           `json:"posterImg" bson:"posterImg"`
	VideoURL  MediaAsset           `json:"videoUrl" bson:"videoUrl"`
	Rating    float64              `json:"rating" bson:"rating"`
	Reviews   []primitive.ObjectID `json:"reviews" bson:"reviews"`
	CreatedBy primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// MovieSummary is the localized list projection.
type MovieSummary struct {
	ID        primitive.ObjectID `json:"_id"`
	Title     string             `json:"title"`
	Desc      string             `json:"desc"`
	PosterImg MediaAsset         `json:"posterImg"`
	VideoURL  MediaAsset         `json:"videoUrl"`
	Price     float64            `json:"price"`
	Rating    float64            `json:"rating"`
	CreatedAt time.Time          `json:"createdAt"`
}

// UserRef identifies a user inside another document's projection.
type UserRef struct {
	ID       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
}

// MovieDetail is the localized single-movie projection with the creator
// and reviews populated.
type MovieDetail struct {
	MovieSummary
	CreatedBy *UserRef     `json:"createdBy,omitempty"`
	Reviews   []ReviewView `json:"reviews"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
