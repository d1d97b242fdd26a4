package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores standing in for the Mongo repositories.

type memUserStore struct {
	users []models.UserDoc
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	for _, u := range s.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindManyByID(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDoc, error) {
	out := make(map[primitive.ObjectID]models.UserDoc, len(ids))
	for _, id := range ids {
		for _, u := range s.users {
			if u.ID == id {
				out[id] = u
			}
		}
	}
	return out, nil
}

func (s *memUserStore) Insert(_ context.Context, u *models.UserDoc) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, *u)
	return nil
}

type memMovieStore struct {
	movies     []models.MovieDoc
	failInsert bool
}

func (s *memMovieStore) List(_ context.Context) ([]models.MovieDoc, error) {
	out := make([]models.MovieDoc, len(s.movies))
	copy(out, s.movies)
	return out, nil
}

func (s *memMovieStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.MovieDoc, error) {
	for _, m := range s.movies {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memMovieStore) Insert(_ context.Context, m *models.MovieDoc) error {
	if s.failInsert {
		return errors.New("insert failed")
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	s.movies = append(s.movies, *m)
	return nil
}

func (s *memMovieStore) Replace(_ context.Context, m *models.MovieDoc) error {
	for i := range s.movies {
		if s.movies[i].ID == m.ID {
			s.movies[i] = *m
			return nil
		}
	}
	return errors.New("no documents matched")
}

func (s *memMovieStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range s.movies {
		if s.movies[i].ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			return nil
		}
	}
	return errors.New("no documents matched")
}

type memReviewStore struct {
	reviews []models.ReviewDoc
}

func (s *memReviewStore) FindOne(_ context.Context, movieID, userID primitive.ObjectID) (*models.ReviewDoc, error) {
	for _, rv := range s.reviews {
		if rv.Movie == movieID && rv.User == userID {
			cp := rv
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memReviewStore) FindByMovie(_ context.Context, movieID primitive.ObjectID) ([]models.ReviewDoc, error) {
	var out []models.ReviewDoc
	for _, rv := range s.reviews {
		if rv.Movie == movieID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (s *memReviewStore) Insert(_ context.Context, rv *models.ReviewDoc) error {
	if rv.ID.IsZero() {
		rv.ID = primitive.NewObjectID()
	}
	s.reviews = append(s.reviews, *rv)
	return nil
}

// fakeAssets records uploads and deletes instead of talking to the host.
type fakeAssets struct {
	uploads int
	deleted []string
}

func (f *fakeAssets) Upload(_ context.Context, _ io.Reader, folder, _ string) (models.MediaAsset, error) {
	f.uploads++
	id := fmt.Sprintf("%s/file-%d", folder, f.uploads)
	return models.MediaAsset{URL: "https://cdn.test/" + id, PublicID: id}, nil
}

func (f *fakeAssets) Delete(_ context.Context, publicID, resourceType string) error {
	f.deleted = append(f.deleted, resourceType+":"+publicID)
	return nil
}
