package service

import (
	"context"
	"log"
	"time"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/cache"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const listCacheTTL = 30 // seconds

type MovieService struct {
	movies  MovieStore
	reviews ReviewStore
	users   UserStore
	assets  storage.Store
}

func NewMovieService(movies MovieStore, reviews ReviewStore, users UserStore, assets storage.Store) *MovieService {
	return &MovieService{movies: movies, reviews: reviews, users: users, assets: assets}
}

// NormalizeLang collapses the lang query parameter to "ar" or "en".
func NormalizeLang(lang string) string {
	if lang == "ar" {
		return "ar"
	}
	return "en"
}

func listKey(lang string) string { return "movies:list:" + lang }

func summarize(m models.MovieDoc, lang string) models.MovieSummary {
	return models.MovieSummary{
		ID:        m.ID,
		Title:     m.Title.Pick(lang),
		Desc:      m.Desc.Pick(lang),
		PosterImg: m.PosterImg,
		VideoURL:  m.VideoURL,
		Price:     m.Price,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
	}
}

// ListMovies returns the localized list projection, served from the
// cache when possible.
func (s *MovieService) ListMovies(ctx context.Context, lang string) ([]models.MovieSummary, error) {
	lang = NormalizeLang(lang)

	var cached []models.MovieSummary
	if ok, err := cache.GetJSON(ctx, listKey(lang), &cached); err == nil && ok {
		return cached, nil
	}

	docs, err := s.movies.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.MovieSummary, 0, len(docs))
	for _, m := range docs {
		out = append(out, summarize(m, lang))
	}

	_ = cache.SetJSON(ctx, listKey(lang), out, listCacheTTL)
	return out, nil
}

// GetMovie returns the localized detail projection with the creator and
// all reviews (with authors) populated.
func (s *MovieService) GetMovie(ctx context.Context, id primitive.ObjectID, lang string) (*models.MovieDetail, error) {
	lang = NormalizeLang(lang)

	m, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.reviews.FindByMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(reviews)+1)
	for _, rv := range reviews {
		ids = append(ids, rv.User)
	}
	if !m.CreatedBy.IsZero() {
		ids = append(ids, m.CreatedBy)
	}
	authors, err := s.users.FindManyByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	detail := &models.MovieDetail{
		MovieSummary: summarize(*m, lang),
		Reviews:      make([]models.ReviewView, 0, len(reviews)),
		UpdatedAt:    m.UpdatedAt,
	}
	if creator, ok := authors[m.CreatedBy]; ok {
		detail.CreatedBy = &models.UserRef{ID: creator.ID, Username: creator.Username}
	}
	for _, rv := range reviews {
		detail.Reviews = append(detail.Reviews, reviewView(rv, authors[rv.User]))
	}
	return detail, nil
}

func reviewView(rv models.ReviewDoc, author models.UserDoc) models.ReviewView {
	return models.ReviewView{
		ID:      rv.ID,
		Rating:  rv.Rating,
		Comment: rv.Comment,
		User: models.ReviewAuthor{
			ID:         rv.User,
			Username:   author.Username,
			ImgProfile: author.ImgProfile,
		},
		CreatedAt: rv.CreatedAt,
	}
}

type CreateMovieInput struct {
	Title     models.Localized
	Desc      models.Localized
	Price     float64
	Poster    models.MediaAsset
	Video     models.MediaAsset
	CreatedBy primitive.ObjectID
}

// CreateMovie persists a movie whose assets were already uploaded. When
// persistence fails the assets are deleted again, best effort, so the
// host ends up with no orphans.
func (s *MovieService) CreateMovie(ctx context.Context, in CreateMovieInput) (*models.MovieDoc, error) {
	now := time.Now().UTC()
	m := &models.MovieDoc{
		Title:     in.Title,
		Desc:      in.Desc,
		Price:     in.Price,
		PosterImg: in.Poster,
		VideoURL:  in.Video,
		Reviews:   []primitive.ObjectID{},
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.movies.Insert(ctx, m); err != nil {
		s.deleteAsset(ctx, in.Poster, storage.ResourceImage)
		s.deleteAsset(ctx, in.Video, storage.ResourceVideo)
		return nil, err
	}

	s.invalidateListCache(ctx)
	return m, nil
}

type UpdateMovieInput struct {
	TitleEn *string
	TitleAr *string
	DescEn  *string
	DescAr  *string
	Price   *float64
	Poster  *models.MediaAsset
	Video   *models.MediaAsset
}

// UpdateMovie applies a partial replace: absent text fields keep their
// stored values, a new asset replaces and deletes the old one.
func (s *MovieService) UpdateMovie(ctx context.Context, id primitive.ObjectID, in UpdateMovieInput) (*models.MovieDoc, error) {
	m, err := s.movies.FindByID(ctx, id)
	if err == nil && m == nil {
		err = ErrMovieNotFound
	}
	if err != nil {
		s.cleanupReplacements(ctx, in)
		return nil, err
	}

	if in.TitleEn != nil {
		m.Title.En = *in.TitleEn
	}
	if in.TitleAr != nil {
		m.Title.Ar = *in.TitleAr
	}
	if in.DescEn != nil {
		m.Desc.En = *in.DescEn
	}
	if in.DescAr != nil {
		m.Desc.Ar = *in.DescAr
	}
	if in.Price != nil {
		m.Price = *in.Price
	}

	if in.Poster != nil {
		s.deleteAsset(ctx, m.PosterImg, storage.ResourceImage)
		m.PosterImg = *in.Poster
	}
	if in.Video != nil {
		s.deleteAsset(ctx, m.VideoURL, storage.ResourceVideo)
		m.VideoURL = *in.Video
	}

	m.UpdatedAt = time.Now().UTC()

	if err := s.movies.Replace(ctx, m); err != nil {
		s.cleanupReplacements(ctx, in)
		return nil, err
	}

	s.invalidateListCache(ctx)
	return m, nil
}

// DeleteMovie removes both remote assets, then the record.
func (s *MovieService) DeleteMovie(ctx context.Context, id primitive.ObjectID) error {
	m, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMovieNotFound
	}

	s.deleteAsset(ctx, m.PosterImg, storage.ResourceImage)
	s.deleteAsset(ctx, m.VideoURL, storage.ResourceVideo)

	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *MovieService) deleteAsset(ctx context.Context, a models.MediaAsset, resourceType string) {
	if a.PublicID == "" {
		return
	}
	if err := s.assets.Delete(ctx, a.PublicID, resourceType); err != nil {
		log.Printf("[movies] asset cleanup %s: %v", a.PublicID, err)
	}
}

func (s *MovieService) cleanupReplacements(ctx context.Context, in UpdateMovieInput) {
	if in.Poster != nil {
		s.deleteAsset(ctx, *in.Poster, storage.ResourceImage)
	}
	if in.Video != nil {
		s.deleteAsset(ctx, *in.Video, storage.ResourceVideo)
	}
}

func (s *MovieService) invalidateListCache(ctx context.Context) {
	if err := cache.Del(ctx, listKey("en"), listKey("ar")); err != nil {
		log.Printf("[movies] cache invalidation: %v", err)
	}
}
