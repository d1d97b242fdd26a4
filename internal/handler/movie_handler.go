package handler

import (
	"net/http"
	"strconv"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/service"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieHandler struct {
	svc    *service.MovieService
	assets storage.Store
}

func NewMovieHandler(s *service.MovieService, assets storage.Store) *MovieHandler {
	return &MovieHandler{svc: s, assets: assets}
}

func movieID(r *http.Request, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, param))
	if err != nil {
		return primitive.NilObjectID, badInput("invalid movie id")
	}
	return id, nil
}

// @Summary List movies
// @Description Localized list; lang=ar selects Arabic with English fallback
// @Tags movies
// @Produce json
// @Param lang query string false "en|ar (default: en)"
// @Success 200 {array} models.MovieSummary
// @Router /api/movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.ListMovies(r.Context(), r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// @Summary Get movie
// @Tags movies
// @Produce json
// @Param id path string true "movie id"
// @Param lang query string false "en|ar (default: en)"
// @Success 200 {object} models.MovieDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	movie, err := h.svc.GetMovie(r.Context(), id, r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

type movieForm struct {
	TitleEn string  `validate:"required"`
	TitleAr string  `validate:"required"`
	DescEn  string  `validate:"required"`
	DescAr  string  `validate:"required"`
	Price   float64 `validate:"required,gt=0"`
}

// @Summary Create movie (admin)
// @Description Multipart fields title.en, title.ar, desc.en, desc.ar, price plus posterImg and videoUrl files, all mandatory
// @Tags movies
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param title.en formData string true "English title"
// @Param title.ar formData string true "Arabic title"
// @Param desc.en formData string true "English description"
// @Param desc.ar formData string true "Arabic description"
// @Param price formData number true "price, greater than zero"
// @Param posterImg formData file true "poster image"
// @Param videoUrl formData file true "trailer video"
// @Success 201 {object} models.MovieDoc
// @Failure 400 {object} map[string]string
// @Router /api/movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMovieUpload); err != nil {
		badRequest(w, "could not parse form data")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		badRequest(w, "price must be a number")
		return
	}

	form := movieForm{
		TitleEn: r.FormValue("title.en"),
		TitleAr: r.FormValue("title.ar"),
		DescEn:  r.FormValue("desc.en"),
		DescAr:  r.FormValue("desc.ar"),
		Price:   price,
	}
	if err := validate.Struct(form); err != nil {
		badRequest(w, err.Error())
		return
	}

	poster, err := uploadField(r.Context(), r, h.assets, "posterImg", storage.FolderPosters, storage.ResourceImage, isImage)
	if err != nil {
		writeError(w, err)
		return
	}
	if poster == nil {
		badRequest(w, "posterImg is required")
		return
	}

	video, err := uploadField(r.Context(), r, h.assets, "videoUrl", storage.FolderVideos, storage.ResourceVideo, isVideo)
	if err == nil && video == nil {
		err = badInput("videoUrl is required")
	}
	if err != nil {
		// the poster already made it to the host
		_ = h.assets.Delete(r.Context(), poster.PublicID, storage.ResourceImage)
		writeError(w, err)
		return
	}

	movie, err := h.svc.CreateMovie(r.Context(), service.CreateMovieInput{
		Title:     models.Localized{En: form.TitleEn, Ar: form.TitleAr},
		Desc:      models.Localized{En: form.DescEn, Ar: form.DescAr},
		Price:     form.Price,
		Poster:    *poster,
		Video:     *video,
		CreatedBy: UserIDFromContext(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, movie)
}

// @Summary Update movie (admin)
// @Description Partial replace; a new posterImg or videoUrl file replaces the stored asset and deletes the old one
// @Tags movies
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param id path string true "movie id"
// @Param title.en formData string false "English title"
// @Param title.ar formData string false "Arabic title"
// @Param desc.en formData string false "English description"
// @Param desc.ar formData string false "Arabic description"
// @Param price formData number false "price, greater than zero"
// @Param posterImg formData file false "replacement poster image"
// @Param videoUrl formData file false "replacement trailer video"
// @Success 200 {object} models.MovieDoc
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/movies/{id} [put]
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxMovieUpload); err != nil {
		badRequest(w, "could not parse form data")
		return
	}

	in := service.UpdateMovieInput{
		TitleEn: formValue(r, "title.en"),
		TitleAr: formValue(r, "title.ar"),
		DescEn:  formValue(r, "desc.en"),
		DescAr:  formValue(r, "desc.ar"),
	}
	if raw := formValue(r, "price"); raw != nil {
		price, err := strconv.ParseFloat(*raw, 64)
		if err != nil || price <= 0 {
			badRequest(w, "price must be a positive number")
			return
		}
		in.Price = &price
	}

	in.Poster, err = uploadField(r.Context(), r, h.assets, "posterImg", storage.FolderPosters, storage.ResourceImage, isImage)
	if err != nil {
		writeError(w, err)
		return
	}
	in.Video, err = uploadField(r.Context(), r, h.assets, "videoUrl", storage.FolderVideos, storage.ResourceVideo, isVideo)
	if err != nil {
		if in.Poster != nil {
			_ = h.assets.Delete(r.Context(), in.Poster.PublicID, storage.ResourceImage)
		}
		writeError(w, err)
		return
	}

	movie, err := h.svc.UpdateMovie(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// @Summary Delete movie (admin)
// @Description Deletes the poster and video from the asset host, then the record
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param id path string true "movie id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/movies/{id} [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.svc.DeleteMovie(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	message(w, http.StatusOK, "Deleted successfully")
}
