package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/service"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: s}
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// @Summary Add review
// @Description One review per user per movie; recomputes the movie's average rating
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param movieId path string true "movie id"
// @Param body body reviewRequest true "review"
// @Success 201 {object} models.ReviewView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/reviews/{movieId} [post]
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r, "movieId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid body")
		return
	}
	if err := validate.Struct(req); err != nil {
		badRequest(w, err.Error())
		return
	}

	review, err := h.svc.AddReview(r.Context(), id, UserIDFromContext(r.Context()), req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}
