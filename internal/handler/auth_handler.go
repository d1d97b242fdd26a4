package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/service"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type AuthHandler struct {
	svc    *service.AuthService
	assets storage.Store
}

func NewAuthHandler(s *service.AuthService, assets storage.Store) *AuthHandler {
	return &AuthHandler{svc: s, assets: assets}
}

type signupForm struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type authResponse struct {
	ID         primitive.ObjectID `json:"_id"`
	Username   string             `json:"username"`
	Email      string             `json:"email"`
	ImgProfile *models.MediaAsset `json:"imgProfile,omitempty"`
	Role       string             `json:"role"`
	Token      string             `json:"token"`
}

func toAuthResponse(u *models.UserDoc, token string) authResponse {
	return authResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		ImgProfile: u.ImgProfile,
		Role:       u.Role,
		Token:      token,
	}
}

// @Summary Sign up
// @Description Creates a user; multipart with an optional profile image
// @Tags auth
// @Accept mpfd
// @Produce json
// @Param username formData string true "username"
// @Param email formData string true "email"
// @Param password formData string true "password (min 6)"
// @Param imgProfile formData file false "profile image"
// @Success 201 {object} authResponse
// @Failure 400 {object} map[string]string
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProfileUpload+formFieldHeadroom)
	if err := r.ParseMultipartForm(maxProfileUpload); err != nil {
		badRequest(w, "could not parse form data")
		return
	}

	form := signupForm{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		badRequest(w, err.Error())
		return
	}

	img, err := uploadField(r.Context(), r, h.assets, "imgProfile", storage.FolderProfiles, storage.ResourceImage, isImage)
	if err != nil {
		writeError(w, err)
		return
	}

	u, token, err := h.svc.Register(r.Context(), service.SignupData{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Image:    img,
	})
	if err != nil {
		if img != nil {
			// keep the host clean when the account was never created
			if derr := h.assets.Delete(r.Context(), img.PublicID, storage.ResourceImage); derr != nil {
				log.Printf("[auth] profile image cleanup %s: %v", img.PublicID, derr)
			}
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(u, token))
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signinRequest true "credentials"
// @Success 200 {object} authResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/signin [post]
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid body")
		return
	}
	if err := validate.Struct(req); err != nil {
		badRequest(w, err.Error())
		return
	}

	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(u, token))
}
