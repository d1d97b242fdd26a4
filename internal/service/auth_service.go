package service

import (
	"context"
	"strings"
	"time"

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

type SignupData struct {
	Username string
	Email    string
	Password string
	Image    *models.MediaAsset
}

// Register creates a user with a one-way hashed password and returns it
// together with a fresh token.
func (s *AuthService) Register(ctx context.Context, data SignupData) (*models.UserDoc, string, error) {
	email := strings.ToLower(data.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	u := &models.UserDoc{
		Username:   data.Username,
		Email:      email,
		Password:   string(hash),
		ImgProfile: data.Image,
		Role:       models.RoleUser,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.token(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.UserDoc, string, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.token(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) token(u *models.UserDoc) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID.Hex(),
		"role": u.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
