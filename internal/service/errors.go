package service

import "errors"

// Sentinel errors the handlers map onto the HTTP taxonomy. Messages are
// the ones the client already displays.
var (
	ErrEmailTaken         = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrMovieNotFound      = errors.New("Movie not found")
	ErrDuplicateReview    = errors.New("You already reviewed this movie")
)
