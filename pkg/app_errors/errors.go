package apperrors

import "errors"

var (
	// booking
	ErrEmptyReservation = errors.New("reservation must contain at least one ticket")
	ErrSeatOutOfRange   = errors.New("seat out of range")
	ErrSeatAlreadyTaken = errors.New("seat already taken")

	// not found
	ErrActorNotFound       = errors.New("actor not found")
	ErrGenreNotFound       = errors.New("genre not found")
	ErrPlayNotFound        = errors.New("play not found")
	ErrHallNotFound        = errors.New("theatre hall not found")
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")

	// conflicts
	ErrHallNameTaken = errors.New("theatre hall name already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// auth
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")

	// generic
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
