package domain

import "errors"

var (
	ErrInvalidRequest             = errors.New("invalid suggestion request")
	ErrLayoutUnavailable          = errors.New("auditorium layout unavailable")
	ErrReservationDataUnavailable = errors.New("reservation data unavailable")
	ErrPerformanceNotFound        = errors.New("performance not found")
	ErrInvalidLayout              = errors.New("invalid auditorium layout")
)
