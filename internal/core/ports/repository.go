package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/seats_suggestions/internal/core/domain"
)

// LayoutProvider returns the seating layout of an auditorium. Unknown venues
// and unreachable sources fail with domain.ErrLayoutUnavailable.
type LayoutProvider interface {
	GetLayout(ctx context.Context, auditoriumID uuid.UUID) (domain.AuditoriumLayout, error)
}

// ReservationProvider returns the seats currently held for a performance. A
// performance without reservations yields an empty set, not an error.
type ReservationProvider interface {
	GetOccupiedSeats(ctx context.Context, performanceID uuid.UUID) (domain.OccupiedSeats, error)
}

// PerformanceDirectory resolves the auditorium a performance takes place in.
type PerformanceDirectory interface {
	AuditoriumFor(ctx context.Context, performanceID uuid.UUID) (uuid.UUID, error)
}
