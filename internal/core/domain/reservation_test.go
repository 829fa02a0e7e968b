package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/seats_suggestions/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOccupiedBy(t *testing.T) {
	now := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)
	performanceID := uuid.New()

	reservations := []domain.Reservation{
		{ID: uuid.New(), PerformanceID: performanceID, Status: domain.ReservationConfirmed, Seats: []domain.SeatRef{ref("A", 1), ref("A", 2)}},
		{ID: uuid.New(), PerformanceID: performanceID, Status: domain.ReservationPending, ExpiresAt: &future, Seats: []domain.SeatRef{ref("B", 1)}},
		{ID: uuid.New(), PerformanceID: performanceID, Status: domain.ReservationPending, ExpiresAt: &past, Seats: []domain.SeatRef{ref("C", 1)}},
		{ID: uuid.New(), PerformanceID: performanceID, Status: domain.ReservationCancelled, Seats: []domain.SeatRef{ref("D", 1)}},
		{ID: uuid.New(), PerformanceID: performanceID, Status: domain.ReservationConfirmed, Seats: []domain.SeatRef{ref("A", 2)}},
	}

	occupied := domain.OccupiedBy(reservations, now)

	assert.Equal(t, domain.NewOccupiedSeats(ref("A", 1), ref("A", 2), ref("B", 1)), occupied)
}

func TestOccupiedBy_NoReservations(t *testing.T) {
	occupied := domain.OccupiedBy(nil, time.Now())

	assert.NotNil(t, occupied)
	assert.Empty(t, occupied)
	assert.False(t, occupied.Contains(ref("A", 1)))
}

func TestReservation_HoldsPendingWithoutExpiry(t *testing.T) {
	r := domain.Reservation{Status: domain.ReservationPending}
	assert.True(t, r.Holds(time.Now()))

	r.Status = domain.ReservationExpired
	assert.False(t, r.Holds(time.Now()))
}
