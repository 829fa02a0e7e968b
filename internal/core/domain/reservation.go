package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationExpired   ReservationStatus = "EXPIRED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

type Reservation struct {
	ID            uuid.UUID
	PerformanceID uuid.UUID
	Status        ReservationStatus
	Seats         []SeatRef
	CreatedAt     time.Time
	ExpiresAt     *time.Time
}

// Holds reports whether the reservation still occupies its seats at now.
func (r Reservation) Holds(now time.Time) bool {
	switch r.Status {
	case ReservationConfirmed:
		return true
	case ReservationPending:
		return r.ExpiresAt == nil || now.Before(*r.ExpiresAt)
	}
	return false
}

// OccupiedSeats is a point-in-time snapshot of the seats held for one performance.
type OccupiedSeats map[SeatRef]struct{}

func NewOccupiedSeats(refs ...SeatRef) OccupiedSeats {
	o := make(OccupiedSeats, len(refs))
	for _, ref := range refs {
		o[ref] = struct{}{}
	}
	return o
}

func (o OccupiedSeats) Contains(ref SeatRef) bool {
	_, ok := o[ref]
	return ok
}

// OccupiedBy returns the union of seats held by the given reservations at now.
func OccupiedBy(reservations []Reservation, now time.Time) OccupiedSeats {
	occupied := make(OccupiedSeats)
	for _, r := range reservations {
		if !r.Holds(now) {
			continue
		}
		for _, ref := range r.Seats {
			occupied[ref] = struct{}{}
		}
	}
	return occupied
}
