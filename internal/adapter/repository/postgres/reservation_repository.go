package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/seats_suggestions/internal/core/domain"
	"github.com/srgjo27/seats_suggestions/internal/core/ports"
)

type ReservationRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ ports.ReservationProvider = (*ReservationRepository)(nil)

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db, now: time.Now}
}

// GetReservations loads the pending and confirmed reservations of a performance.
func (r *ReservationRepository) GetReservations(ctx context.Context, performanceID uuid.UUID) ([]domain.Reservation, error) {
	query := `
	SELECT r.id, r.status, r.created_at, r.expires_at, s.row_label, s.seat_number
	FROM reservations r
	JOIN reservation_seats s ON s.reservation_id = r.id
	WHERE r.performance_id = $1 AND r.status = ANY($2)
	ORDER BY r.created_at, r.id, s.row_label, s.seat_number
	`

	statuses := pq.Array([]string{
		string(domain.ReservationPending),
		string(domain.ReservationConfirmed),
	})

	rows, err := r.db.QueryContext(ctx, query, performanceID, statuses)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var reservations []domain.Reservation
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id        uuid.UUID
			status    domain.ReservationStatus
			createdAt time.Time
			expiresAt sql.NullTime
			seat      domain.SeatRef
		)
		if err := rows.Scan(&id, &status, &createdAt, &expiresAt, &seat.Row, &seat.Position); err != nil {
			return nil, err
		}

		i, ok := index[id]
		if !ok {
			reservation := domain.Reservation{
				ID:            id,
				PerformanceID: performanceID,
				Status:        status,
				CreatedAt:     createdAt,
			}
			if expiresAt.Valid {
				reservation.ExpiresAt = &expiresAt.Time
			}
			reservations = append(reservations, reservation)
			i = len(reservations) - 1
			index[id] = i
		}
		reservations[i].Seats = append(reservations[i].Seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationRepository) GetOccupiedSeats(ctx context.Context, performanceID uuid.UUID) (domain.OccupiedSeats, error) {
	reservations, err := r.GetReservations(ctx, performanceID)
	if err != nil {
		return nil, err
	}

	return domain.OccupiedBy(reservations, r.now()), nil
}
