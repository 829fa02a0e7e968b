package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/seats_suggestions/internal/core/domain"
	"github.com/srgjo27/seats_suggestions/internal/core/ports"
)

type AuditoriumRepository struct {
	db *sql.DB
}

var (
	_ ports.LayoutProvider       = (*AuditoriumRepository)(nil)
	_ ports.PerformanceDirectory = (*AuditoriumRepository)(nil)
)

func NewAuditoriumRepository(db *sql.DB) *AuditoriumRepository {
	return &AuditoriumRepository{db: db}
}

func (r *AuditoriumRepository) AuditoriumFor(ctx context.Context, performanceID uuid.UUID) (uuid.UUID, error) {
	query := `SELECT auditorium_id FROM performances WHERE id = $1`

	var auditoriumID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, performanceID).Scan(&auditoriumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrPerformanceNotFound, performanceID)
		}
		return uuid.Nil, err
	}

	return auditoriumID, nil
}

func (r *AuditoriumRepository) GetLayout(ctx context.Context, auditoriumID uuid.UUID) (domain.AuditoriumLayout, error) {
	layout := domain.AuditoriumLayout{ID: auditoriumID}

	queryHeader := `
	SELECT name, COALESCE(reference_row, '')
	FROM auditoriums
	WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, queryHeader, auditoriumID).Scan(&layout.Name, &layout.ReferenceRow)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AuditoriumLayout{}, fmt.Errorf("%w: auditorium %s not found", domain.ErrLayoutUnavailable, auditoriumID)
		}
		return domain.AuditoriumLayout{}, err
	}

	querySeats := `
	SELECT row_label, seat_number, physical, category
	FROM auditorium_seats
	WHERE auditorium_id = $1
	ORDER BY row_order, row_label, seat_number
	`

	rows, err := r.db.QueryContext(ctx, querySeats, auditoriumID)
	if err != nil {
		return domain.AuditoriumLayout{}, err
	}

	defer rows.Close()

	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(&seat.Row, &seat.Position, &seat.Physical, &seat.Category); err != nil {
			return domain.AuditoriumLayout{}, err
		}

		last := len(layout.Rows) - 1
		if last < 0 || layout.Rows[last].Name != seat.Row {
			layout.Rows = append(layout.Rows, domain.Row{Name: seat.Row})
			last++
		}
		layout.Rows[last].Seats = append(layout.Rows[last].Seats, seat)
	}

	if err := rows.Err(); err != nil {
		return domain.AuditoriumLayout{}, err
	}

	return layout, nil
}
