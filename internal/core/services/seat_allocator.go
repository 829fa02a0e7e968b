package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/srgjo27/seats_suggestions/internal/core/domain"
	"github.com/srgjo27/seats_suggestions/internal/core/ports"
)

// SeatAllocator decides which seats to propose for a party. It holds no
// per-request state and is safe for concurrent use.
type SeatAllocator struct {
	performances ports.PerformanceDirectory
	layouts      ports.LayoutProvider
	reservations ports.ReservationProvider
	buffer       int
}

var _ ports.SuggestionRequester = (*SeatAllocator)(nil)

type SeatAllocatorOption func(*SeatAllocator)

// WithIsolationBuffer sets how many seats must separate a suggestion from an
// occupied seat. Zero disables isolation; negative values are ignored.
func WithIsolationBuffer(n int) SeatAllocatorOption {
	return func(a *SeatAllocator) {
		if n >= 0 {
			a.buffer = n
		}
	}
}

func NewSeatAllocator(
	performances ports.PerformanceDirectory,
	layouts ports.LayoutProvider,
	reservations ports.ReservationProvider,
	opts ...SeatAllocatorOption,
) *SeatAllocator {
	a := &SeatAllocator{
		performances: performances,
		layouts:      layouts,
		reservations: reservations,
		buffer:       domain.DefaultIsolationBuffer,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *SeatAllocator) SuggestSeats(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResult, error) {
	results, err := a.SuggestAlternatives(ctx, req, 1)
	if err != nil {
		return domain.SuggestionResult{}, err
	}
	if len(results) == 0 {
		return domain.NoAvailability(), nil
	}
	return results[0], nil
}

// SuggestAlternatives returns up to limit pairwise disjoint suggestions, best
// first. An empty slice means no availability.
func (a *SeatAllocator) SuggestAlternatives(ctx context.Context, req domain.SuggestionRequest, limit int) ([]domain.SuggestionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", domain.ErrInvalidRequest, limit)
	}

	auditoriumID, err := a.performances.AuditoriumFor(ctx, req.PerformanceID)
	if err != nil {
		return nil, unavailable(domain.ErrLayoutUnavailable, err)
	}

	layout, err := a.layouts.GetLayout(ctx, auditoriumID)
	if err != nil {
		return nil, unavailable(domain.ErrLayoutUnavailable, err)
	}
	if err := layout.Validate(); err != nil {
		return nil, unavailable(domain.ErrLayoutUnavailable, err)
	}

	occupied, err := a.reservations.GetOccupiedSeats(ctx, req.PerformanceID)
	if err != nil {
		return nil, unavailable(domain.ErrReservationDataUnavailable, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	availability := domain.ComputeAvailabilityWithBuffer(layout, occupied, a.buffer)
	candidates := findCandidates(layout, availability, req)
	rankCandidates(candidates)

	return pickDisjoint(layout, candidates, limit), nil
}

// unavailable tags a collaborator failure with its kind unless the provider
// already did.
func unavailable(kind, err error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

type candidate struct {
	row        int
	start      int // index of the first seat in layout.Rows[row].Seats
	size       int
	rowDist    int
	centerDist int
}

// findCandidates slides a window of the party size over every maximal run of
// free seats in each row.
func findCandidates(layout domain.AuditoriumLayout, availability domain.Availability, req domain.SuggestionRequest) []candidate {
	var candidates []candidate
	ref := layout.ReferenceRowIndex()

	for r, row := range layout.Rows {
		mid2 := row.Midpoint2()
		runStart := -1

		flush := func(end int) {
			if runStart < 0 {
				return
			}
			for s := runStart; s+req.PartySize <= end; s++ {
				first := row.Seats[s].Position
				last := row.Seats[s+req.PartySize-1].Position
				candidates = append(candidates, candidate{
					row:        r,
					start:      s,
					size:       req.PartySize,
					rowDist:    abs(r - ref),
					centerDist: abs(first + last - mid2),
				})
			}
			runStart = -1
		}

		for i, seat := range row.Seats {
			eligible := seat.Physical &&
				availability.IsFree(seat.Ref()) &&
				(req.Category == "" || seat.Category == req.Category)
			if !eligible {
				flush(i)
				continue
			}
			if runStart >= 0 && !row.Adjacent(i-1) {
				flush(i)
			}
			if runStart < 0 {
				runStart = i
			}
		}
		flush(len(row.Seats))
	}
	return candidates
}

func rankCandidates(candidates []candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.rowDist != b.rowDist {
			return a.rowDist < b.rowDist
		}
		if a.centerDist != b.centerDist {
			return a.centerDist < b.centerDist
		}
		if a.row != b.row {
			return a.row < b.row
		}
		return a.start < b.start
	})
}

func pickDisjoint(layout domain.AuditoriumLayout, ranked []candidate, limit int) []domain.SuggestionResult {
	results := make([]domain.SuggestionResult, 0, min(limit, len(ranked)))
	taken := make(map[domain.SeatRef]struct{})

next:
	for _, c := range ranked {
		if len(results) == limit {
			break
		}
		block := layout.Rows[c.row].Seats[c.start : c.start+c.size]
		for _, seat := range block {
			if _, ok := taken[seat.Ref()]; ok {
				continue next
			}
		}

		seats := make([]domain.Seat, len(block))
		copy(seats, block)
		for _, seat := range seats {
			taken[seat.Ref()] = struct{}{}
		}
		results = append(results, domain.Suggested(seats))
	}
	return results
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
