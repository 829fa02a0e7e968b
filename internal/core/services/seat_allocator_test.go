package services_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/srgjo27/seats_suggestions/internal/core/domain"
	"github.com/srgjo27/seats_suggestions/internal/core/ports/mocks"
	"github.com/srgjo27/seats_suggestions/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRow(name string, seats int) domain.Row {
	row := domain.Row{Name: name}
	for p := 1; p <= seats; p++ {
		row.Seats = append(row.Seats, domain.Seat{Row: name, Position: p, Physical: true, Category: domain.CategoryStandard})
	}
	return row
}

func ref(row string, pos int) domain.SeatRef {
	return domain.SeatRef{Row: row, Position: pos}
}

// venue is an in-memory implementation of the three driven ports.
type venue struct {
	auditoriumID uuid.UUID
	layout       domain.AuditoriumLayout
	occupied     domain.OccupiedSeats
}

func (v venue) AuditoriumFor(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
	return v.auditoriumID, nil
}

func (v venue) GetLayout(_ context.Context, _ uuid.UUID) (domain.AuditoriumLayout, error) {
	return v.layout, nil
}

func (v venue) GetOccupiedSeats(_ context.Context, _ uuid.UUID) (domain.OccupiedSeats, error) {
	return v.occupied, nil
}

func suggest(t *testing.T, layout domain.AuditoriumLayout, occupied domain.OccupiedSeats, partySize int, opts ...services.SeatAllocatorOption) domain.SuggestionResult {
	t.Helper()
	v := venue{auditoriumID: uuid.New(), layout: layout, occupied: occupied}
	allocator := services.NewSeatAllocator(v, v, v, opts...)

	result, err := allocator.SuggestSeats(context.Background(), domain.SuggestionRequest{
		PerformanceID: uuid.New(),
		PartySize:     partySize,
	})
	require.NoError(t, err)
	return result
}

func assertValidSuggestion(t *testing.T, layout domain.AuditoriumLayout, occupied domain.OccupiedSeats, partySize int, result domain.SuggestionResult) {
	t.Helper()
	if !result.IsSuggested() {
		return
	}
	require.Len(t, result.Seats, partySize)

	view := domain.ComputeAvailability(layout, occupied)
	first := result.Seats[0]
	for i, seat := range result.Seats {
		assert.Equal(t, first.Row, seat.Row, "all seats in one row")
		assert.Equal(t, first.Position+i, seat.Position, "contiguous positions")
		assert.True(t, seat.Physical)
		assert.False(t, occupied.Contains(seat.Ref()), "seat %s is occupied", seat.Ref())
		assert.False(t, occupied.Contains(ref(seat.Row, seat.Position-1)), "seat %s has an occupied left neighbour", seat.Ref())
		assert.False(t, occupied.Contains(ref(seat.Row, seat.Position+1)), "seat %s has an occupied right neighbour", seat.Ref())
		assert.Equal(t, domain.SeatFree, view[seat.Ref()])
	}
}

func TestSuggestSeats_AvoidsNeighboursOfOccupiedSeat(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 10)}}
	occupied := domain.NewOccupiedSeats(ref("A", 5))

	result := suggest(t, layout, occupied, 2)

	require.True(t, result.IsSuggested())
	assert.Equal(t, []domain.SeatRef{ref("A", 7), ref("A", 8)}, result.Refs())
	assertValidSuggestion(t, layout, occupied, 2, result)
}

func TestSuggestSeats_NoRunLongEnough(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("B", 6)}}
	occupied := domain.NewOccupiedSeats(ref("B", 3), ref("B", 4))

	assert.Equal(t, domain.NoAvailability(), suggest(t, layout, occupied, 3))
	assert.Equal(t, domain.NoAvailability(), suggest(t, layout, occupied, 2))

	single := suggest(t, layout, occupied, 1)
	assert.Equal(t, []domain.SeatRef{ref("B", 1)}, single.Refs())
}

func TestSuggestSeats_FullRowMatch(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 4)}}

	result := suggest(t, layout, domain.NewOccupiedSeats(), 4)

	want := domain.Suggested(layout.Rows[0].Seats)
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("unexpected suggestion (-want +got):\n%s", diff)
	}
}

func TestSuggestSeats_EmptyAuditorium(t *testing.T) {
	for _, size := range []int{1, 2, 10} {
		assert.Equal(t, domain.NoAvailability(), suggest(t, domain.AuditoriumLayout{}, domain.NewOccupiedSeats(), size))
	}
}

func TestSuggestSeats_PartyLargerThanAnyRow(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 3), newRow("B", 3)}}

	assert.Equal(t, domain.NoAvailability(), suggest(t, layout, domain.NewOccupiedSeats(), 4))
}

func TestSuggestSeats_NeverSpansGap(t *testing.T) {
	row := newRow("A", 7)
	row.Seats[3].Physical = false
	layout := domain.AuditoriumLayout{Rows: []domain.Row{row}}

	result := suggest(t, layout, domain.NewOccupiedSeats(), 3)
	assert.Equal(t, []domain.SeatRef{ref("A", 1), ref("A", 2), ref("A", 3)}, result.Refs())

	assert.Equal(t, domain.NoAvailability(), suggest(t, layout, domain.NewOccupiedSeats(), 4))
}

func TestSuggestSeats_FullyOccupiedRowContributesNothing(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 3), newRow("B", 3), newRow("C", 3)}}
	occupied := domain.NewOccupiedSeats(ref("B", 1), ref("B", 2), ref("B", 3))

	result := suggest(t, layout, occupied, 3)

	assert.Equal(t, []domain.SeatRef{ref("A", 1), ref("A", 2), ref("A", 3)}, result.Refs())
}

func TestSuggestSeats_PrefersReferenceRow(t *testing.T) {
	rows := []domain.Row{newRow("A", 6), newRow("B", 6), newRow("C", 6), newRow("D", 6), newRow("E", 6)}

	middle := suggest(t, domain.AuditoriumLayout{Rows: rows}, domain.NewOccupiedSeats(), 2)
	assert.Equal(t, []domain.SeatRef{ref("C", 3), ref("C", 4)}, middle.Refs())

	configured := suggest(t, domain.AuditoriumLayout{Rows: rows, ReferenceRow: "D"}, domain.NewOccupiedSeats(), 2)
	assert.Equal(t, []domain.SeatRef{ref("D", 3), ref("D", 4)}, configured.Refs())
}

func TestSuggestSeats_EqualRowDistanceFallsBackToCentering(t *testing.T) {
	rows := []domain.Row{newRow("A", 6), newRow("B", 6), newRow("C", 6)}
	// B is full; A and C are equally far from B. C has a centered pair, A only an edge pair.
	occupied := domain.NewOccupiedSeats(
		ref("B", 1), ref("B", 2), ref("B", 3), ref("B", 4), ref("B", 5), ref("B", 6),
		ref("A", 3),
	)
	layout := domain.AuditoriumLayout{Rows: rows}

	result := suggest(t, layout, occupied, 2)

	assert.Equal(t, []domain.SeatRef{ref("C", 3), ref("C", 4)}, result.Refs())
}

func TestSuggestSeats_TieBreaksOnRowThenPosition(t *testing.T) {
	rows := []domain.Row{newRow("A", 4), newRow("B", 4), newRow("C", 4)}
	occupied := domain.NewOccupiedSeats(ref("B", 1), ref("B", 2), ref("B", 3), ref("B", 4))
	layout := domain.AuditoriumLayout{Rows: rows}

	result := suggest(t, layout, occupied, 1)

	assert.Equal(t, []domain.SeatRef{ref("A", 2)}, result.Refs())
}

func TestSuggestSeats_WithIsolationBuffer(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 10)}}
	occupied := domain.NewOccupiedSeats(ref("A", 5))

	result := suggest(t, layout, occupied, 2, services.WithIsolationBuffer(2))
	assert.Equal(t, []domain.SeatRef{ref("A", 8), ref("A", 9)}, result.Refs())

	adjacent := suggest(t, layout, occupied, 2, services.WithIsolationBuffer(0))
	assert.Equal(t, []domain.SeatRef{ref("A", 6), ref("A", 7)}, adjacent.Refs())
}

func TestSuggestSeats_CategoryFilter(t *testing.T) {
	row := newRow("A", 8)
	for i := 5; i < 8; i++ {
		row.Seats[i].Category = domain.CategoryAccessible
	}
	v := venue{auditoriumID: uuid.New(), layout: domain.AuditoriumLayout{Rows: []domain.Row{row}}, occupied: domain.NewOccupiedSeats()}
	allocator := services.NewSeatAllocator(v, v, v)

	result, err := allocator.SuggestSeats(context.Background(), domain.SuggestionRequest{
		PerformanceID: uuid.New(),
		PartySize:     2,
		Category:      domain.CategoryAccessible,
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.SeatRef{ref("A", 6), ref("A", 7)}, result.Refs())

	none, err := allocator.SuggestSeats(context.Background(), domain.SuggestionRequest{
		PerformanceID: uuid.New(),
		PartySize:     4,
		Category:      domain.CategoryAccessible,
	})
	require.NoError(t, err)
	assert.False(t, none.IsSuggested())
}

func TestSuggestAlternatives(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 6), newRow("B", 6)}}
	v := venue{auditoriumID: uuid.New(), layout: layout, occupied: domain.NewOccupiedSeats(ref("A", 1))}
	allocator := services.NewSeatAllocator(v, v, v)
	req := domain.SuggestionRequest{PerformanceID: uuid.New(), PartySize: 2}

	results, err := allocator.SuggestAlternatives(context.Background(), req, 10)
	require.NoError(t, err)

	var got [][]domain.SeatRef
	seen := make(map[domain.SeatRef]bool)
	for _, r := range results {
		assertValidSuggestion(t, layout, v.occupied, 2, r)
		for _, s := range r.Refs() {
			assert.False(t, seen[s], "seat %s suggested twice", s)
			seen[s] = true
		}
		got = append(got, r.Refs())
	}

	want := [][]domain.SeatRef{
		{ref("A", 3), ref("A", 4)},
		{ref("A", 5), ref("A", 6)},
		{ref("B", 3), ref("B", 4)},
		{ref("B", 1), ref("B", 2)},
		{ref("B", 5), ref("B", 6)},
	}
	assert.Equal(t, want, got)

	best, err := allocator.SuggestSeats(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, results[0], best)

	limited, err := allocator.SuggestAlternatives(context.Background(), req, 2)
	require.NoError(t, err)
	assert.Equal(t, results[:2], limited)
}

func TestSuggestAlternatives_LimitAboveCandidateCount(t *testing.T) {
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 4)}}
	v := venue{auditoriumID: uuid.New(), layout: layout, occupied: domain.NewOccupiedSeats()}
	allocator := services.NewSeatAllocator(v, v, v)
	req := domain.SuggestionRequest{PerformanceID: uuid.New(), PartySize: 1}

	results, err := allocator.SuggestAlternatives(context.Background(), req, math.MaxInt)

	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, []domain.SeatRef{ref("A", 2)}, results[0].Refs())
}

func TestSuggestAlternatives_InvalidLimit(t *testing.T) {
	allocator := services.NewSeatAllocator(
		mocks.NewPerformanceDirectory(t),
		mocks.NewLayoutProvider(t),
		mocks.NewReservationProvider(t),
	)

	_, err := allocator.SuggestAlternatives(context.Background(), domain.SuggestionRequest{PerformanceID: uuid.New(), PartySize: 1}, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSuggestSeats_Success(t *testing.T) {
	mockPerformances := mocks.NewPerformanceDirectory(t)
	mockLayouts := mocks.NewLayoutProvider(t)
	mockReservations := mocks.NewReservationProvider(t)

	allocator := services.NewSeatAllocator(mockPerformances, mockLayouts, mockReservations)

	ctx := context.Background()
	performanceID := uuid.New()
	auditoriumID := uuid.New()
	layout := domain.AuditoriumLayout{ID: auditoriumID, Rows: []domain.Row{newRow("A", 5)}}

	mockPerformances.On("AuditoriumFor", ctx, performanceID).Return(auditoriumID, nil)
	mockLayouts.On("GetLayout", ctx, auditoriumID).Return(layout, nil)
	mockReservations.On("GetOccupiedSeats", ctx, performanceID).Return(domain.NewOccupiedSeats(ref("A", 1)), nil)

	result, err := allocator.SuggestSeats(ctx, domain.SuggestionRequest{PerformanceID: performanceID, PartySize: 2})

	assert.NoError(t, err)
	assert.Equal(t, []domain.SeatRef{ref("A", 3), ref("A", 4)}, result.Refs())
}

func TestSuggestSeats_InvalidRequestSkipsCollaborators(t *testing.T) {
	allocator := services.NewSeatAllocator(
		mocks.NewPerformanceDirectory(t),
		mocks.NewLayoutProvider(t),
		mocks.NewReservationProvider(t),
	)

	for _, req := range []domain.SuggestionRequest{
		{PerformanceID: uuid.New(), PartySize: 0},
		{PerformanceID: uuid.New(), PartySize: -1},
		{PerformanceID: uuid.Nil, PartySize: 2},
	} {
		result, err := allocator.SuggestSeats(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.Empty(t, result.Seats)
	}
}

func TestSuggestSeats_CollaboratorFailures(t *testing.T) {
	performanceID := uuid.New()
	auditoriumID := uuid.New()
	boom := errors.New("connection refused")
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 5)}}

	tests := []struct {
		name       string
		setupMocks func(p *mocks.PerformanceDirectory, l *mocks.LayoutProvider, r *mocks.ReservationProvider)
		wantKind   error
		wantCause  error
	}{
		{
			name: "unknown performance",
			setupMocks: func(p *mocks.PerformanceDirectory, _ *mocks.LayoutProvider, _ *mocks.ReservationProvider) {
				p.On("AuditoriumFor", mock.Anything, performanceID).Return(uuid.Nil, domain.ErrPerformanceNotFound)
			},
			wantKind:  domain.ErrLayoutUnavailable,
			wantCause: domain.ErrPerformanceNotFound,
		},
		{
			name: "layout source unreachable",
			setupMocks: func(p *mocks.PerformanceDirectory, l *mocks.LayoutProvider, _ *mocks.ReservationProvider) {
				p.On("AuditoriumFor", mock.Anything, performanceID).Return(auditoriumID, nil)
				l.On("GetLayout", mock.Anything, auditoriumID).Return(domain.AuditoriumLayout{}, boom)
			},
			wantKind:  domain.ErrLayoutUnavailable,
			wantCause: boom,
		},
		{
			name: "malformed layout",
			setupMocks: func(p *mocks.PerformanceDirectory, l *mocks.LayoutProvider, _ *mocks.ReservationProvider) {
				p.On("AuditoriumFor", mock.Anything, performanceID).Return(auditoriumID, nil)
				l.On("GetLayout", mock.Anything, auditoriumID).Return(domain.AuditoriumLayout{
					Rows: []domain.Row{newRow("A", 2), newRow("A", 2)},
				}, nil)
			},
			wantKind:  domain.ErrLayoutUnavailable,
			wantCause: domain.ErrInvalidLayout,
		},
		{
			name: "reservation source unreachable",
			setupMocks: func(p *mocks.PerformanceDirectory, l *mocks.LayoutProvider, r *mocks.ReservationProvider) {
				p.On("AuditoriumFor", mock.Anything, performanceID).Return(auditoriumID, nil)
				l.On("GetLayout", mock.Anything, auditoriumID).Return(layout, nil)
				r.On("GetOccupiedSeats", mock.Anything, performanceID).Return(nil, boom)
			},
			wantKind:  domain.ErrReservationDataUnavailable,
			wantCause: boom,
		},
		{
			name: "provider already tagged the failure",
			setupMocks: func(p *mocks.PerformanceDirectory, l *mocks.LayoutProvider, r *mocks.ReservationProvider) {
				p.On("AuditoriumFor", mock.Anything, performanceID).Return(auditoriumID, nil)
				l.On("GetLayout", mock.Anything, auditoriumID).Return(layout, nil)
				r.On("GetOccupiedSeats", mock.Anything, performanceID).Return(nil, domain.ErrReservationDataUnavailable)
			},
			wantKind:  domain.ErrReservationDataUnavailable,
			wantCause: domain.ErrReservationDataUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mocks.NewPerformanceDirectory(t)
			l := mocks.NewLayoutProvider(t)
			r := mocks.NewReservationProvider(t)
			tt.setupMocks(p, l, r)

			allocator := services.NewSeatAllocator(p, l, r)
			result, err := allocator.SuggestSeats(context.Background(), domain.SuggestionRequest{PerformanceID: performanceID, PartySize: 2})

			assert.ErrorIs(t, err, tt.wantKind)
			assert.ErrorIs(t, err, tt.wantCause)
			assert.Empty(t, result.Seats)
		})
	}
}

func TestSuggestSeats_Cancellation(t *testing.T) {
	performanceID := uuid.New()
	auditoriumID := uuid.New()
	layout := domain.AuditoriumLayout{Rows: []domain.Row{newRow("A", 5)}}

	t.Run("provider call cancelled", func(t *testing.T) {
		p := mocks.NewPerformanceDirectory(t)
		l := mocks.NewLayoutProvider(t)
		r := mocks.NewReservationProvider(t)

		ctx, cancel := context.WithCancel(context.Background())
		p.On("AuditoriumFor", mock.Anything, performanceID).Return(auditoriumID, nil)
		l.On("GetLayout", mock.Anything, auditoriumID).Return(layout, nil)
		r.On("GetOccupiedSeats", mock.Anything, performanceID).
			Run(func(mock.Arguments) { cancel() }).
			Return(nil, context.Canceled)

		result, err := services.NewSeatAllocator(p, l, r).SuggestSeats(ctx, domain.SuggestionRequest{PerformanceID: performanceID, PartySize: 2})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, result.Seats)
	})

	t.Run("cancelled after fetch", func(t *testing.T) {
		p := mocks.NewPerformanceDirectory(t)
		l := mocks.NewLayoutProvider(t)
		r := mocks.NewReservationProvider(t)

		ctx, cancel := context.WithCancel(context.Background())
		p.On("AuditoriumFor", mock.Anything, performanceID).Return(auditoriumID, nil)
		l.On("GetLayout", mock.Anything, auditoriumID).Return(layout, nil)
		r.On("GetOccupiedSeats", mock.Anything, performanceID).
			Run(func(mock.Arguments) { cancel() }).
			Return(domain.NewOccupiedSeats(), nil)

		result, err := services.NewSeatAllocator(p, l, r).SuggestSeats(ctx, domain.SuggestionRequest{PerformanceID: performanceID, PartySize: 2})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, result.Seats)
	})
}

func randomVenue(rng *rand.Rand) (domain.AuditoriumLayout, domain.OccupiedSeats) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	layout := domain.AuditoriumLayout{}
	occupied := domain.NewOccupiedSeats()

	for _, name := range names[:rng.Intn(len(names)+1)] {
		row := newRow(name, 1+rng.Intn(14))
		for i := range row.Seats {
			switch n := rng.Intn(10); {
			case n == 0:
				row.Seats[i].Physical = false
			case n < 3:
				occupied[row.Seats[i].Ref()] = struct{}{}
			}
		}
		layout.Rows = append(layout.Rows, row)
	}
	return layout, occupied
}

func TestSuggestSeats_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		layout, occupied := randomVenue(rng)
		infeasibleFrom := 0

		for size := 1; size <= 8; size++ {
			result := suggest(t, layout, occupied, size)
			assertValidSuggestion(t, layout, occupied, size, result)

			again := suggest(t, layout, occupied, size)
			assert.Equal(t, result, again, "suggestions must be deterministic")

			if !result.IsSuggested() && infeasibleFrom == 0 {
				infeasibleFrom = size
			}
			if infeasibleFrom > 0 {
				assert.False(t, result.IsSuggested(), "party of %d fits although %d did not", size, infeasibleFrom)
			}
		}
	}
}
