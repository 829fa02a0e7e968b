package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type SuggestionRequest struct {
	PerformanceID uuid.UUID
	PartySize     int
	// Category optionally restricts the suggestion to seats of one category.
	Category SeatCategory
}

func (r SuggestionRequest) Validate() error {
	if r.PerformanceID == uuid.Nil {
		return fmt.Errorf("%w: performance id is required", ErrInvalidRequest)
	}
	if r.PartySize <= 0 {
		return fmt.Errorf("%w: party size must be at least 1, got %d", ErrInvalidRequest, r.PartySize)
	}
	if r.Category != "" && !r.Category.IsValid() {
		return fmt.Errorf("%w: unknown seat category %q", ErrInvalidRequest, r.Category)
	}
	return nil
}

type SuggestionStatus string

const (
	SuggestionSuggested      SuggestionStatus = "SUGGESTED"
	SuggestionNoAvailability SuggestionStatus = "NO_AVAILABILITY"
)

// SuggestionResult is either a contiguous block of seats in one row or
// NoAvailability. Seats is empty unless Status is SuggestionSuggested.
type SuggestionResult struct {
	Status SuggestionStatus
	Seats  []Seat
}

func Suggested(seats []Seat) SuggestionResult {
	return SuggestionResult{Status: SuggestionSuggested, Seats: seats}
}

func NoAvailability() SuggestionResult {
	return SuggestionResult{Status: SuggestionNoAvailability}
}

func (r SuggestionResult) IsSuggested() bool {
	return r.Status == SuggestionSuggested
}

func (r SuggestionResult) Refs() []SeatRef {
	refs := make([]SeatRef, len(r.Seats))
	for i, seat := range r.Seats {
		refs[i] = seat.Ref()
	}
	return refs
}
