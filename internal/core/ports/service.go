package ports

import (
	"context"

	"github.com/srgjo27/seats_suggestions/internal/core/domain"
)

type SuggestionRequester interface {
	SuggestSeats(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResult, error)
	SuggestAlternatives(ctx context.Context, req domain.SuggestionRequest, limit int) ([]domain.SuggestionResult, error)
}
