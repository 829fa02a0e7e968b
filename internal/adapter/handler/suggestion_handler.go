package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/srgjo27/seats_suggestions/internal/core/domain"
	"github.com/srgjo27/seats_suggestions/internal/core/ports"
)

const maxAlternatives = 10

type SuggestionHandler struct {
	svc      ports.SuggestionRequester
	validate *validator.Validate
	logger   *slog.Logger
}

func NewSuggestionHandler(svc ports.SuggestionRequester, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

type suggestionQuery struct {
	PerformanceID string `validate:"required,uuid"`
	PartySize     int    `validate:"gte=1"`
	Category      string `validate:"omitempty,oneof=STANDARD PREMIUM ACCESSIBLE"`
	Alternatives  int    `validate:"gte=0,lte=10"`
}

type seatResponse struct {
	Label    string `json:"label"`
	Row      string `json:"row"`
	Number   int    `json:"number"`
	Category string `json:"category,omitempty"`
}

type suggestionResponse struct {
	Seats []seatResponse `json:"seats"`
}

type GetSuggestionsResponse struct {
	PerformanceID string               `json:"performance_id"`
	PartySize     int                  `json:"party_size"`
	Status        string               `json:"status"`
	Suggestions   []suggestionResponse `json:"suggestions"`
}

func (h *SuggestionHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	q, err := parseSuggestionQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	req := domain.SuggestionRequest{
		PerformanceID: uuid.MustParse(q.PerformanceID),
		PartySize:     q.PartySize,
		Category:      domain.SeatCategory(q.Category),
	}

	var results []domain.SuggestionResult
	if q.Alternatives > 0 {
		results, err = h.svc.SuggestAlternatives(r.Context(), req, q.Alternatives)
	} else {
		var result domain.SuggestionResult
		result, err = h.svc.SuggestSeats(r.Context(), req)
		if result.IsSuggested() {
			results = append(results, result)
		}
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionsResponse(req, results))
}

func parseSuggestionQuery(r *http.Request) (suggestionQuery, error) {
	values := r.URL.Query()
	q := suggestionQuery{
		PerformanceID: strings.ToLower(chi.URLParam(r, "performanceID")),
		Category:      strings.ToUpper(strings.TrimSpace(values.Get("category"))),
	}

	partySize := values.Get("partySize")
	if partySize == "" {
		return q, errors.New("partySize is required")
	}
	n, err := strconv.Atoi(partySize)
	if err != nil {
		return q, errors.New("partySize must be an integer")
	}
	q.PartySize = n

	if alternatives := values.Get("alternatives"); alternatives != "" {
		n, err := strconv.Atoi(alternatives)
		if err != nil {
			return q, errors.New("alternatives must be an integer")
		}
		q.Alternatives = n
	}

	return q, nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "PerformanceID":
		return "performance id must be a valid uuid"
	case "PartySize":
		return "partySize must be at least 1"
	case "Category":
		return "category must be one of STANDARD, PREMIUM, ACCESSIBLE"
	case "Alternatives":
		return "alternatives must be between 0 and " + strconv.Itoa(maxAlternatives)
	}
	return "invalid request"
}

func (h *SuggestionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPerformanceNotFound):
		writeError(w, http.StatusNotFound, "performance not found")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Info("suggestion request aborted", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	case errors.Is(err, domain.ErrLayoutUnavailable), errors.Is(err, domain.ErrReservationDataUnavailable):
		h.logger.Error("suggestion dependency unavailable", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusServiceUnavailable, "seat data temporarily unavailable")
	default:
		h.logger.Error("suggestion failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toSuggestionsResponse(req domain.SuggestionRequest, results []domain.SuggestionResult) GetSuggestionsResponse {
	resp := GetSuggestionsResponse{
		PerformanceID: req.PerformanceID.String(),
		PartySize:     req.PartySize,
		Status:        string(domain.SuggestionNoAvailability),
		Suggestions:   []suggestionResponse{},
	}

	for _, result := range results {
		if !result.IsSuggested() {
			continue
		}
		s := suggestionResponse{Seats: make([]seatResponse, 0, len(result.Seats))}
		for _, seat := range result.Seats {
			s.Seats = append(s.Seats, seatResponse{
				Label:    seat.Ref().String(),
				Row:      seat.Row,
				Number:   seat.Position,
				Category: string(seat.Category),
			})
		}
		resp.Suggestions = append(resp.Suggestions, s)
	}

	if len(resp.Suggestions) > 0 {
		resp.Status = string(domain.SuggestionSuggested)
	}
	return resp
}
