package rsvp

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lromero/guestdesk/pkg/middleware"
	"github.com/lromero/guestdesk/pkg/response"
)

// Handler handles the guest-facing RSVP endpoints
type Handler struct {
	service *Service
}

// NewHandler creates a new rsvp handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for rsvp endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/request-verification", h.RequestVerification)
	r.Post("/submit", h.Submit)

	return r
}

// RequestVerification handles POST /rsvp/request-verification
// @Summary      Request RSVP verification
// @Description  Send a single-use verification token to the group's phone numbers
// @Tags         rsvp
// @Accept       json
// @Produce      json
// @Param        request body RequestVerificationRequest true "Group and phone numbers"
// @Success      200 {object} response.APIResponse{data=VerificationResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /rsvp/request-verification [post]
func (h *Handler) RequestVerification(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req RequestVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if len(req.PhoneNumbers) == 0 {
		response.BadRequest(w, "At least one phone number is required")
		return
	}

	token, expiresAt, err := h.service.RequestVerification(r.Context(), weddingID, &req)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to request verification")
		return
	}

	response.JSON(w, http.StatusOK, &VerificationResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// Submit handles POST /rsvp/submit
// @Summary      Submit a group RSVP
// @Description  Apply a group's RSVP answers after verification and the travel-completeness gate
// @Tags         rsvp
// @Accept       json
// @Produce      json
// @Param        request body SubmitRequest true "RSVP submission"
// @Success      200 {object} response.APIResponse{data=SubmitResponse}
// @Failure      401 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /rsvp/submit [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Submit(r.Context(), weddingID, &req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationFailed(w, verr.Error(), verr)
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
			response.Unauthorized(w, err.Error())
		case errors.Is(err, ErrNoAnswers):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to submit RSVP")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
