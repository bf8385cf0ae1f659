package wedding

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lromero/guestdesk/pkg/middleware"
	"github.com/lromero/guestdesk/pkg/response"
)

// Handler handles HTTP requests for wedding settings
type Handler struct {
	service *Service
}

// NewHandler creates a new wedding handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for wedding endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/", h.Update)

	return r
}

// Get handles GET /wedding
// @Summary      Get wedding settings
// @Description  Get the current wedding's host names and event details
// @Tags         wedding
// @Produce      json
// @Success      200 {object} response.APIResponse{data=WeddingResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /wedding [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	weddingID, ok := middleware.GetWeddingID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing wedding scope")
		return
	}

	wed, err := h.service.GetByID(r.Context(), weddingID)
	if err != nil {
		if errors.Is(err, ErrWeddingNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get wedding")
		return
	}

	response.JSON(w, http.StatusOK, wed.ToResponse())
}

// Update handles PUT /wedding
// @Summary      Update wedding settings
// @Tags         wedding
// @Accept       json
// @Produce      json
// @Param        request body UpdateWeddingRequest true "Settings to update"
// @Success      200 {object} response.APIResponse{data=WeddingResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /wedding [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	weddingID, ok := middleware.GetWeddingID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing wedding scope")
		return
	}

	var req UpdateWeddingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	wed, err := h.service.Update(r.Context(), weddingID, &req)
	if err != nil {
		if errors.Is(err, ErrWeddingNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update wedding")
		return
	}

	response.JSON(w, http.StatusOK, wed.ToResponse())
}
