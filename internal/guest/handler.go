package guest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lromero/guestdesk/pkg/middleware"
	"github.com/lromero/guestdesk/pkg/response"
)

// Handler handles HTTP requests for guest operations
type Handler struct {
	service *Service
}

// NewHandler creates a new guest handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for guest endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	// Bulk operations over the current selection snapshot
	r.Post("/bulk/status", h.BulkSetStatus)
	r.Post("/bulk/group", h.BulkAssignGroup)
	r.Post("/bulk/hosts", h.BulkSetInvitedBy)
	r.Post("/bulk/tags", h.BulkSetTags)
	r.Post("/bulk/travel", h.BulkSetTravel)
	r.Post("/bulk/delete", h.BulkDelete)

	return r
}

// bulkError maps bulk-operation failures onto HTTP responses
func bulkError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrAmbiguousGroup),
		errors.Is(err, ErrInvalidArrangement):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrGuestNotFound):
		// At least one selected id was missing; nothing was applied
		response.NotFound(w, "one or more selected guests do not exist")
	default:
		response.InternalError(w, "Bulk operation failed")
	}
}

// Create handles POST /guests
// @Summary      Create a new guest
// @Description  Create a guest; invited_by free text is resolved to canonical host references
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        request body CreateGuestRequest true "Guest creation request"
// @Success      201 {object} response.APIResponse{data=GuestResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /guests [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	weddingID, ok := middleware.GetWeddingID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing wedding scope")
		return
	}

	var req CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Guest name is required")
		return
	}

	g, err := h.service.Create(r.Context(), weddingID, &req)
	if err != nil {
		response.InternalError(w, "Failed to create guest")
		return
	}

	response.JSON(w, http.StatusCreated, g.ToResponse())
}

// List handles GET /guests?group_id=
// @Summary      List guests
// @Description  List all guests for the wedding, optionally restricted to one group
// @Tags         guests
// @Produce      json
// @Param        group_id query int false "Restrict to one group"
// @Success      200 {object} response.APIResponse{data=[]GuestResponse}
// @Router       /guests [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	weddingID, ok := middleware.GetWeddingID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing wedding scope")
		return
	}

	var guests []*Guest
	var err error

	if groupIDStr := r.URL.Query().Get("group_id"); groupIDStr != "" {
		groupID, parseErr := strconv.ParseInt(groupIDStr, 10, 64)
		if parseErr != nil {
			response.BadRequest(w, "Invalid group_id")
			return
		}
		guests, err = h.service.ListByGroup(r.Context(), weddingID, groupID)
	} else {
		guests, err = h.service.ListByWedding(r.Context(), weddingID)
	}
	if err != nil {
		response.InternalError(w, "Failed to list guests")
		return
	}

	guestResponses := make([]*GuestResponse, len(guests))
	for i, g := range guests {
		guestResponses[i] = g.ToResponse()
	}

	response.JSON(w, http.StatusOK, guestResponses)
}

// GetByID handles GET /guests/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	g, err := h.service.GetByID(r.Context(), weddingID, id)
	if err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get guest")
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// Update handles PUT /guests/{id}
// @Summary      Update a guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        id path int true "Guest ID"
// @Param        request body UpdateGuestRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=GuestResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /guests/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	var req UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	g, err := h.service.Update(r.Context(), weddingID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGuestNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidArrangement):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update guest")
		}
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// Delete handles DELETE /guests/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	if err := h.service.Delete(r.Context(), weddingID, id); err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete guest")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Guest deleted successfully"})
}

// BulkSetStatus handles POST /guests/bulk/status
// @Summary      Bulk status update
// @Description  Set the confirmation status of every selected guest, all-or-nothing
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        request body BulkStatusRequest true "Selection and status"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /guests/bulk/status [post]
func (h *Handler) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req BulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.BulkSetStatus(r.Context(), weddingID, &req)
	if err != nil {
		bulkError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// BulkAssignGroup handles POST /guests/bulk/group
func (h *Handler) BulkAssignGroup(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req BulkGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	groupID, updated, err := h.service.BulkAssignGroup(r.Context(), weddingID, &req)
	if err != nil {
		bulkError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"group_id": groupID, "updated": int64(updated)})
}

// BulkSetInvitedBy handles POST /guests/bulk/hosts
func (h *Handler) BulkSetInvitedBy(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req BulkHostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.BulkSetInvitedBy(r.Context(), weddingID, &req)
	if err != nil {
		bulkError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// BulkSetTags handles POST /guests/bulk/tags
func (h *Handler) BulkSetTags(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req BulkTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.BulkSetTags(r.Context(), weddingID, &req)
	if err != nil {
		bulkError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// BulkSetTravel handles POST /guests/bulk/travel
func (h *Handler) BulkSetTravel(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req BulkTravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.BulkSetTravel(r.Context(), weddingID, &req)
	if err != nil {
		bulkError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// BulkDelete handles POST /guests/bulk/delete
func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	deleted, err := h.service.BulkDelete(r.Context(), weddingID, &req)
	if err != nil {
		bulkError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
