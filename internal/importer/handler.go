package importer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lromero/guestdesk/pkg/middleware"
	"github.com/lromero/guestdesk/pkg/response"
)

// Handler handles guest import uploads
type Handler struct {
	service *Service
}

// NewHandler creates a new importer handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for import endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Import)

	return r
}

// Import handles POST /import?group_id=
// @Summary      Import guests from CSV
// @Description  Create guests from a CSV body; unresolvable invited_by text is dropped, not an error
// @Tags         import
// @Accept       text/csv
// @Produce      json
// @Param        group_id query int false "Put every row into this group"
// @Success      200 {object} response.APIResponse{data=Result}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /import [post]
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	weddingID, ok := middleware.GetWeddingID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing wedding scope")
		return
	}

	var targetGroupID *int64
	if groupIDStr := r.URL.Query().Get("group_id"); groupIDStr != "" {
		id, err := strconv.ParseInt(groupIDStr, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid group_id")
			return
		}
		targetGroupID = &id
	}

	result, err := h.service.Import(r.Context(), weddingID, r.Body, targetGroupID)
	if err != nil {
		if errors.Is(err, ErrTargetGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, "Failed to import: "+err.Error())
		return
	}

	response.JSON(w, http.StatusOK, result)
}
