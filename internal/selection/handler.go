package selection

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lromero/guestdesk/pkg/response"
)

// Handler exposes the session-scoped selection over HTTP so the admin UI
// can keep its checkbox state on the server across the flat and grouped
// views.
type Handler struct {
	store *Store
}

// NewHandler creates a new selection handler
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the router for selection endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/toggle", h.Toggle)
	r.Post("/toggle-all", h.ToggleAll)
	r.Post("/toggle-group", h.ToggleGroup)
	r.Delete("/", h.Clear)

	return r
}

// ToggleRequest flips one guest id in a session's selection
type ToggleRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	GuestID   int64  `json:"guest_id" validate:"required"`
}

// ToggleSetRequest applies toggle-all semantics over an id list
type ToggleSetRequest struct {
	SessionID string  `json:"session_id" validate:"required"`
	GuestIDs  []int64 `json:"guest_ids"`
}

// SelectionResponse is the selection state after an operation
type SelectionResponse struct {
	SessionID string  `json:"session_id"`
	GuestIDs  []int64 `json:"guest_ids"`
}

// Get handles GET /selection?session_id=
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		response.BadRequest(w, "session_id is required")
		return
	}

	response.JSON(w, http.StatusOK, &SelectionResponse{
		SessionID: sessionID,
		GuestIDs:  h.store.Snapshot(sessionID),
	})
}

// Toggle handles POST /selection/toggle
// @Summary      Toggle one guest in the selection
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        request body ToggleRequest true "Guest to toggle"
// @Success      200 {object} response.APIResponse{data=SelectionResponse}
// @Router       /selection/toggle [post]
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.SessionID == "" {
		response.BadRequest(w, "session_id is required")
		return
	}

	ids := h.store.Toggle(req.SessionID, req.GuestID)
	response.JSON(w, http.StatusOK, &SelectionResponse{SessionID: req.SessionID, GuestIDs: ids})
}

// ToggleAll handles POST /selection/toggle-all. The client sends the ids
// currently visible under its active filters; ids outside that set are
// never selected.
func (h *Handler) ToggleAll(w http.ResponseWriter, r *http.Request) {
	var req ToggleSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.SessionID == "" {
		response.BadRequest(w, "session_id is required")
		return
	}

	ids := h.store.ToggleAll(req.SessionID, req.GuestIDs)
	response.JSON(w, http.StatusOK, &SelectionResponse{SessionID: req.SessionID, GuestIDs: ids})
}

// ToggleGroup handles POST /selection/toggle-group
func (h *Handler) ToggleGroup(w http.ResponseWriter, r *http.Request) {
	var req ToggleSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.SessionID == "" {
		response.BadRequest(w, "session_id is required")
		return
	}

	ids := h.store.ToggleGroup(req.SessionID, req.GuestIDs)
	response.JSON(w, http.StatusOK, &SelectionResponse{SessionID: req.SessionID, GuestIDs: ids})
}

// Clear handles DELETE /selection?session_id=
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		response.BadRequest(w, "session_id is required")
		return
	}

	h.store.Clear(sessionID)
	response.JSON(w, http.StatusOK, map[string]string{"message": "Selection cleared"})
}
