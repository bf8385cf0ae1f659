package report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lromero/guestdesk/internal/guest"
	"github.com/lromero/guestdesk/pkg/middleware"
	"github.com/lromero/guestdesk/pkg/response"
)

// Handler exposes the reporting boundary: filtered views, summary totals
// and the time series
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/guests", h.GuestView)
	r.Get("/groups", h.GroupedView)
	r.Get("/summary", h.Summary)
	r.Get("/timeline", h.Timeline)

	return r
}

func filterFromQuery(r *http.Request) Filter {
	q := r.URL.Query()
	return Filter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Tag:    q.Get("tag"),
		Group:  q.Get("group"),
		Host:   q.Get("host"),
		Opened: q.Get("opened"),
	}
}

// GuestView handles GET /reports/guests
// @Summary      Filtered guest view
// @Description  Flat guest list under the active filter predicates, optionally sorted
// @Tags         reports
// @Produce      json
// @Param        search query string false "Name/phone substring"
// @Param        status query string false "all|pending|confirmed|declined"
// @Param        tag query string false "Tag or all"
// @Param        group query string false "Group id, ungrouped, or all"
// @Param        host query string false "host_a, host_b, or all"
// @Param        opened query string false "all|opened|not_opened"
// @Param        sort query string false "name|group|status"
// @Param        order query string false "asc|desc"
// @Success      200 {object} response.APIResponse{data=[]guest.GuestResponse}
// @Router       /reports/guests [get]
func (h *Handler) GuestView(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	key := SortKey(r.URL.Query().Get("sort"))
	descending := r.URL.Query().Get("order") == "desc"

	guests, err := h.service.GuestView(r.Context(), weddingID, filterFromQuery(r), key, descending)
	if err != nil {
		if errors.Is(err, ErrInvalidSortKey) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build guest view")
		return
	}

	guestResponses := make([]*guest.GuestResponse, len(guests))
	for i, g := range guests {
		guestResponses[i] = g.ToResponse()
	}

	response.JSON(w, http.StatusOK, guestResponses)
}

// GroupedViewResponse nests group unions plus the synthetic ungrouped bucket
type GroupedViewResponse struct {
	Groups    []GroupUnion           `json:"groups"`
	Ungrouped []*guest.GuestResponse `json:"ungrouped"`
}

// GroupedView handles GET /reports/groups
// @Summary      Grouped guest view
// @Description  Groups with derived tag/host unions plus an ungrouped bucket
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.APIResponse{data=GroupedViewResponse}
// @Router       /reports/groups [get]
func (h *Handler) GroupedView(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	unions, ungrouped, err := h.service.GroupedView(r.Context(), weddingID, filterFromQuery(r))
	if err != nil {
		response.InternalError(w, "Failed to build grouped view")
		return
	}

	resp := &GroupedViewResponse{Groups: unions}
	for _, g := range ungrouped {
		resp.Ungrouped = append(resp.Ungrouped, g.ToResponse())
	}

	response.JSON(w, http.StatusOK, resp)
}

// Summary handles GET /reports/summary
// @Summary      Summary aggregates
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SummaryReport}
// @Router       /reports/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	report, err := h.service.Summary(r.Context(), weddingID)
	if err != nil {
		response.InternalError(w, "Failed to build summary")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// Timeline handles GET /reports/timeline?window=30d&group_id=
// @Summary      Cumulative event series
// @Description  Per-day cumulative confirmed/declined/opened counts over a lookback window
// @Tags         reports
// @Produce      json
// @Param        window query string false "7d|14d|30d|90d|all" default(30d)
// @Param        group_id query int false "Restrict to one group"
// @Success      200 {object} response.APIResponse{data=[]DayBucket}
// @Failure      400 {object} response.APIResponse
// @Router       /reports/timeline [get]
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	weddingID, _ := middleware.GetWeddingID(r.Context())

	window := Window(r.URL.Query().Get("window"))
	if window == "" {
		window = Window30d
	}

	var groupID int64
	if groupIDStr := r.URL.Query().Get("group_id"); groupIDStr != "" {
		var err error
		groupID, err = strconv.ParseInt(groupIDStr, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid group_id")
			return
		}
	}

	series, err := h.service.Timeline(r.Context(), weddingID, window, groupID)
	if err != nil {
		if errors.Is(err, ErrInvalidWindow) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build timeline")
		return
	}

	response.JSON(w, http.StatusOK, series)
}
