package wedding

import "time"

// UpdateWeddingRequest represents the request to update wedding settings
type UpdateWeddingRequest struct {
	HostAName *string    `json:"host_a_name,omitempty" validate:"omitempty,min=1,max=100"`
	HostBName *string    `json:"host_b_name,omitempty" validate:"omitempty,min=1,max=100"`
	Date      *time.Time `json:"date,omitempty"`
	Venue     *string    `json:"venue,omitempty"`
}

// WeddingResponse represents the response for a wedding
type WeddingResponse struct {
	ID        int64   `json:"id"`
	Slug      string  `json:"slug"`
	HostAName string  `json:"host_a_name"`
	HostBName string  `json:"host_b_name"`
	Date      *string `json:"date,omitempty"`
	Venue     *string `json:"venue,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Wedding model to a WeddingResponse DTO
func (w *Wedding) ToResponse() *WeddingResponse {
	resp := &WeddingResponse{
		ID:        w.ID,
		Slug:      w.Slug,
		HostAName: w.HostAName,
		HostBName: w.HostBName,
		Venue:     w.Venue,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
	if w.Date != nil {
		d := w.Date.Format("2006-01-02")
		resp.Date = &d
	}
	return resp
}
