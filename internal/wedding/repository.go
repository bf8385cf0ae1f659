package wedding

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles wedding data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new wedding repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a wedding by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Wedding, error) {
	query := `
		SELECT id, slug, host_a_name, host_b_name, date, venue, created_at
		FROM weddings
		WHERE id = $1
	`

	w := &Wedding{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID,
		&w.Slug,
		&w.HostAName,
		&w.HostBName,
		&w.Date,
		&w.Venue,
		&w.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wedding: %w", err)
	}

	return w, nil
}

// Update modifies wedding settings
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateWeddingRequest) (*Wedding, error) {
	query := `
		UPDATE weddings
		SET host_a_name = COALESCE($2, host_a_name),
		    host_b_name = COALESCE($3, host_b_name),
		    date = COALESCE($4, date),
		    venue = COALESCE($5, venue)
		WHERE id = $1
		RETURNING id, slug, host_a_name, host_b_name, date, venue, created_at
	`

	w := &Wedding{}
	err := r.db.QueryRowContext(ctx, query, id, req.HostAName, req.HostBName, req.Date, req.Venue).Scan(
		&w.ID,
		&w.Slug,
		&w.HostAName,
		&w.HostBName,
		&w.Date,
		&w.Venue,
		&w.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update wedding: %w", err)
	}

	return w, nil
}
