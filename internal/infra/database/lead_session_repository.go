package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/leadmapr/leadmapr/internal/entity"
)

type LeadSessionRepository struct {
	DB *sql.DB
}

func NewLeadSessionRepository(db *sql.DB) *LeadSessionRepository {
	return &LeadSessionRepository{DB: db}
}

// Create archives one raw search result set. Callers treat failures as
// recoverable: log and move on.
func (r *LeadSessionRepository) Create(ctx context.Context, session *entity.LeadSession) error {
	leadsJSON, err := json.Marshal(session.Leads)
	if err != nil {
		return fmt.Errorf("failed to encode leads: %w", err)
	}

	query := `
		INSERT INTO lead_sessions (id, user_id, keyword, location, leads, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Keyword,
		session.Location,
		leadsJSON,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive lead session: %w", err)
	}

	return nil
}
