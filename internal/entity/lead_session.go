package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeadSession archives one raw search result set. Persistence is
// best-effort: losing a session must never fail the search that produced it.
type LeadSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Keyword   string    `json:"keyword"`
	Location  string    `json:"location"`
	Leads     []Lead    `json:"leads"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLeadSession(userID, keyword, location string, leads []Lead) *LeadSession {
	return &LeadSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Keyword:   keyword,
		Location:  location,
		Leads:     leads,
		CreatedAt: time.Now(),
	}
}

type LeadSessionRepositoryInterface interface {
	Create(ctx context.Context, session *LeadSession) error
}
