package usecase

import (
	"context"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/infra/integration/dodo"
	"github.com/leadmapr/leadmapr/internal/infra/queue"
)

// PlacesGateway is the search provider boundary. Any failure is opaque to
// the core and surfaced as a single upstream error.
type PlacesGateway interface {
	SearchText(ctx context.Context, keyword, location string) ([]entity.Lead, error)
}

// PaymentGateway wraps the Dodo Payments REST API. Cancellation comes in
// through the webhook, so checkout creation is all the core needs.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input dodo.CheckoutSessionInput) (*dodo.CheckoutSession, error)
}

// SessionArchiver publishes raw search results for best-effort archival.
type SessionArchiver interface {
	PublishLeadSession(ctx context.Context, payload queue.LeadSessionPayload) error
}

// SummaryProvider generates a short business summary from website text.
type SummaryProvider interface {
	Summarize(ctx context.Context, businessName, websiteContent string) (string, error)
}

type EmailService interface {
	SendWelcome(to, name string) error
}

// TokenIssuer mints a session token for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}
