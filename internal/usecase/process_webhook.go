package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/leadmapr/leadmapr/internal/entity"
)

// WebhookEvent is the decoded Dodo webhook payload. Customer email is the
// correlation key: Dodo never learns our user IDs.
type WebhookEvent struct {
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Customer  WebhookCustomer `json:"customer"`
}

type WebhookCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// eventKind is the closed set of webhook events we react to. Anything else
// is an explicit, logged no-op instead of a silent fallthrough.
type eventKind int

const (
	eventUnknown eventKind = iota
	eventSubscriptionActive
	eventSubscriptionRenewed
	eventSubscriptionEnded
)

func classifyEvent(eventType string) eventKind {
	switch eventType {
	case "subscription.created", "subscription.active":
		return eventSubscriptionActive
	case "subscription.renewed":
		return eventSubscriptionRenewed
	case "subscription.cancelled", "subscription.expired":
		return eventSubscriptionEnded
	default:
		return eventUnknown
	}
}

// ProcessWebhookUseCase maps payment provider events to ledger mutations:
// activate tier, reset usage on renewal, downgrade on cancellation.
type ProcessWebhookUseCase struct {
	Repo entity.UserRepositoryInterface

	// Tiers maps Dodo product IDs to subscription tiers (from env).
	Tiers map[string]entity.SubscriptionTier

	Now func() time.Time
}

func NewProcessWebhookUseCase(repo entity.UserRepositoryInterface, tiers map[string]entity.SubscriptionTier) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{Repo: repo, Tiers: tiers, Now: time.Now}
}

func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, event WebhookEvent) error {
	email := event.Data.Customer.Email

	switch classifyEvent(event.Type) {
	case eventSubscriptionActive:
		if email == "" {
			log.Printf("[WEBHOOK] %s without customer email, skipping", event.Type)
			return nil
		}
		tier, ok := uc.Tiers[event.Data.ProductID]
		if !ok {
			// Unknown product: assume the cheapest paid tier rather than
			// leaving a paying customer on free.
			tier = entity.TierStarter
		}
		if err := uc.Repo.ActivateSubscriptionByEmail(ctx, email, tier, event.Data.ID, event.Data.Customer.ID); err != nil {
			return uc.persistenceError(event.Type, err)
		}
		log.Printf("[WEBHOOK] subscription active: %s -> %s", email, tier)
		return nil

	case eventSubscriptionRenewed:
		if email == "" {
			log.Printf("[WEBHOOK] %s without customer email, skipping", event.Type)
			return nil
		}
		if err := uc.Repo.ResetUsageByEmail(ctx, email, uc.Now()); err != nil {
			return uc.persistenceError(event.Type, err)
		}
		log.Printf("[WEBHOOK] usage reset on renewal: %s", email)
		return nil

	case eventSubscriptionEnded:
		if email == "" {
			log.Printf("[WEBHOOK] %s without customer email, skipping", event.Type)
			return nil
		}
		if err := uc.Repo.DowngradeByEmail(ctx, email); err != nil {
			return uc.persistenceError(event.Type, err)
		}
		log.Printf("[WEBHOOK] downgraded to free: %s", email)
		return nil

	default:
		log.Printf("[WEBHOOK] unhandled event: %s", event.Type)
		return nil
	}
}

func (uc *ProcessWebhookUseCase) persistenceError(eventType string, err error) error {
	return &TechnicalError{
		Code:    CodePersistenceFailure,
		Message: fmt.Sprintf("failed to apply %s: %v", eventType, err),
	}
}
