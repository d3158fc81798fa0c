package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmailAlreadyExists = errors.New("user already exists with this email")
var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"-"`

	SubscriptionTier   SubscriptionTier `json:"subscription_tier"`
	LeadsUsedThisMonth int              `json:"leads_used_this_month"`
	UsageResetDate     time.Time        `json:"usage_reset_date"`

	// External Dodo Payments IDs
	DodoCustomerID     string `json:"dodo_customer_id,omitempty"`
	DodoSubscriptionID string `json:"dodo_subscription_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a fresh free-tier account with a zeroed usage counter.
func NewUser(email, name, passwordHash string) (*User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if passwordHash == "" {
		return nil, errors.New("password hash is required")
	}

	now := time.Now()
	return &User{
		ID:                 uuid.New().String(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		SubscriptionTier:   TierFree,
		LeadsUsedThisMonth: 0,
		UsageResetDate:     now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ResetUsage zeroes the monthly counter and restarts the period.
	ResetUsage(ctx context.Context, id string, at time.Time) error

	// IncrementUsage must be a single atomic increment at the store, never
	// a read-modify-write. It is the quota's only enforcement point.
	IncrementUsage(ctx context.Context, id string, count int) error

	// Webhook-driven mutations, keyed by the payment provider's email.
	ActivateSubscriptionByEmail(ctx context.Context, email string, tier SubscriptionTier, subscriptionID, customerID string) error
	ResetUsageByEmail(ctx context.Context, email string, at time.Time) error
	DowngradeByEmail(ctx context.Context, email string) error
}
