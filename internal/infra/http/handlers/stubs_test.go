package handlers

import (
	"context"
	"time"

	"github.com/leadmapr/leadmapr/internal/entity"
)

// stubUserRepo is an in-memory single-user repository for handler tests.
type stubUserRepo struct {
	user *entity.User

	incremented int
	activations []string
	resets      []string
	downgrades  []string
}

func (s *stubUserRepo) Create(ctx context.Context, u *entity.User) error {
	s.user = u
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, entity.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, entity.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) ResetUsage(ctx context.Context, id string, at time.Time) error {
	s.user.LeadsUsedThisMonth = 0
	s.user.UsageResetDate = at
	return nil
}

func (s *stubUserRepo) IncrementUsage(ctx context.Context, id string, count int) error {
	s.user.LeadsUsedThisMonth += count
	s.incremented += count
	return nil
}

func (s *stubUserRepo) ActivateSubscriptionByEmail(ctx context.Context, email string, tier entity.SubscriptionTier, subscriptionID, customerID string) error {
	s.activations = append(s.activations, email+":"+string(tier))
	return nil
}

func (s *stubUserRepo) ResetUsageByEmail(ctx context.Context, email string, at time.Time) error {
	s.resets = append(s.resets, email)
	return nil
}

func (s *stubUserRepo) DowngradeByEmail(ctx context.Context, email string) error {
	s.downgrades = append(s.downgrades, email)
	return nil
}
