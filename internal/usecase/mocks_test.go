package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/infra/integration/dodo"
	"github.com/leadmapr/leadmapr/internal/infra/queue"
)

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ResetUsage(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementUsage(ctx context.Context, id string, count int) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *MockUserRepository) ActivateSubscriptionByEmail(ctx context.Context, email string, tier entity.SubscriptionTier, subscriptionID, customerID string) error {
	args := m.Called(ctx, email, tier, subscriptionID, customerID)
	return args.Error(0)
}

func (m *MockUserRepository) ResetUsageByEmail(ctx context.Context, email string, at time.Time) error {
	args := m.Called(ctx, email, at)
	return args.Error(0)
}

func (m *MockUserRepository) DowngradeByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockPlacesGateway
type MockPlacesGateway struct {
	mock.Mock
}

func (m *MockPlacesGateway) SearchText(ctx context.Context, keyword, location string) ([]entity.Lead, error) {
	args := m.Called(ctx, keyword, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockSessionArchiver
type MockSessionArchiver struct {
	mock.Mock
}

func (m *MockSessionArchiver) PublishLeadSession(ctx context.Context, payload queue.LeadSessionPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, input dodo.CheckoutSessionInput) (*dodo.CheckoutSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dodo.CheckoutSession), args.Error(1)
}
