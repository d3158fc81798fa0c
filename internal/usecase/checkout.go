package usecase

import (
	"context"
	"fmt"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/infra/integration/dodo"
)

type CreateCheckoutInput struct {
	UserID string
	Plan   entity.SubscriptionTier
}

type CreateCheckoutOutput struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// CreateCheckoutUseCase starts a Dodo checkout session for a paid plan.
type CreateCheckoutUseCase struct {
	Repo    entity.UserRepositoryInterface
	Gateway PaymentGateway

	// Products maps each paid tier to its Dodo product ID (from env).
	Products map[entity.SubscriptionTier]string

	// SuccessURL is where Dodo sends the customer back after paying.
	SuccessURL string
}

func NewCreateCheckoutUseCase(
	repo entity.UserRepositoryInterface,
	gateway PaymentGateway,
	products map[entity.SubscriptionTier]string,
	successURL string,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		Repo:       repo,
		Gateway:    gateway,
		Products:   products,
		SuccessURL: successURL,
	}
}

func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, input CreateCheckoutInput) (*CreateCheckoutOutput, error) {
	if input.Plan == "" || input.Plan == entity.TierFree || !input.Plan.IsPaid() {
		return nil, &DomainError{Code: CodeInvalidArgument, Message: "invalid plan"}
	}

	productID := uc.Products[input.Plan]
	if productID == "" {
		return nil, &DomainError{Code: CodeInvalidArgument, Message: "product not configured for plan " + string(input.Plan)}
	}

	user, err := uc.Repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, &DomainError{Code: CodeNotFound, Message: "user not found"}
	}

	session, err := uc.Gateway.CreateCheckoutSession(ctx, dodo.CheckoutSessionInput{
		ProductID:     productID,
		CustomerEmail: user.Email,
		ReturnURL:     uc.SuccessURL,
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeUpstreamFailure,
			Message: fmt.Sprintf("failed to create checkout session: %v", err),
		}
	}

	return &CreateCheckoutOutput{CheckoutURL: session.URL}, nil
}
