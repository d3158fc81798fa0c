package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/leadmapr/leadmapr/internal/entity"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token string                  `json:"token"`
	ID    string                  `json:"id"`
	Email string                  `json:"email"`
	Name  string                  `json:"name,omitempty"`
	Tier  entity.SubscriptionTier `json:"tier"`
}

type LoginUseCase struct {
	Repo   entity.UserRepositoryInterface
	Tokens TokenIssuer
}

func NewLoginUseCase(repo entity.UserRepositoryInterface, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, &DomainError{Code: CodeInvalidArgument, Message: "email and password are required"}
	}

	user, err := uc.Repo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Same answer for unknown email and bad password.
		return nil, &DomainError{Code: CodeUnauthorized, Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, &DomainError{Code: CodeUnauthorized, Message: "invalid credentials"}
	}

	token, err := uc.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, &TechnicalError{Code: CodePersistenceFailure, Message: "failed to issue session token"}
	}

	return &LoginOutput{
		Token: token,
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Tier:  user.SubscriptionTier,
	}, nil
}
