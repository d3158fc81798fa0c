package usecase

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/leadmapr/leadmapr/internal/entity"
)

const bcryptCost = 12

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type SignupOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SignupUseCase struct {
	Repo         entity.UserRepositoryInterface
	EmailService EmailService // optional, best-effort
}

func NewSignupUseCase(repo entity.UserRepositoryInterface, emailService EmailService) *SignupUseCase {
	return &SignupUseCase{Repo: repo, EmailService: emailService}
}

func (uc *SignupUseCase) Execute(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if validationErrors := ValidateSignupInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeInvalidArgument,
			Message: joinValidationErrors(validationErrors),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, &TechnicalError{Code: CodePersistenceFailure, Message: "failed to hash password"}
	}

	user, err := entity.NewUser(input.Email, input.Name, string(hash))
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidArgument, Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{Code: CodeInvalidArgument, Message: entity.ErrEmailAlreadyExists.Error()}
		}
		return nil, &TechnicalError{Code: CodePersistenceFailure, Message: "failed to create user: " + err.Error()}
	}

	// Welcome email off the request path. Losing it is acceptable.
	if uc.EmailService != nil {
		go func(email, name string) {
			if err := uc.EmailService.SendWelcome(email, name); err != nil {
				log.Printf("[SIGNUP] failed to send welcome email to %s: %v", email, err)
			}
		}(user.Email, user.Name)
	}

	return &SignupOutput{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}
