package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/leadmapr/leadmapr/internal/entity"
)

// DefaultOverrideLimit is the ceiling applied to override identities. Far
// above any paid tier: an operational escape hatch, not a product tier.
const DefaultOverrideLimit = 100000

type UsageOutput struct {
	Allowed   bool                    `json:"allowed"`
	Used      int                     `json:"used"`
	Limit     int                     `json:"limit"`
	Remaining int                     `json:"remaining"`
	Tier      entity.SubscriptionTier `json:"tier"`
}

// CheckUsageUseCase answers "may this user export" against the monthly
// quota, lazily resetting the counter when a new calendar month begins.
type CheckUsageUseCase struct {
	Repo entity.UserRepositoryInterface

	// OverrideEmails bypass tier limits entirely (founder/testing accounts).
	// Injected at startup, never hard-coded.
	OverrideEmails map[string]bool
	OverrideLimit  int

	Now func() time.Time // test seam
}

func NewCheckUsageUseCase(repo entity.UserRepositoryInterface, overrideEmails []string, overrideLimit int) *CheckUsageUseCase {
	emails := make(map[string]bool, len(overrideEmails))
	for _, e := range overrideEmails {
		if e != "" {
			emails[e] = true
		}
	}
	if overrideLimit <= 0 {
		overrideLimit = DefaultOverrideLimit
	}
	return &CheckUsageUseCase{
		Repo:           repo,
		OverrideEmails: emails,
		OverrideLimit:  overrideLimit,
		Now:            time.Now,
	}
}

func (uc *CheckUsageUseCase) Execute(ctx context.Context, userID string) (*UsageOutput, error) {
	user, err := uc.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, &DomainError{Code: CodeNotFound, Message: "user not found"}
	}

	// Override identities report the pro tier for display; the real
	// subscription is irrelevant here.
	if uc.OverrideEmails[user.Email] {
		return &UsageOutput{
			Allowed:   true,
			Used:      user.LeadsUsedThisMonth,
			Limit:     uc.OverrideLimit,
			Remaining: max(0, uc.OverrideLimit-user.LeadsUsedThisMonth),
			Tier:      entity.TierPro,
		}, nil
	}

	now := uc.Now()

	// Whole calendar months, not elapsed days: Jan 31 -> Feb 1 counts as
	// one month even though less than a day passed.
	monthsSinceReset := (now.Year()-user.UsageResetDate.Year())*12 +
		int(now.Month()) - int(user.UsageResetDate.Month())

	if monthsSinceReset >= 1 {
		// Only branch of a check that mutates persistent state.
		if err := uc.Repo.ResetUsage(ctx, user.ID, now); err != nil {
			return nil, &TechnicalError{
				Code:    CodePersistenceFailure,
				Message: fmt.Sprintf("failed to reset monthly usage: %v", err),
			}
		}
		log.Printf("[USAGE] monthly reset for user %s (was %d)", user.ID, user.LeadsUsedThisMonth)

		limit := entity.LimitFor(user.SubscriptionTier)
		return &UsageOutput{
			Allowed:   true,
			Used:      0,
			Limit:     limit,
			Remaining: limit,
			Tier:      user.SubscriptionTier,
		}, nil
	}

	limit := entity.LimitFor(user.SubscriptionTier)
	remaining := max(0, limit-user.LeadsUsedThisMonth)

	return &UsageOutput{
		Allowed:   remaining > 0,
		Used:      user.LeadsUsedThisMonth,
		Limit:     limit,
		Remaining: remaining,
		Tier:      user.SubscriptionTier,
	}, nil
}
