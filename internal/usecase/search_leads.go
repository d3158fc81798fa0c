package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/infra/queue"
)

type SearchLeadsInput struct {
	UserID   string
	Keyword  string
	Location string
	Filters  entity.FilterOptions
}

type SearchLeadsOutput struct {
	Leads []entity.Lead `json:"leads"`
	Count int           `json:"count"`
}

// SearchLeadsUseCase queries the places provider, applies the user's
// filters, and archives the raw result set on the side.
type SearchLeadsUseCase struct {
	Places   PlacesGateway
	Archiver SessionArchiver // optional; nil disables archival
}

func NewSearchLeadsUseCase(places PlacesGateway, archiver SessionArchiver) *SearchLeadsUseCase {
	return &SearchLeadsUseCase{Places: places, Archiver: archiver}
}

func (uc *SearchLeadsUseCase) Execute(ctx context.Context, input SearchLeadsInput) (*SearchLeadsOutput, error) {
	if strings.TrimSpace(input.Keyword) == "" || strings.TrimSpace(input.Location) == "" {
		return nil, &DomainError{Code: CodeInvalidArgument, Message: "keyword and location are required"}
	}

	raw, err := uc.Places.SearchText(ctx, input.Keyword, input.Location)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeUpstreamFailure,
			Message: fmt.Sprintf("failed to search places: %v", err),
		}
	}

	// Archival is fire-and-forget: the leads were fetched, losing the
	// archive row must not fail the search.
	if uc.Archiver != nil {
		session := entity.NewLeadSession(input.UserID, input.Keyword, input.Location, raw)
		payload := queue.LeadSessionPayload{
			SessionID: session.ID,
			UserID:    session.UserID,
			Keyword:   session.Keyword,
			Location:  session.Location,
			Leads:     session.Leads,
			CreatedAt: session.CreatedAt,
		}
		if err := uc.Archiver.PublishLeadSession(ctx, payload); err != nil {
			log.Printf("[SEARCH] failed to archive lead session %s: %v", session.ID, err)
		}
	}

	leads := entity.FilterLeads(raw, input.Filters)
	if input.Filters.ExcludeChains {
		leads = entity.ExcludeChains(leads)
	}

	return &SearchLeadsOutput{Leads: leads, Count: len(leads)}, nil
}
