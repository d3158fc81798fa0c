package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/export"
)

type ExportLeadsInput struct {
	UserID          string
	Leads           []entity.Lead
	Format          export.Format
	MessageTemplate string
}

type ExportLeadsOutput struct {
	Content     []byte
	ContentType string
	Filename    string
	Exported    int
}

// ExportLeadsUseCase gates an export against the quota, serializes, and
// commits consumption. Check and commit are deliberately two calls: we
// refuse before paying the serialization cost, and only charge after the
// export actually succeeds. Two concurrent exports can both pass the check
// (soft limit); the counter itself stays exact via the atomic increment.
type ExportLeadsUseCase struct {
	Usage *CheckUsageUseCase
	Repo  entity.UserRepositoryInterface
}

func NewExportLeadsUseCase(usage *CheckUsageUseCase, repo entity.UserRepositoryInterface) *ExportLeadsUseCase {
	return &ExportLeadsUseCase{Usage: usage, Repo: repo}
}

func (uc *ExportLeadsUseCase) Execute(ctx context.Context, input ExportLeadsInput) (*ExportLeadsOutput, error) {
	if len(input.Leads) == 0 {
		return nil, &DomainError{Code: CodeInvalidArgument, Message: "no leads to export"}
	}

	usage, err := uc.Usage.Execute(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !usage.Allowed || len(input.Leads) > usage.Remaining {
		return nil, &QuotaExceededError{
			Used:      usage.Used,
			Limit:     usage.Limit,
			Remaining: usage.Remaining,
		}
	}

	file, err := export.Leads(input.Leads, input.Format, input.MessageTemplate)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return nil, &DomainError{Code: CodeInvalidArgument, Message: err.Error()}
		}
		return nil, &TechnicalError{
			Code:    CodePersistenceFailure,
			Message: fmt.Sprintf("failed to generate export: %v", err),
		}
	}

	// Commit strictly after serialization succeeded. This write is the
	// quota's enforcement point, so a failure here is fatal to the request.
	if err := uc.Repo.IncrementUsage(ctx, input.UserID, len(input.Leads)); err != nil {
		return nil, &TechnicalError{
			Code:    CodePersistenceFailure,
			Message: fmt.Sprintf("failed to record usage: %v", err),
		}
	}

	return &ExportLeadsOutput{
		Content:     file.Content,
		ContentType: file.ContentType,
		Filename:    file.Filename,
		Exported:    len(input.Leads),
	}, nil
}
