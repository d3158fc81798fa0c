package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/export"
	"github.com/leadmapr/leadmapr/internal/infra/http/middleware"
	"github.com/leadmapr/leadmapr/internal/usecase"
)

type ExportHandler struct {
	ExportUC *usecase.ExportLeadsUseCase
}

func NewExportHandler(uc *usecase.ExportLeadsUseCase) *ExportHandler {
	return &ExportHandler{ExportUC: uc}
}

type exportRequest struct {
	Leads           []entity.Lead `json:"leads"`
	Format          string        `json:"format"`
	MessageTemplate string        `json:"messageTemplate,omitempty"`
}

func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	output, err := h.ExportUC.Execute(r.Context(), usecase.ExportLeadsInput{
		UserID:          userID,
		Leads:           req.Leads,
		Format:          export.Format(req.Format),
		MessageTemplate: req.MessageTemplate,
	})
	if err != nil {
		if usecase.IsQuotaExceeded(err) {
			middleware.RecordQuotaExceeded()
		}
		writeError(w, err)
		return
	}

	middleware.RecordExport(req.Format, output.Exported)

	w.Header().Set("Content-Type", output.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, output.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(output.Content)
}
