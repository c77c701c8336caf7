package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/syncin/internal/logging"
	"github.com/HammerMeetNail/syncin/internal/models"
	"github.com/HammerMeetNail/syncin/internal/schemas"
	"github.com/HammerMeetNail/syncin/internal/services"
)

type DiscoverHandler struct {
	catalogService   services.CatalogServiceInterface
	evaluatorService services.EvaluatorServiceInterface
}

func NewDiscoverHandler(catalogService services.CatalogServiceInterface, evaluatorService services.EvaluatorServiceInterface) *DiscoverHandler {
	return &DiscoverHandler{
		catalogService:   catalogService,
		evaluatorService: evaluatorService,
	}
}

func (h *DiscoverHandler) Tests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogService.ListTests())
}

func (h *DiscoverHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.DiscoverAnswers
	if !decodeBody(w, r, schemas.DiscoverAnswers, &req) {
		return
	}

	result := h.evaluatorService.Evaluate(req.Answers)

	logging.FromContext(r.Context()).Debug("Evaluated discovery answers", map[string]interface{}{
		"answered": len(req.Answers),
		"best_fit": result.BestFitCareers,
	})

	writeJSON(w, http.StatusOK, result)
}
