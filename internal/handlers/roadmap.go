package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/syncin/internal/logging"
	"github.com/HammerMeetNail/syncin/internal/models"
	"github.com/HammerMeetNail/syncin/internal/schemas"
	"github.com/HammerMeetNail/syncin/internal/services"
)

type RoadmapHandler struct {
	roadmapService services.RoadmapServiceInterface
}

func NewRoadmapHandler(roadmapService services.RoadmapServiceInterface) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

func (h *RoadmapHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var query models.CareerQuery
	if !decodeBody(w, r, schemas.CareerQuery, &query) {
		return
	}

	bundle := h.roadmapService.Generate(query)

	logging.FromContext(r.Context()).Debug("Generated roadmap", map[string]interface{}{
		"career":       bundle.Career,
		"courses":      len(bundle.Courses),
		"certificates": len(bundle.Certifications),
	})

	writeJSON(w, http.StatusOK, bundle)
}
