package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/syncin/internal/services"
)

// DiagnosticHandler serves GET /test. It always answers 200; database
// problems are reported in the body.
type DiagnosticHandler struct {
	diagnosticService services.DiagnosticServiceInterface
}

func NewDiagnosticHandler(diagnosticService services.DiagnosticServiceInterface) *DiagnosticHandler {
	return &DiagnosticHandler{diagnosticService: diagnosticService}
}

func (h *DiagnosticHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.diagnosticService.Report(r.Context()))
}
