package handlers

import "net/http"

// MetaHandler serves the landing and hello endpoints the front-end uses to
// check the API is reachable.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "sync.in backend is running"})
}

func (h *MetaHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Hello from sync.in API"})
}
