package handler

import (
	"net/http"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/service"
)

// SessionHandler handles HTTP requests for anonymous sessions.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleCreate handles POST /api/v1/session requests.
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Create()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
