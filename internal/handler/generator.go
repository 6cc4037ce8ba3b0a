package handler

import (
	"errors"
	"net/http"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/middleware"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/model"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and
// strength checks.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. A session token is
// optional; when one is present the result lands in that session's history.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	resp, err := h.service.Generate(sessionID, req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Evaluate(req))
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrLengthTooShort) ||
		errors.Is(err, service.ErrLengthTooLong) ||
		errors.Is(err, service.ErrNoCategories)
}
