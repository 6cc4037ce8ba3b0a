package handler

import (
	"errors"
	"net/http"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/crypto"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/model"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/service"
)

// HashHandler handles HTTP requests for the hashing utilities.
type HashHandler struct {
	service *service.HashService
}

// NewHashHandler creates a new HashHandler.
func NewHashHandler(svc *service.HashService) *HashHandler {
	return &HashHandler{service: svc}
}

// HandleHash handles POST /api/v1/hash requests.
func (h *HashHandler) HandleHash(w http.ResponseWriter, r *http.Request) {
	var req model.HashRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Hash(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleVerify handles POST /api/v1/hash/verify requests.
func (h *HashHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Verify(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordRequired), errors.Is(err, service.ErrHashRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, crypto.ErrInvalidHash), errors.Is(err, crypto.ErrIncompatibleVersion):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
