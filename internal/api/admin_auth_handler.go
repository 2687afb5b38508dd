package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "parkingslots/internal/errors"
	"parkingslots/internal/service"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid request body"))
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, apperrors.ErrUnauthorized("Invalid credentials"))
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
