package api

import (
	"encoding/json"
	"net/http"

	"parkingslots/internal/entities"
	apperrors "parkingslots/internal/errors"
	"parkingslots/internal/service"
)

type AdminHandler struct {
	Service *service.SlotService
}

func NewAdminHandler(svc *service.SlotService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) RegisterSlot(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid request"))
		return
	}
	slot, err := h.Service.RegisterSlot(r.Context(), req.ID, req.Covered, req.EVCharging)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}
