package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"parkingslots/internal/entities"
	apperrors "parkingslots/internal/errors"
	"parkingslots/internal/service"
)

type SlotHandler struct {
	Service *service.SlotService
}

func NewSlotHandler(svc *service.SlotService) *SlotHandler {
	return &SlotHandler{Service: svc}
}

func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ListSlots())
}

func (h *SlotHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.GetStats())
}

// Allocate accepts an empty body as a request with no requirements.
func (h *SlotHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req entities.AllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, apperrors.ErrBadRequest("Invalid request"))
		return
	}
	res, err := h.Service.Allocate(r.Context(), req)
	if err != nil {
		writeJSON(w, apperrors.FromDomain(err).Code, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *SlotHandler) AllocateAt(w http.ResponseWriter, r *http.Request) {
	index, ok := slotIndex(w, r)
	if !ok {
		return
	}
	res, err := h.Service.AllocateAt(r.Context(), index)
	if err != nil {
		writeJSON(w, apperrors.FromDomain(err).Code, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *SlotHandler) Release(w http.ResponseWriter, r *http.Request) {
	index, ok := slotIndex(w, r)
	if !ok {
		return
	}
	if err := h.Service.Release(r.Context(), index); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Slot released"})
}

func slotIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid index"))
		return 0, false
	}
	return index, true
}
