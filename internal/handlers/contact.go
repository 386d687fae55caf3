package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio.dev/internal/services"
)

// maxContactBody bounds the size of a JSON contact submission
const maxContactBody = 64 << 10

// ContactHandler handles the contact relay endpoint
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

type contactRequest struct {
	FormID string `json:"form_id"`
	services.Draft
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.contactService.Submit(r.Context(), req.FormID, req.Draft)
	if err == nil {
		respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
		return
	}

	status := contactStatus(err)
	switch status {
	case http.StatusBadRequest:
		respondError(w, status, err.Error())
		return
	case http.StatusConflict:
		respondError(w, status, "Message is already being sent")
		return
	}
	// configuration, network and provider failures look the same to the
	// visitor; the cause is logged by the service
	respondJSON(w, status, map[string]string{
		"error":    "Failed to send message",
		"fallback": h.contactService.Fallback(),
	})
}

// contactStatus maps a Submit error to an HTTP status
func contactStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingField), errors.Is(err, services.ErrInvalidEmail):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
