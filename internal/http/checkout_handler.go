package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ecomseller/storefront/internal/checkout"
)

type CheckoutHandler struct {
	orchestrator *checkout.Orchestrator
}

func NewCheckoutHandler(orchestrator *checkout.Orchestrator) *CheckoutHandler {
	return &CheckoutHandler{orchestrator: orchestrator}
}

type CheckoutRequestDTO struct {
	CustomerName string `json:"customer_name"`
}

type CheckoutResponseDTO struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	orderID, err := h.orchestrator.Checkout(r.Context(), req.CustomerName)
	if err != nil {
		log.Printf("checkout rejected (request %s): %v", getRequestID(r.Context()), err)
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID: orderID,
		Status:  h.orchestrator.Status().String(),
	})
}

// POST /api/v1/checkout/abandon
func (h *CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.Abandon(); err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status": h.orchestrator.Status().String(),
	})
}
