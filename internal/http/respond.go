package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ecomseller/storefront/internal/catalog"
	"github.com/ecomseller/storefront/internal/checkout"
	"github.com/ecomseller/storefront/internal/coupon"
	"github.com/ecomseller/storefront/internal/domain"
	"github.com/ecomseller/storefront/internal/orders"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError maps core errors to HTTP status codes. Collaborators
// are in-process, so this replaces gRPC status translation.
func handleDomainError(w http.ResponseWriter, err error) {
	var httpStatus int
	var code string

	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, orders.ErrOrderNotFound):
		httpStatus = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, coupon.ErrEmptyCode),
		errors.Is(err, coupon.ErrCodeTooShort),
		errors.Is(err, coupon.ErrCodeTooLong),
		errors.Is(err, coupon.ErrInvalidCharacters):
		httpStatus = http.StatusBadRequest
		code = "invalid_coupon_code"
	case errors.Is(err, coupon.ErrUnknownCoupon):
		httpStatus = http.StatusNotFound
		code = "unknown_coupon"
	case errors.Is(err, checkout.ErrEmptyCart):
		httpStatus = http.StatusConflict
		code = "empty_cart"
	case errors.Is(err, checkout.ErrCheckoutInProgress):
		httpStatus = http.StatusConflict
		code = "checkout_in_progress"
	case errors.Is(err, checkout.ErrGateway):
		httpStatus = http.StatusBadGateway
		code = "gateway_error"
	case errors.Is(err, domain.ErrInvalidCustomerName),
		errors.Is(err, domain.ErrProductNameTooShort),
		errors.Is(err, domain.ErrProductNameTooLong),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrDescriptionTooLong):
		httpStatus = http.StatusBadRequest
		code = "validation_failed"
	case errors.Is(err, orders.ErrIllegalTransition):
		httpStatus = http.StatusConflict
		code = "illegal_status_transition"
	default:
		httpStatus = http.StatusInternalServerError
		code = "internal_error"
	}

	respondError(w, httpStatus, code, err.Error())
}
