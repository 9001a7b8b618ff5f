package http

import (
	"encoding/json"
	"net/http"

	"github.com/ecomseller/storefront/internal/catalog"
	"github.com/ecomseller/storefront/internal/checkout"
	"github.com/ecomseller/storefront/internal/pricing"
)

// CartHandler translates cart UI events into orchestrator calls.
type CartHandler struct {
	orchestrator *checkout.Orchestrator
	catalog      catalog.Gateway
}

func NewCartHandler(orchestrator *checkout.Orchestrator, gateway catalog.Gateway) *CartHandler {
	return &CartHandler{orchestrator: orchestrator, catalog: gateway}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ChangeQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type CartLineDTO struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type QuoteDTO struct {
	Subtotal           string `json:"subtotal"`
	Discount           string `json:"discount"`
	DiscountedSubtotal string `json:"discounted_subtotal"`
	Tax                string `json:"tax"`
	Total              string `json:"total"`
}

type CartResponseDTO struct {
	Lines      []CartLineDTO `json:"lines"`
	CouponCode string        `json:"coupon_code,omitempty"`
	Quote      QuoteDTO      `json:"quote"`
	Status     string        `json:"status"`
}

func convertQuote(q pricing.Quote) QuoteDTO {
	return QuoteDTO{
		Subtotal:           q.Subtotal.StringFixed(2),
		Discount:           q.Discount.StringFixed(2),
		DiscountedSubtotal: q.DiscountedSubtotal.StringFixed(2),
		Tax:                q.Tax.StringFixed(2),
		Total:              q.Total.StringFixed(2),
	}
}

func (h *CartHandler) cartResponse() CartResponseDTO {
	lines := h.orchestrator.Lines()
	dtos := make([]CartLineDTO, len(lines))
	for i, line := range lines {
		dtos[i] = CartLineDTO{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: line.Total().StringFixed(2),
		}
	}
	resp := CartResponseDTO{
		Lines:  dtos,
		Quote:  convertQuote(h.orchestrator.Quote()),
		Status: h.orchestrator.Status().String(),
	}
	if applied := h.orchestrator.AppliedCoupon(); applied != nil {
		resp.CouponCode = applied.Code
	}
	return resp
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if err := h.orchestrator.AddItem(product, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProductID(w, r)
	if !ok {
		return
	}
	var req ChangeQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must be non-zero")
		return
	}
	if err := h.orchestrator.ChangeQuantity(id, req.Delta); err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProductID(w, r)
	if !ok {
		return
	}
	if err := h.orchestrator.RemoveItem(id); err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if _, err := h.orchestrator.ApplyCoupon(req.Code); err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.RemoveCoupon(); err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) Quote(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, convertQuote(h.orchestrator.Quote()))
}
