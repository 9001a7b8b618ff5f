package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecomseller/storefront/internal/domain"
	"github.com/ecomseller/storefront/internal/orders"
)

// OrdersHandler serves the order-management table and the dashboard.
type OrdersHandler struct {
	store orders.Store
}

func NewOrdersHandler(store orders.Store) *OrdersHandler {
	return &OrdersHandler{store: store}
}

type OrderLineDTO struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type OrderResponseDTO struct {
	ID           int64          `json:"id"`
	CustomerName string         `json:"customer_name"`
	Lines        []OrderLineDTO `json:"lines,omitempty"`
	Subtotal     string         `json:"subtotal"`
	Discount     string         `json:"discount"`
	Tax          string         `json:"tax"`
	Total        string         `json:"total"`
	CouponCode   string         `json:"coupon_code,omitempty"`
	Status       string         `json:"status"`
	OrderDate    string         `json:"order_date"`
}

type OrdersResponse struct {
	Orders []OrderResponseDTO `json:"orders"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

type DashboardSummaryDTO struct {
	TotalSales    string `json:"total_sales"`
	TotalOrders   int    `json:"total_orders"`
	AvgOrderValue string `json:"avg_order_value"`
	PendingOrders int    `json:"pending_orders"`
}

func convertOrder(o domain.Order) OrderResponseDTO {
	dto := OrderResponseDTO{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Subtotal:     o.Subtotal.StringFixed(2),
		Discount:     o.Discount.StringFixed(2),
		Tax:          o.Tax.StringFixed(2),
		Total:        o.Total.StringFixed(2),
		CouponCode:   o.CouponCode,
		Status:       string(o.Status),
		OrderDate:    o.CreatedAt.Format("2006-01-02"),
	}
	for _, line := range o.Lines {
		dto.Lines = append(dto.Lines, OrderLineDTO{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
		})
	}
	return dto
}

// GET /api/v1/orders
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.ListOrders(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	dtos := make([]OrderResponseDTO, 0, len(all))
	for _, o := range all {
		dtos = append(dtos, convertOrder(o))
	}
	respondJSON(w, http.StatusOK, &OrdersResponse{Orders: dtos})
}

// GET /api/v1/orders/{order_id}
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}
	o, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, convertOrder(o))
}

// PATCH /api/v1/orders/{order_id}/status
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}
	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	status := domain.OrderStatus(req.Status)
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusShipped,
		domain.OrderStatusDelivered, domain.OrderStatusCancelled:
	default:
		respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		return
	}
	if err := h.store.UpdateStatus(r.Context(), id, status); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/dashboard/summary
func (h *OrdersHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.store.Summary(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, DashboardSummaryDTO{
		TotalSales:    sum.TotalSales.StringFixed(2),
		TotalOrders:   sum.TotalOrders,
		AvgOrderValue: sum.AvgOrderValue.StringFixed(2),
		PendingOrders: sum.PendingOrders,
	})
}

func parseOrderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "order_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return 0, false
	}
	return id, true
}
