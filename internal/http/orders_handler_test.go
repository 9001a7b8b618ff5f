package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListOrders(t *testing.T) {
	h := newHarness()

	recorder := httptest.NewRecorder()
	h.orders.List(recorder, httptest.NewRequest("GET", "/orders", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	var response OrdersResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Orders) != 15 {
		t.Errorf("expected 15 seeded orders, got %d", len(response.Orders))
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	h := newHarness()

	recorder := httptest.NewRecorder()
	h.orders.Get(recorder, requestWithParam("GET", "/orders/42", "order_id", "42", nil))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestUpdateOrderStatus_InvalidStatus(t *testing.T) {
	h := newHarness()

	payload := []byte(`{"status":"Teleported"}`)
	recorder := httptest.NewRecorder()
	h.orders.UpdateStatus(recorder, requestWithParam("PATCH", "/orders/1001/status", "order_id", "1001", payload))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestDashboardSummary(t *testing.T) {
	h := newHarness()

	recorder := httptest.NewRecorder()
	h.orders.Summary(recorder, httptest.NewRequest("GET", "/dashboard/summary", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	var response DashboardSummaryDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.TotalOrders <= 0 {
		t.Errorf("expected positive order count, got %d", response.TotalOrders)
	}
	if response.TotalSales == "" {
		t.Error("expected total sales to be set")
	}
}
