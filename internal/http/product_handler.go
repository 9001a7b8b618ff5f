package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ecomseller/storefront/internal/catalog"
	"github.com/ecomseller/storefront/internal/domain"
)

// ProductHandler serves the shop grid and the seller-side product
// management table. Reads go through the cached accessor; writes hit the
// store directly and invalidate the cache.
type ProductHandler struct {
	store catalog.Catalog
	cache *catalog.Cached
}

func NewProductHandler(store catalog.Catalog, cache *catalog.Cached) *ProductHandler {
	return &ProductHandler{store: store, cache: cache}
}

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

type ProductRequestDTO struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	ImagePath   string          `json:"image_path"`
}

func convertProduct(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		Description: p.Description,
		ImagePath:   p.ImagePath,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.cache.ListProducts(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	dtos := make([]ProductResponse, len(products))
	for i, p := range products {
		dtos[i] = convertProduct(p)
	}
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: dtos})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProductID(w, r)
	if !ok {
		return
	}
	p, err := h.cache.GetProduct(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, convertProduct(p))
}

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	created, err := h.store.AddProduct(r.Context(), domain.Product{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	h.cache.Invalidate()
	respondJSON(w, http.StatusCreated, convertProduct(created))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProductID(w, r)
	if !ok {
		return
	}
	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	err := h.store.UpdateProduct(r.Context(), domain.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	h.cache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProductID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	h.cache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) > 100 {
		respondError(w, http.StatusBadRequest, "invalid_query", "search query too long")
		return
	}
	products, err := h.store.Search(r.Context(), query)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	dtos := make([]ProductResponse, len(products))
	for i, p := range products {
		dtos[i] = convertProduct(p)
	}
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: dtos})
}

func parseProductID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "product_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return id, true
}
