package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/kaapav/kaapav-bot/internal/models"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	p, err := h.bindPage(r, customerPageCap)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	q := newQuery(r)
	filter := models.ProductFilter{
		Category:   deref(optional[string](q, "category")),
		Search:     deref(optional[string](q, "search")),
		InStock:    optional[bool](q, "in_stock"),
		Bestseller: deref(optional[bool](q, "bestseller")),
		Active:     optional[bool](q, "active"),
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
	if q.err != nil {
		h.writeServiceError(w, r, q.err)
		return
	}

	products, total, err := h.service.Product.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, listResponse{Data: products, Total: total, Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Product.Get(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, product)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if !h.decode(w, r, &input) {
		return
	}

	product, err := h.service.Product.Create(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, product)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if !h.decode(w, r, &input) {
		return
	}

	product, err := h.service.Product.Update(r.Context(), chi.URLParam(r, "productID"), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, product)
}

type stockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

func (h *Handler) SetProductStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.Product.SetStock(r.Context(), chi.URLParam(r, "productID"), *req.Stock); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

// DeleteProduct hides the product from the catalogue.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Product.Delete(r.Context(), chi.URLParam(r, "productID")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.NoContent(w, r)
}
