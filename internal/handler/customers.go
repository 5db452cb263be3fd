package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/kaapav/kaapav-bot/internal/models"
)

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	p, err := h.bindPage(r, customerPageCap)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	q := newQuery(r)
	filter := models.CustomerFilter{
		Segment: models.Segment(deref(optional[string](q, "segment"))),
		Label:   deref(optional[string](q, "label")),
		Search:  deref(optional[string](q, "search")),
		OptedIn: optional[bool](q, "opted_in"),
		Limit:   p.Limit,
		Offset:  p.Offset,
	}
	if q.err != nil {
		h.writeServiceError(w, r, q.err)
		return
	}

	customers, total, err := h.service.Customer.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, listResponse{Data: customers, Total: total, Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.Customer.Get(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, customer)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var update models.CustomerUpdate
	if !h.decode(w, r, &update) {
		return
	}

	customer, err := h.service.Customer.Update(r.Context(), chi.URLParam(r, "phone"), update)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, customer)
}

// DeleteCustomer soft-deletes; orders and chat history are kept.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Customer.Delete(r.Context(), chi.URLParam(r, "phone")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) CustomerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Customer.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, stats)
}
