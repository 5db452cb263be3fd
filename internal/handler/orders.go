package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/service"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	p, err := h.bindPage(r, customerPageCap)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	q := newQuery(r)
	filter := models.OrderFilter{
		Status:        models.OrderStatus(deref(optional[string](q, "status"))),
		PaymentStatus: models.PaymentStatus(deref(optional[string](q, "payment_status"))),
		Phone:         deref(optional[string](q, "phone")),
		Search:        deref(optional[string](q, "search")),
		From:          optional[time.Time](q, "from"),
		To:            optional[time.Time](q, "to"),
		Limit:         p.Limit,
		Offset:        p.Offset,
	}
	if q.err != nil {
		h.writeServiceError(w, r, q.err)
		return
	}

	orders, total, err := h.service.Order.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, listResponse{Data: orders, Total: total, Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Order.Get(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, order)
}

func (h *Handler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Order.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, stats)
}

type statusUpdateRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
	Note   string             `json:"note" validate:"max=500"`
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.service.Order.UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), req.Status, req.Note)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, order)
}

type cancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	order, err := h.service.Order.Cancel(r.Context(), chi.URLParam(r, "orderID"), req.Reason)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, order)
}

// RefundOrder refunds through Razorpay; an empty amount refunds the balance.
func (h *Handler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	var req service.RefundRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	order, err := h.service.Order.Refund(r.Context(), chi.URLParam(r, "orderID"), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, order)
}

// ShipOrder books a Shiprocket shipment.
func (h *Handler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Order.Ship(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, order)
}

func (h *Handler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	tracking, err := h.service.Order.Track(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, tracking)
}
