package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/kaapav/kaapav-bot/internal/middleware"
	"github.com/kaapav/kaapav-bot/internal/models"
)

func (h *Handler) ListBroadcasts(w http.ResponseWriter, r *http.Request) {
	p, err := h.bindPage(r, chatPageCap)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	q := newQuery(r)
	status := deref(optional[string](q, "status"))
	if q.err != nil {
		h.writeServiceError(w, r, q.err)
		return
	}

	broadcasts, total, err := h.service.Broadcast.List(r.Context(), models.BroadcastStatus(status), p.Limit, p.Offset)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, listResponse{Data: broadcasts, Total: total, Limit: p.Limit, Offset: p.Offset})
}

// CreateBroadcast stores a draft, or a scheduled broadcast when scheduled_at
// is set. The authenticated agent is recorded as the author.
func (h *Handler) CreateBroadcast(w http.ResponseWriter, r *http.Request) {
	var input models.BroadcastInput
	if !h.decode(w, r, &input) {
		return
	}

	broadcast, err := h.service.Broadcast.Create(r.Context(), input, middleware.GetAgent(r.Context()))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, broadcast)
}

type broadcastDetail struct {
	*models.Broadcast
	Stats *models.BroadcastStats `json:"stats"`
}

func (h *Handler) GetBroadcast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "broadcastID")
	broadcast, err := h.service.Broadcast.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	stats, err := h.service.Broadcast.Stats(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, broadcastDetail{Broadcast: broadcast, Stats: stats})
}

// SendBroadcast starts sending in the background and answers 202.
func (h *Handler) SendBroadcast(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Broadcast.SendNow(r.Context(), chi.URLParam(r, "broadcastID")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, statusResponse{Status: string(models.BroadcastStatusSending)})
}

type scheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

func (h *Handler) ScheduleBroadcast(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.Broadcast.Schedule(r.Context(), chi.URLParam(r, "broadcastID"), req.ScheduledAt); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, statusResponse{Status: string(models.BroadcastStatusScheduled)})
}

func (h *Handler) CancelBroadcast(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Broadcast.Cancel(r.Context(), chi.URLParam(r, "broadcastID")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, statusResponse{Status: string(models.BroadcastStatusCancelled)})
}

func (h *Handler) BroadcastRecipients(w http.ResponseWriter, r *http.Request) {
	p, err := h.bindPage(r, customerPageCap)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	q := newQuery(r)
	status := deref(optional[string](q, "status"))
	if q.err != nil {
		h.writeServiceError(w, r, q.err)
		return
	}

	recipients, err := h.service.Broadcast.Recipients(r.Context(), chi.URLParam(r, "broadcastID"), models.RecipientStatus(status), p.Limit, p.Offset)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, listResponse{Data: recipients, Total: int64(len(recipients)), Limit: p.Limit, Offset: p.Offset})
}
