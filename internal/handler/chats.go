package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/service"
)

func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	p, err := h.bindPage(r, chatPageCap)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	q := newQuery(r)
	filter := models.ChatFilter{
		Status:     models.ChatStatus(deref(optional[string](q, "status"))),
		Label:      deref(optional[string](q, "label")),
		AssignedTo: deref(optional[string](q, "assigned_to")),
		Search:     deref(optional[string](q, "search")),
		UnreadOnly: deref(optional[bool](q, "unread")),
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
	if q.err != nil {
		h.writeServiceError(w, r, q.err)
		return
	}

	chats, total, err := h.service.Chat.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, listResponse{Data: chats, Total: total, Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.service.Chat.Get(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, chat)
}

// ChatMessages pages a conversation newest first.
func (h *Handler) ChatMessages(w http.ResponseWriter, r *http.Request) {
	p, err := h.bindPage(r, chatPageCap)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	messages, err := h.service.Chat.Messages(r.Context(), chi.URLParam(r, "phone"), p.Limit, p.Offset)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, listResponse{Data: messages, Total: int64(len(messages)), Limit: p.Limit, Offset: p.Offset})
}

func (h *Handler) MarkChatRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Chat.MarkRead(r.Context(), chi.URLParam(r, "phone")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) UpdateChat(w http.ResponseWriter, r *http.Request) {
	var update models.ChatUpdate
	if !h.decode(w, r, &update) {
		return
	}

	chat, err := h.service.Chat.Update(r.Context(), chi.URLParam(r, "phone"), update)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, chat)
}

type sendResponse struct {
	MessageID string `json:"message_id"`
}

// SendMessage delivers an agent reply through WhatsApp.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendRequest
	if !h.decode(w, r, &req) {
		return
	}

	id, err := h.service.Chat.Send(r.Context(), chi.URLParam(r, "phone"), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, sendResponse{MessageID: id})
}
