package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/kaapav/kaapav-bot/internal/middleware"
	"github.com/kaapav/kaapav-bot/internal/models"
)

func (h *Handler) ListQuickReplies(w http.ResponseWriter, r *http.Request) {
	replies, err := h.service.Admin.QuickReplies(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, replies)
}

func (h *Handler) GetQuickReply(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	reply, err := h.service.Admin.GetQuickReply(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, reply)
}

func (h *Handler) CreateQuickReply(w http.ResponseWriter, r *http.Request) {
	var input models.QuickReplyInput
	if !h.decode(w, r, &input) {
		return
	}
	reply, err := h.service.Admin.CreateQuickReply(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, reply)
}

func (h *Handler) UpdateQuickReply(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	var input models.QuickReplyInput
	if !h.decode(w, r, &input) {
		return
	}
	reply, err := h.service.Admin.UpdateQuickReply(r.Context(), id, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, reply)
}

func (h *Handler) DeleteQuickReply(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if err := h.service.Admin.DeleteQuickReply(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) ListLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.Admin.Labels(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, labels)
}

func (h *Handler) CreateLabel(w http.ResponseWriter, r *http.Request) {
	var input models.LabelInput
	if !h.decode(w, r, &input) {
		return
	}
	label, err := h.service.Admin.CreateLabel(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, label)
}

func (h *Handler) DeleteLabel(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if err := h.service.Admin.DeleteLabel(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.Admin.Templates(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, templates)
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var input models.TemplateInput
	if !h.decode(w, r, &input) {
		return
	}
	template, err := h.service.Admin.CreateTemplate(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, template)
}

func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.service.Admin.Agents(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, agents)
}

func (h *Handler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var input models.AgentInput
	if !h.decode(w, r, &input) {
		return
	}
	agent, err := h.service.Admin.CreateAgent(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, agent)
}

func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Admin.Settings(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, settings)
}

func (h *Handler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var input models.SettingInput
	if !h.decode(w, r, &input) {
		return
	}
	setting, err := h.service.Admin.UpsertSetting(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, setting)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Admin.Dashboard(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, dashboard)
}

type sessionRequest struct {
	Agent string `json:"agent" validate:"omitempty,max=128"`
}

type sessionResponse struct {
	Token  string `json:"token"`
	Header string `json:"header"`
}

// CreateSession trades an API token for a dashboard session. The agent name
// defaults to the caller's.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}
	if req.Agent == "" {
		req.Agent = middleware.GetAgent(r.Context())
	}

	token, err := h.service.Admin.CreateSession(r.Context(), req.Agent)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, sessionResponse{Token: token, Header: middleware.SessionTokenHeader})
}
