package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/bot"
	"github.com/kaapav/kaapav-bot/internal/middleware"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/worker"
)

const (
	hubSignatureHeader      = "X-Hub-Signature-256"
	razorpaySignatureHeader = "X-Razorpay-Signature"
	hubSignaturePrefix      = "sha256="
	webhookBodyLimit        = 4 << 20
)

// VerifyWebhook answers Meta's subscription handshake.
func (h *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode != "subscribe" || h.webhook.VerifyToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(h.webhook.VerifyToken)) != 1 {
		h.logger.Warn("Webhook verification rejected", zap.String("mode", mode))
		render.Status(r, http.StatusForbidden)
		render.PlainText(w, r, "Forbidden")
		return
	}

	h.logger.Info("Webhook verified")
	render.PlainText(w, r, challenge)
}

// ReceiveWebhook authenticates a WhatsApp delivery and queues it on the
// sender's shard. Meta retries anything but a 200, so a full queue is
// logged and still acknowledged.
func (h *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		middleware.WriteError(w, r, http.StatusBadRequest, errorCodeInvalidInput, "Failed to read body")
		return
	}

	if h.webhook.AppSecret != "" && !validHubSignature(h.webhook.AppSecret, body, r.Header.Get(hubSignatureHeader)) {
		h.logger.Warn("Webhook signature mismatch", zap.String("remote_addr", r.RemoteAddr))
		middleware.WriteError(w, r, http.StatusForbidden, errorCodeForbidden, errorMessageInvalidSignature)
		return
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		middleware.WriteError(w, r, http.StatusBadRequest, errorCodeInvalidInput, errorMessageInvalidBody)
		return
	}

	job := worker.Job{
		Key: bot.ShardKey(&payload),
		Handler: func(ctx context.Context) error {
			h.processor.Process(ctx, &payload)
			return nil
		},
	}
	if !h.pool.TryDispatch(job) {
		h.logger.Warn("Webhook dropped, worker queue full", zap.String("shard_key", job.Key))
	}

	render.JSON(w, r, statusResponse{Status: "ok"})
}

// RazorpayWebhook applies payment and refund events.
func (h *Handler) RazorpayWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		middleware.WriteError(w, r, http.StatusBadRequest, errorCodeInvalidInput, "Failed to read body")
		return
	}

	if err := h.service.Order.HandlePaymentWebhook(r.Context(), body, r.Header.Get(razorpaySignatureHeader)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, statusResponse{Status: "ok"})
}

// ShiprocketWebhook applies courier tracking pushes.
func (h *Handler) ShiprocketWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		middleware.WriteError(w, r, http.StatusBadRequest, errorCodeInvalidInput, "Failed to read body")
		return
	}

	if err := h.service.Order.HandleShippingWebhook(r.Context(), body); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, statusResponse{Status: "ok"})
}

func validHubSignature(secret string, body []byte, header string) bool {
	if !strings.HasPrefix(header, hubSignaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, hubSignaturePrefix))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
