// Package handler serves the WhatsApp, payment and shipping webhooks and the
// admin REST API.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/middleware"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/scheduler"
	"github.com/kaapav/kaapav-bot/internal/service"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
	"github.com/kaapav/kaapav-bot/internal/worker"
)

const (
	errorCodeInvalidInput     = "INVALID_INPUT"
	errorCodeValidation       = "VALIDATION_FAILED"
	errorCodeNotFound         = "NOT_FOUND"
	errorCodeConflict         = "CONFLICT"
	errorCodeForbidden        = "FORBIDDEN"
	errorCodeNotConfigured    = "NOT_CONFIGURED"
	errorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	errorCodeProvider         = "PROVIDER_ERROR"
	errorCodeSchedulerRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerStopped = "SCHEDULER_NOT_RUNNING"
)

const (
	errorMessageInvalidBody      = "Request body is not valid JSON"
	errorMessageNotFound         = "Resource not found"
	errorMessageInvalidSignature = "Invalid signature"
	errorMessageNotConfigured    = "Integration is not configured"
	errorMessageUnavailable      = "Upstream provider unavailable, retry later"
	errorMessageSchedulerRunning = "Scheduler is already running"
	errorMessageSchedulerStopped = "Scheduler is not running"
)

const (
	schedulerMessageStarted = "Scheduler started successfully"
	schedulerMessageStopped = "Scheduler stopped successfully"
)

const (
	defaultPageLimit = 50
	chatPageCap      = 100
	customerPageCap  = 500
	maxBodyBytes     = 1 << 20
)

// WebhookProcessor handles one verified WhatsApp delivery, satisfied by
// *bot.Dispatcher.
type WebhookProcessor interface {
	Process(ctx context.Context, payload *models.WebhookPayload)
}

// JobDispatcher queues work without blocking, satisfied by *worker.Pool.
type JobDispatcher interface {
	TryDispatch(job worker.Job) bool
}

// WebhookConfig holds the WhatsApp webhook secrets.
type WebhookConfig struct {
	VerifyToken string
	AppSecret   string
}

type Handler struct {
	service     *service.Service
	webhook     WebhookConfig
	processor   WebhookProcessor
	pool        JobDispatcher
	validate    *validator.Validate
	exposeStack bool
	logger      *zap.Logger
}

type Options struct {
	Service     *service.Service
	Webhook     WebhookConfig
	Processor   WebhookProcessor
	Pool        JobDispatcher
	ExposeStack bool
	Logger      *zap.Logger
}

func NewHandler(opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Handler{
		service:     opts.Service,
		webhook:     opts.Webhook,
		processor:   opts.Processor,
		pool:        opts.Pool,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		exposeStack: opts.ExposeStack,
		logger:      opts.Logger,
	}
}

// HealthCheck reports 503 when a store is unreachable; a degraded provider
// still answers 200 so traffic keeps flowing.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	if health.Status == service.StatusUnhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, health)
}

// StartScheduler starts the cron clock.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Start(); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, statusResponse{Status: "started", Message: schedulerMessageStarted})
}

// StopScheduler stops the cron clock.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Stop(); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, statusResponse{Status: "stopped", Message: schedulerMessageStopped})
}

// RunJob runs one scheduled job now and waits for it.
func (h *Handler) RunJob(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	started := time.Now()
	if err := h.service.Scheduler.RunJob(r.Context(), name); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, jobResponse{Job: name, Status: "completed", Duration: time.Since(started).String()})
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type jobResponse struct {
	Job      string `json:"job"`
	Status   string `json:"status"`
	Duration string `json:"duration"`
}

type listResponse struct {
	Data   any   `json:"data"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// page binds limit and offset. Limits above limitCap are clamped.
type page struct {
	Limit  int
	Offset int
}

func (h *Handler) bindPage(r *http.Request, limitCap int) (page, error) {
	q := newQuery(r)
	limit := optional[int](q, "limit")
	offset := optional[int](q, "offset")
	if q.err != nil {
		return page{}, q.err
	}

	p := page{Limit: defaultPageLimit}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, limitCap)
	}
	if offset != nil && *offset > 0 {
		p.Offset = *offset
	}
	return p, nil
}

// queryParams binds optional query parameters and keeps the first failure.
type queryParams struct {
	values url.Values
	err    error
}

func newQuery(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

// optional returns nil when the parameter is absent. Optional form
// parameters bind through an extra indirection, so the target is **T.
func optional[T any](q *queryParams, name string) *T {
	if q.err != nil {
		return nil
	}
	var v *T
	if err := runtime.BindQueryParameter("form", true, false, name, q.values, &v); err != nil {
		q.err = fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
		return nil
	}
	return v
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// pathInt64 parses a numeric path parameter.
func pathInt64(r *http.Request, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return id, nil
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), dst); err != nil {
		middleware.WriteError(w, r, http.StatusBadRequest, errorCodeInvalidInput, errorMessageInvalidBody)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeServiceError(w, r, err)
		return false
	}
	return true
}

// writeServiceError maps service, provider and validation errors onto HTTP
// statuses.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	var apiErr *whatsapp.APIError

	switch {
	case errors.As(err, &validationErrs):
		middleware.WriteError(w, r, http.StatusBadRequest, errorCodeValidation, validationMessage(validationErrs))
	case errors.Is(err, service.ErrInvalidInput):
		middleware.WriteError(w, r, http.StatusBadRequest, errorCodeInvalidInput, err.Error())
	case errors.Is(err, service.ErrNotFound):
		middleware.WriteError(w, r, http.StatusNotFound, errorCodeNotFound, errorMessageNotFound)
	case errors.Is(err, service.ErrConflict):
		middleware.WriteError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
	case errors.Is(err, scheduler.ErrAlreadyRunning):
		middleware.WriteError(w, r, http.StatusConflict, errorCodeSchedulerRunning, errorMessageSchedulerRunning)
	case errors.Is(err, scheduler.ErrNotRunning):
		middleware.WriteError(w, r, http.StatusConflict, errorCodeSchedulerStopped, errorMessageSchedulerStopped)
	case errors.Is(err, service.ErrInvalidSignature):
		middleware.WriteError(w, r, http.StatusForbidden, errorCodeForbidden, errorMessageInvalidSignature)
	case errors.Is(err, service.ErrNotConfigured), errors.Is(err, whatsapp.ErrNotConfigured):
		middleware.WriteError(w, r, http.StatusServiceUnavailable, errorCodeNotConfigured, errorMessageNotConfigured)
	case errors.Is(err, breaker.ErrOpen):
		middleware.WriteError(w, r, http.StatusServiceUnavailable, errorCodeUnavailable, errorMessageUnavailable)
	case errors.As(err, &apiErr):
		middleware.WriteError(w, r, http.StatusBadGateway, errorCodeProvider, apiErr.Message)
	default:
		middleware.LoggerFrom(r.Context(), h.logger).Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		resp := middleware.ErrorResponse{Error: middleware.ErrorCodeInternal, Message: middleware.ErrorMessageInternal}
		if h.exposeStack {
			resp.Message = err.Error()
			resp.Stack = string(debug.Stack())
		}
		middleware.WriteErrorResponse(w, r, http.StatusInternalServerError, resp)
	}
}

func validationMessage(errs validator.ValidationErrors) string {
	fe := errs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("field %s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("field %s failed %s", fe.Field(), fe.Tag())
}
