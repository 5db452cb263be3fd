package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/normalize"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

const (
	defaultBatchSize = 20
	defaultSendRate  = 60
	dueBroadcastsMax = 10
)

type BroadcastOption func(*broadcastService)

// WithSleep replaces the pause between batches.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) BroadcastOption {
	return func(s *broadcastService) {
		s.sleep = sleep
	}
}

func WithClock(now func() time.Time) BroadcastOption {
	return func(s *broadcastService) {
		if now != nil {
			s.now = now
		}
	}
}

type broadcastService struct {
	cfg     config.BroadcastConfig
	repo    repository.Repository
	gateway messenger.Gateway
	logger  *zap.Logger
	sleep   func(ctx context.Context, d time.Duration) error
	now     func() time.Time
	wg      sync.WaitGroup
}

func NewBroadcastService(
	cfg config.BroadcastConfig,
	repo repository.Repository,
	gateway messenger.Gateway,
	logger *zap.Logger,
	opts ...BroadcastOption,
) BroadcastService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.DefaultSendRate <= 0 {
		cfg.DefaultSendRate = defaultSendRate
	}
	s := &broadcastService{
		cfg:     cfg,
		repo:    repo,
		gateway: gateway,
		logger:  logger,
		sleep:   sleepContext,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *broadcastService) List(ctx context.Context, status models.BroadcastStatus, limit, offset int) ([]*models.Broadcast, int64, error) {
	broadcasts, total, err := s.repo.Broadcast().List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list broadcasts: %w", err)
	}
	return broadcasts, total, nil
}

func (s *broadcastService) Create(ctx context.Context, input models.BroadcastInput, createdBy string) (*models.Broadcast, error) {
	if input.TargetType == models.TargetSegment {
		switch models.Segment(input.TargetSegment) {
		case models.SegmentNew, models.SegmentRegular, models.SegmentVIP, models.SegmentInactive:
		default:
			return nil, invalid("unknown segment %q", input.TargetSegment)
		}
	}
	if input.MessageType == models.BroadcastButtons && len(input.Buttons) == 0 {
		return nil, invalid("buttons are required for buttons broadcasts")
	}

	rate := input.SendRate
	if rate <= 0 {
		rate = s.cfg.DefaultSendRate
	}
	language := input.TemplateLanguage
	if language == "" {
		language = "en"
	}

	b := &models.Broadcast{
		BroadcastID:      "BC-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:             strings.TrimSpace(input.Name),
		TargetType:       input.TargetType,
		TargetSegment:    nullString(input.TargetSegment),
		TargetLabels:     pq.StringArray(input.TargetLabels),
		TargetPhones:     pq.StringArray(normalizePhones(input.TargetPhones)),
		MessageType:      input.MessageType,
		Message:          input.Message,
		TemplateName:     nullString(input.TemplateName),
		TemplateLanguage: nullString(language),
		MediaURL:         nullString(input.MediaURL),
		Buttons:          pq.StringArray(input.Buttons),
		SendRate:         rate,
		Status:           models.BroadcastStatusDraft,
		CreatedBy:        createdBy,
	}
	if input.ScheduledAt != nil {
		if !input.ScheduledAt.After(s.now()) {
			return nil, invalid("scheduled_at must be in the future")
		}
		b.Status = models.BroadcastStatusScheduled
		b.ScheduledAt = sql.NullTime{Time: input.ScheduledAt.UTC(), Valid: true}
	}

	if err := s.repo.Broadcast().Create(ctx, b); err != nil {
		return nil, translate(err)
	}
	s.logger.Info("Broadcast created",
		zap.String("broadcast_id", b.BroadcastID),
		zap.String("target", string(b.TargetType)),
		zap.String("status", string(b.Status)),
	)
	return b, nil
}

func (s *broadcastService) Get(ctx context.Context, id string) (*models.Broadcast, error) {
	b, err := s.repo.Broadcast().Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return b, nil
}

func (s *broadcastService) Stats(ctx context.Context, id string) (*models.BroadcastStats, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return statsOf(b.BroadcastID, b.Status, b.TotalRecipients, b.SentCount, b.FailedCount), nil
}

func statsOf(id string, status models.BroadcastStatus, total, sent, failed int) *models.BroadcastStats {
	stats := &models.BroadcastStats{
		BroadcastID:     id,
		Status:          status,
		TotalRecipients: total,
		SentCount:       sent,
		FailedCount:     failed,
		Pending:         max(total-sent-failed, 0),
	}
	if total > 0 {
		stats.Progress = float64(sent+failed) * 100 / float64(total)
	}
	return stats
}

func (s *broadcastService) Schedule(ctx context.Context, id string, at time.Time) error {
	if !at.After(s.now()) {
		return invalid("scheduled time must be in the future")
	}
	if err := s.repo.Broadcast().Schedule(ctx, id, at.UTC()); err != nil {
		return translate(err)
	}
	return nil
}

func (s *broadcastService) Cancel(ctx context.Context, id string) error {
	cancelled, err := s.repo.Broadcast().Cancel(ctx, id)
	if err != nil {
		return translate(err)
	}
	if cancelled {
		s.logger.Info("Broadcast cancelled", zap.String("broadcast_id", id))
		return nil
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("%w: broadcast %s already finished", ErrConflict, id)
}

func (s *broadcastService) Recipients(ctx context.Context, id string, status models.RecipientStatus, limit, offset int) ([]*models.BroadcastRecipient, error) {
	recipients, err := s.repo.Broadcast().Recipients(ctx, id, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcast recipients: %w", err)
	}
	return recipients, nil
}

func (s *broadcastService) SendNow(ctx context.Context, id string) error {
	b, phones, err := s.claim(ctx, id)
	if err != nil {
		return err
	}

	s.launch(ctx, b, phones)
	return nil
}

// launch runs a claimed broadcast detached from the caller's deadline, so a
// request or cron timeout never strands recipients. Wait drains it.
func (s *broadcastService) launch(ctx context.Context, b *models.Broadcast, phones []string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(context.WithoutCancel(ctx), b, phones)
	}()
}

func (s *broadcastService) Execute(ctx context.Context, id string) (*models.BroadcastStats, error) {
	b, phones, err := s.claim(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, b, phones), nil
}

func (s *broadcastService) RunDue(ctx context.Context) (int, error) {
	pending, err := s.repo.Broadcast().DueScheduled(ctx, s.now(), dueBroadcastsMax)
	if err != nil {
		return 0, fmt.Errorf("failed to load scheduled broadcasts: %w", err)
	}

	started := 0
	for _, due := range pending {
		b, phones, err := s.claim(ctx, due.BroadcastID)
		if err != nil {
			if !errors.Is(err, ErrConflict) {
				s.logger.Error("Scheduled broadcast failed to start", zap.String("broadcast_id", due.BroadcastID), zap.Error(err))
			}
			continue
		}
		s.launch(ctx, b, phones)
		started++
	}
	return started, nil
}

func (s *broadcastService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// claim resolves recipients and moves the broadcast to sending. Only one
// caller wins the claim.
func (s *broadcastService) claim(ctx context.Context, id string) (*models.Broadcast, []string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !b.Status.Startable() {
		return nil, nil, fmt.Errorf("%w: broadcast %s is %s", ErrConflict, id, b.Status)
	}

	phones, err := s.repo.Customer().Recipients(ctx, repository.RecipientQuery{
		Target:  b.TargetType,
		Segment: models.Segment(b.TargetSegment.String),
		Labels:  b.TargetLabels,
		Phones:  b.TargetPhones,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}
	phones = normalizePhones(phones)

	claimed, err := s.repo.Broadcast().Start(ctx, id, phones)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start broadcast: %w", err)
	}
	if !claimed {
		return nil, nil, fmt.Errorf("%w: broadcast %s was already started or cancelled", ErrConflict, id)
	}

	b.Status = models.BroadcastStatusSending
	b.TotalRecipients = len(phones)
	s.logger.Info("Broadcast started",
		zap.String("broadcast_id", id),
		zap.Int("recipients", len(phones)),
		zap.Int("send_rate", b.SendRate),
	)
	return b, phones, nil
}

// run sends in batches. Every recipient in a batch is attempted; a failed
// send is recorded against that recipient and never aborts its siblings.
func (s *broadcastService) run(ctx context.Context, b *models.Broadcast, phones []string) *models.BroadcastStats {
	batch := s.cfg.BatchSize
	rate := b.SendRate
	if rate <= 0 {
		rate = s.cfg.DefaultSendRate
	}
	delay := time.Duration(float64(batch) / float64(rate) * float64(time.Minute))

	var sent, failed atomic.Int64
	status := models.BroadcastStatusCompleted

	for start := 0; start < len(phones); start += batch {
		if start > 0 {
			if err := s.sleep(ctx, delay); err != nil {
				s.logger.Warn("Broadcast interrupted", zap.String("broadcast_id", b.BroadcastID), zap.Error(err))
				status = models.BroadcastStatusFailed
				break
			}
			current, err := s.repo.Broadcast().Status(ctx, b.BroadcastID)
			if err != nil {
				s.logger.Warn("Failed to check broadcast status", zap.String("broadcast_id", b.BroadcastID), zap.Error(err))
			} else if current == models.BroadcastStatusCancelled {
				status = models.BroadcastStatusCancelled
				break
			}
		}

		var g errgroup.Group
		for _, phone := range phones[start:min(start+batch, len(phones))] {
			phone := phone
			g.Go(func() error {
				if s.sendOne(ctx, b, phone) {
					sent.Add(1)
				} else {
					failed.Add(1)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	if status == models.BroadcastStatusCompleted && sent.Load() == 0 && failed.Load() > 0 {
		status = models.BroadcastStatusFailed
	}
	if status != models.BroadcastStatusCancelled {
		if err := s.repo.Broadcast().Finish(context.WithoutCancel(ctx), b.BroadcastID, status); err != nil {
			s.logger.Error("Failed to finish broadcast", zap.String("broadcast_id", b.BroadcastID), zap.Error(err))
		}
	}

	stats := statsOf(b.BroadcastID, status, len(phones), int(sent.Load()), int(failed.Load()))
	s.logger.Info("Broadcast finished",
		zap.String("broadcast_id", b.BroadcastID),
		zap.String("status", string(status)),
		zap.Int("sent", stats.SentCount),
		zap.Int("failed", stats.FailedCount),
	)
	return stats
}

func (s *broadcastService) sendOne(ctx context.Context, b *models.Broadcast, phone string) bool {
	messageID, err := s.gateway.Send(ctx, broadcastMessage(b, phone))
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	if recErr := s.repo.Broadcast().RecordResult(ctx, b.BroadcastID, phone, messageID, errMsg); recErr != nil {
		s.logger.Warn("Failed to record broadcast result",
			zap.String("broadcast_id", b.BroadcastID),
			zap.String("phone", phone),
			zap.Error(recErr),
		)
	}
	return err == nil
}

func broadcastMessage(b *models.Broadcast, to string) whatsapp.Message {
	switch b.MessageType {
	case models.BroadcastTemplate:
		language := b.TemplateLanguage.String
		if language == "" {
			language = "en"
		}
		return whatsapp.NewTemplate(to, b.TemplateName.String, language, nil)
	case models.BroadcastImage:
		return whatsapp.NewMedia(to, "image", b.MediaURL.String, b.Message, "")
	case models.BroadcastButtons:
		return whatsapp.NewButtons(to, b.Message, "", customButtons(b.Buttons))
	}
	return whatsapp.NewText(to, b.Message, true)
}

// normalizePhones canonicalizes and dedupes, keeping first-seen order.
func normalizePhones(phones []string) []string {
	seen := make(map[string]struct{}, len(phones))
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		n := normalize.Phone(p)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
