package bot

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

// StateStore keeps the single active conversation flow per phone. Storage
// errors are logged and swallowed: a lost write restarts the flow on the
// next message.
type StateStore struct {
	repo   repository.StateRepository
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewStateStore(repo repository.StateRepository, now func() time.Time, logger *zap.Logger) *StateStore {
	if now == nil {
		now = time.Now
	}
	return &StateStore{
		repo:   repo,
		ttl:    models.ConversationStateTTL,
		now:    now,
		logger: logger,
	}
}

// Get returns the unexpired state for phone, or nil.
func (s *StateStore) Get(ctx context.Context, phone string) *models.ConversationState {
	state, err := s.repo.Get(ctx, phone)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Failed to load conversation state", zap.String("phone", phone), zap.Error(err))
		}
		return nil
	}
	if state.Expired(s.now()) {
		return nil
	}
	if state.FlowData == nil {
		state.FlowData = models.JSONMap{}
	}
	return state
}

// Set moves phone to (flow, step), merging patch into the flow data of a
// live state of the same flow. The TTL restarts from now.
func (s *StateStore) Set(ctx context.Context, phone, flow, step string, patch map[string]any) *models.ConversationState {
	now := s.now()
	data := models.JSONMap{}
	if current := s.Get(ctx, phone); current != nil && current.CurrentFlow == flow {
		for k, v := range current.FlowData {
			data[k] = v
		}
	}
	for k, v := range patch {
		data[k] = v
	}

	state := &models.ConversationState{
		Phone:       phone,
		CurrentFlow: flow,
		CurrentStep: step,
		FlowData:    data,
		ExpiresAt:   now.Add(s.ttl),
		UpdatedAt:   now,
	}
	if err := s.repo.Upsert(ctx, state); err != nil {
		s.logger.Warn("Failed to save conversation state",
			zap.String("phone", phone),
			zap.String("flow", flow),
			zap.String("step", step),
			zap.Error(err))
	}
	return state
}

func (s *StateStore) Clear(ctx context.Context, phone string) {
	if err := s.repo.Delete(ctx, phone); err != nil {
		s.logger.Warn("Failed to clear conversation state", zap.String("phone", phone), zap.Error(err))
	}
}
