package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/bot"
	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/normalize"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

type chatService struct {
	repo    repository.Repository
	gateway messenger.Gateway
	logger  *zap.Logger
}

func NewChatService(repo repository.Repository, gateway messenger.Gateway, logger *zap.Logger) ChatService {
	return &chatService{
		repo:    repo,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *chatService) List(ctx context.Context, filter models.ChatFilter) ([]*models.Chat, int64, error) {
	chats, total, err := s.repo.Chat().List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, total, nil
}

func (s *chatService) Get(ctx context.Context, phone string) (*models.Chat, error) {
	chat, err := s.repo.Chat().Get(ctx, normalize.Phone(phone))
	if err != nil {
		return nil, translate(err)
	}
	return chat, nil
}

func (s *chatService) Messages(ctx context.Context, phone string, limit, offset int) ([]*models.Message, error) {
	messages, err := s.repo.Message().ListByPhone(ctx, normalize.Phone(phone), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *chatService) MarkRead(ctx context.Context, phone string) error {
	if err := s.repo.Chat().MarkRead(ctx, normalize.Phone(phone)); err != nil {
		return translate(err)
	}
	return nil
}

func (s *chatService) Update(ctx context.Context, phone string, update models.ChatUpdate) (*models.Chat, error) {
	if update.Status != nil {
		switch *update.Status {
		case models.ChatStatusOpen, models.ChatStatusPending, models.ChatStatusResolved, models.ChatStatusArchived:
		default:
			return nil, invalid("unknown chat status %q", *update.Status)
		}
	}
	if update.Priority != nil {
		switch *update.Priority {
		case models.ChatPriorityLow, models.ChatPriorityNormal, models.ChatPriorityHigh:
		default:
			return nil, invalid("unknown chat priority %q", *update.Priority)
		}
	}

	chat, err := s.repo.Chat().Update(ctx, normalize.Phone(phone), update)
	if err != nil {
		return nil, translate(err)
	}
	return chat, nil
}

func (s *chatService) Send(ctx context.Context, phone string, req SendRequest) (string, error) {
	to := normalize.Phone(phone)
	if to == "" {
		return "", invalid("phone is required")
	}

	msg, err := agentMessage(to, req)
	if err != nil {
		return "", err
	}

	id, err := s.gateway.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	s.logger.Info("Agent message sent", zap.String("phone", to), zap.String("type", req.Type), zap.String("message_id", id))
	return id, nil
}

func agentMessage(to string, req SendRequest) (whatsapp.Message, error) {
	switch req.Type {
	case "text":
		return whatsapp.NewText(to, req.Text, true), nil
	case "image", "video", "audio", "document":
		if req.MediaURL == "" {
			return whatsapp.Message{}, invalid("media_url is required for %s messages", req.Type)
		}
		return whatsapp.NewMedia(to, req.Type, req.MediaURL, req.Caption, req.Filename), nil
	case "template":
		language := req.Language
		if language == "" {
			language = "en"
		}
		return whatsapp.NewTemplate(to, req.TemplateName, language, req.Params), nil
	case "buttons":
		if len(req.Buttons) == 0 {
			return whatsapp.Message{}, invalid("buttons are required for buttons messages")
		}
		return whatsapp.NewButtons(to, req.Text, "", customButtons(req.Buttons)), nil
	}
	return whatsapp.Message{}, invalid("unsupported message type %q", req.Type)
}

// customButtons turns admin-entered labels into reply buttons whose ids the
// button router understands.
func customButtons(labels []string) []whatsapp.Button {
	buttons := make([]whatsapp.Button, 0, min(len(labels), 3))
	for _, label := range labels {
		if len(buttons) == 3 {
			break
		}
		buttons = append(buttons, whatsapp.Button{ID: bot.CanonicalID(label), Title: label})
	}
	return buttons
}
