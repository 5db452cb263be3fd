package service

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

const (
	sessionTTL       = 12 * time.Hour
	topActionsWindow = 7 * 24 * time.Hour
	topActionsLimit  = 10
	recentReports    = 7
)

type adminService struct {
	repo     repository.Repository
	sessions SessionStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewAdminService(repo repository.Repository, sessions SessionStore, logger *zap.Logger, now func() time.Time) AdminService {
	if now == nil {
		now = time.Now
	}
	return &adminService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
		now:      now,
	}
}

func (s *adminService) QuickReplies(ctx context.Context) ([]*models.QuickReply, error) {
	replies, err := s.repo.QuickReply().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quick replies: %w", err)
	}
	return replies, nil
}

func (s *adminService) GetQuickReply(ctx context.Context, id int64) (*models.QuickReply, error) {
	reply, err := s.repo.QuickReply().Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return reply, nil
}

func (s *adminService) CreateQuickReply(ctx context.Context, input models.QuickReplyInput) (*models.QuickReply, error) {
	reply := &models.QuickReply{IsActive: true}
	if err := applyQuickReplyInput(reply, input); err != nil {
		return nil, err
	}
	if err := s.repo.QuickReply().Create(ctx, reply); err != nil {
		return nil, translate(err)
	}
	s.logger.Info("Quick reply created", zap.Int64("id", reply.ID), zap.String("keyword", reply.Keyword))
	return reply, nil
}

func (s *adminService) UpdateQuickReply(ctx context.Context, id int64, input models.QuickReplyInput) (*models.QuickReply, error) {
	reply, err := s.repo.QuickReply().Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if err := applyQuickReplyInput(reply, input); err != nil {
		return nil, err
	}
	if err := s.repo.QuickReply().Update(ctx, reply); err != nil {
		return nil, translate(err)
	}
	return reply, nil
}

func (s *adminService) DeleteQuickReply(ctx context.Context, id int64) error {
	if err := s.repo.QuickReply().Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func applyQuickReplyInput(reply *models.QuickReply, input models.QuickReplyInput) error {
	match := input.MatchType
	if match == "" {
		match = models.MatchContains
	}
	keyword := strings.TrimSpace(input.Keyword)
	if match == models.MatchRegex {
		if _, err := regexp.Compile("(?i)" + keyword); err != nil {
			return invalid("keyword is not a valid pattern: %v", err)
		}
	} else {
		keyword = strings.ToLower(keyword)
	}

	reply.Keyword = keyword
	reply.MatchType = match
	reply.Response = input.Response
	reply.Buttons = input.Buttons
	reply.Priority = input.Priority
	if input.IsActive != nil {
		reply.IsActive = *input.IsActive
	}
	return nil
}

func (s *adminService) Labels(ctx context.Context) ([]*models.Label, error) {
	labels, err := s.repo.Admin().ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

func (s *adminService) CreateLabel(ctx context.Context, input models.LabelInput) (*models.Label, error) {
	color := input.Color
	if color == "" {
		color = "#9E9E9E"
	}
	label := &models.Label{Name: strings.TrimSpace(input.Name), Color: color}
	if err := s.repo.Admin().CreateLabel(ctx, label); err != nil {
		return nil, translate(err)
	}
	return label, nil
}

func (s *adminService) DeleteLabel(ctx context.Context, id int64) error {
	if err := s.repo.Admin().DeleteLabel(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func (s *adminService) Templates(ctx context.Context) ([]*models.Template, error) {
	templates, err := s.repo.Admin().ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (s *adminService) CreateTemplate(ctx context.Context, input models.TemplateInput) (*models.Template, error) {
	tpl := &models.Template{
		Name:       strings.TrimSpace(input.Name),
		Language:   input.Language,
		Category:   input.Category,
		Body:       input.Body,
		Status:     "pending",
		Parameters: input.Parameters,
	}
	if err := s.repo.Admin().CreateTemplate(ctx, tpl); err != nil {
		return nil, translate(err)
	}
	return tpl, nil
}

func (s *adminService) Agents(ctx context.Context) ([]*models.Agent, error) {
	agents, err := s.repo.Admin().ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

func (s *adminService) CreateAgent(ctx context.Context, input models.AgentInput) (*models.Agent, error) {
	role := input.Role
	if role == "" {
		role = "agent"
	}
	agent := &models.Agent{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:    sql.NullString{String: input.Phone, Valid: input.Phone != ""},
		Role:     role,
		IsActive: true,
	}
	if err := s.repo.Admin().CreateAgent(ctx, agent); err != nil {
		return nil, translate(err)
	}
	return agent, nil
}

func (s *adminService) Settings(ctx context.Context) ([]*models.Setting, error) {
	settings, err := s.repo.Admin().ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (s *adminService) UpsertSetting(ctx context.Context, input models.SettingInput) (*models.Setting, error) {
	setting, err := s.repo.Admin().UpsertSetting(ctx, strings.TrimSpace(input.Key), input.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}
	return setting, nil
}

// Dashboard gathers the overview counters concurrently.
func (s *adminService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	now := s.now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dash := &models.Dashboard{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.repo.Customer().Stats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get customer stats: %w", err)
		}
		dash.Customers = *stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.repo.Order().Stats(ctx, todayStart)
		if err != nil {
			return fmt.Errorf("failed to get order stats: %w", err)
		}
		dash.Orders = *stats
		return nil
	})
	g.Go(func() error {
		open, unread, err := s.repo.Chat().Counts(ctx)
		if err != nil {
			return fmt.Errorf("failed to count chats: %w", err)
		}
		dash.OpenChats, dash.UnreadChats = open, unread
		return nil
	})
	g.Go(func() error {
		in, out, err := s.repo.Message().CountSince(ctx, todayStart)
		if err != nil {
			return fmt.Errorf("failed to count messages: %w", err)
		}
		dash.MessagesIn, dash.MessagesOut = in, out
		return nil
	})
	g.Go(func() error {
		actions, err := s.repo.Analytics().TopActions(ctx, now.Add(-topActionsWindow), topActionsLimit)
		if err != nil {
			return fmt.Errorf("failed to get top actions: %w", err)
		}
		dash.TopActions = actions
		return nil
	})
	g.Go(func() error {
		reports, err := s.repo.Analytics().RecentReports(ctx, recentReports)
		if err != nil {
			return fmt.Errorf("failed to get reports: %w", err)
		}
		dash.Reports = reports
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dash, nil
}

func (s *adminService) CreateSession(ctx context.Context, agent string) (string, error) {
	agent = strings.TrimSpace(agent)
	if agent == "" {
		return "", invalid("agent is required")
	}
	token, err := s.sessions.CreateAdminSession(ctx, agent, sessionTTL)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Info("Dashboard session created", zap.String("agent", agent))
	return token, nil
}
