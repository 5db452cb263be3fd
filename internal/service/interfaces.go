package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/payment"
	"github.com/kaapav/kaapav-bot/internal/shipping"
)

type CustomerService interface {
	List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error)
	Get(ctx context.Context, phone string) (*CustomerDetail, error)
	Update(ctx context.Context, phone string, update models.CustomerUpdate) (*models.Customer, error)
	Delete(ctx context.Context, phone string) error
	Stats(ctx context.Context) (*models.CustomerStats, error)
}

type ChatService interface {
	List(ctx context.Context, filter models.ChatFilter) ([]*models.Chat, int64, error)
	Get(ctx context.Context, phone string) (*models.Chat, error)
	Messages(ctx context.Context, phone string, limit, offset int) ([]*models.Message, error)
	MarkRead(ctx context.Context, phone string) error
	Update(ctx context.Context, phone string, update models.ChatUpdate) (*models.Chat, error)
	// Send delivers an agent message and returns the provider message id.
	Send(ctx context.Context, phone string, req SendRequest) (string, error)
}

type OrderService interface {
	List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, int64, error)
	Get(ctx context.Context, orderID string) (*OrderDetail, error)
	Stats(ctx context.Context) (*models.OrderStats, error)
	UpdateStatus(ctx context.Context, orderID string, to models.OrderStatus, note string) (*models.Order, error)
	Cancel(ctx context.Context, orderID, reason string) (*models.Order, error)
	Refund(ctx context.Context, orderID string, req RefundRequest) (*models.Order, error)
	Ship(ctx context.Context, orderID string) (*models.Order, error)
	Track(ctx context.Context, orderID string) (*TrackingResult, error)
	HandlePaymentWebhook(ctx context.Context, body []byte, signature string) error
	HandleShippingWebhook(ctx context.Context, body []byte) error
}

type ProductService interface {
	List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int64, error)
	Get(ctx context.Context, productID string) (*models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, productID string, input models.ProductInput) (*models.Product, error)
	SetStock(ctx context.Context, productID string, stock int) error
	Delete(ctx context.Context, productID string) error
}

type BroadcastService interface {
	List(ctx context.Context, status models.BroadcastStatus, limit, offset int) ([]*models.Broadcast, int64, error)
	Create(ctx context.Context, input models.BroadcastInput, createdBy string) (*models.Broadcast, error)
	Get(ctx context.Context, id string) (*models.Broadcast, error)
	Stats(ctx context.Context, id string) (*models.BroadcastStats, error)
	// SendNow claims the broadcast and sends it in the background.
	SendNow(ctx context.Context, id string) error
	Schedule(ctx context.Context, id string, at time.Time) error
	Cancel(ctx context.Context, id string) error
	Recipients(ctx context.Context, id string, status models.RecipientStatus, limit, offset int) ([]*models.BroadcastRecipient, error)
	// Execute claims and sends the broadcast, returning once every batch ran.
	Execute(ctx context.Context, id string) (*models.BroadcastStats, error)
	// RunDue starts scheduled broadcasts whose time has come and reports how
	// many started. Sending continues in the background.
	RunDue(ctx context.Context) (int, error)
	// Wait blocks until background sends finish or ctx is done.
	Wait(ctx context.Context) error
}

type AdminService interface {
	QuickReplies(ctx context.Context) ([]*models.QuickReply, error)
	GetQuickReply(ctx context.Context, id int64) (*models.QuickReply, error)
	CreateQuickReply(ctx context.Context, input models.QuickReplyInput) (*models.QuickReply, error)
	UpdateQuickReply(ctx context.Context, id int64, input models.QuickReplyInput) (*models.QuickReply, error)
	DeleteQuickReply(ctx context.Context, id int64) error

	Labels(ctx context.Context) ([]*models.Label, error)
	CreateLabel(ctx context.Context, input models.LabelInput) (*models.Label, error)
	DeleteLabel(ctx context.Context, id int64) error

	Templates(ctx context.Context) ([]*models.Template, error)
	CreateTemplate(ctx context.Context, input models.TemplateInput) (*models.Template, error)

	Agents(ctx context.Context) ([]*models.Agent, error)
	CreateAgent(ctx context.Context, input models.AgentInput) (*models.Agent, error)

	Settings(ctx context.Context) ([]*models.Setting, error)
	UpsertSetting(ctx context.Context, input models.SettingInput) (*models.Setting, error)

	Dashboard(ctx context.Context) (*models.Dashboard, error)
	// CreateSession issues a dashboard session token for an authenticated agent.
	CreateSession(ctx context.Context, agent string) (string, error)
}

// JobsService holds the periodic maintenance work run by the scheduler.
type JobsService interface {
	SweepReminders(ctx context.Context) error
	RunScheduledBroadcasts(ctx context.Context) error
	CartReminders(ctx context.Context) error
	DeliveryReminders(ctx context.Context) error
	MorningEngagement(ctx context.Context) error
	EveningEngagement(ctx context.Context) error
	NightlyCleanup(ctx context.Context) error
	DailyReport(ctx context.Context) error
	Resegment(ctx context.Context) error
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
	// RunJob runs one named job immediately.
	RunJob(ctx context.Context, name string) error
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}

// PaymentProvider is the slice of the Razorpay client the services use.
type PaymentProvider interface {
	Configured() bool
	Refund(ctx context.Context, req payment.RefundRequest) (*payment.Refund, error)
	VerifySignature(body []byte, signature string) error
}

// ShippingProvider is the slice of the Shiprocket client the services use.
type ShippingProvider interface {
	Configured() bool
	CreateShipment(ctx context.Context, order *models.Order) (*shipping.Shipment, error)
	Track(ctx context.Context, awb string) (*shipping.Tracking, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// SessionStore issues dashboard sessions, satisfied by *kv.Store.
type SessionStore interface {
	CreateAdminSession(ctx context.Context, agent string, ttl time.Duration) (string, error)
}

type BreakerReporter interface {
	Name() string
	GetState() breaker.State
	GetCounts() (requests, failures uint32)
}
