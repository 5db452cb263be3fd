package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/kaapav/kaapav-bot/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	Customer() CustomerRepository
	Chat() ChatRepository
	Message() MessageRepository
	State() StateRepository
	Cart() CartRepository
	Order() OrderRepository
	Product() ProductRepository
	Broadcast() BroadcastRepository
	QuickReply() QuickReplyRepository
	Admin() AdminRepository
	Reminder() ReminderRepository
	Analytics() AnalyticsRepository
}

// RecipientQuery selects broadcast recipients among reachable customers.
type RecipientQuery struct {
	Target  models.TargetType
	Segment models.Segment
	Labels  []string
	Phones  []string
}

type CustomerRepository interface {
	// Touch creates the customer on first contact and refreshes last_seen.
	Touch(ctx context.Context, phone, name string) (*models.Customer, bool, error)
	Get(ctx context.Context, phone string) (*models.Customer, error)
	List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error)
	Update(ctx context.Context, phone string, update models.CustomerUpdate) (*models.Customer, error)
	SoftDelete(ctx context.Context, phone string) error
	SetLanguage(ctx context.Context, phone, language string) error
	SetMarketingOptIn(ctx context.Context, phone string, optIn bool) error
	SetAddress(ctx context.Context, phone, name, address, pincode string) error
	Stats(ctx context.Context) (*models.CustomerStats, error)
	Recipients(ctx context.Context, query RecipientQuery) ([]string, error)
	EngagementTargets(ctx context.Context, seenAfter, seenBefore time.Time, limit int) ([]*models.Customer, error)
	RecomputeSegments(ctx context.Context, now time.Time) (int64, error)
}

type ChatRepository interface {
	Upsert(ctx context.Context, summary models.ChatSummary) error
	Get(ctx context.Context, phone string) (*models.Chat, error)
	List(ctx context.Context, filter models.ChatFilter) ([]*models.Chat, int64, error)
	MarkRead(ctx context.Context, phone string) error
	Update(ctx context.Context, phone string, update models.ChatUpdate) (*models.Chat, error)
	Counts(ctx context.Context) (open int64, unread int64, err error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg models.NewMessage) (int64, error)
	UpdateStatus(ctx context.Context, update models.StatusUpdate) error
	ListByPhone(ctx context.Context, phone string, limit, offset int) ([]*models.Message, error)
	SetAIResponse(ctx context.Context, id int64, response string) error
	CountSince(ctx context.Context, since time.Time) (incoming int64, outgoing int64, err error)
}

type StateRepository interface {
	Get(ctx context.Context, phone string) (*models.ConversationState, error)
	Upsert(ctx context.Context, state *models.ConversationState) error
	Delete(ctx context.Context, phone string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type CartRepository interface {
	GetActive(ctx context.Context, phone string) (*models.Cart, error)
	// SaveActive replaces the active cart contents and bumps its version.
	SaveActive(ctx context.Context, phone string, items models.CartItems, coupon string) (*models.Cart, error)
	SetStatus(ctx context.Context, id int64, status models.CartStatus) error
	ListIdle(ctx context.Context, idleBefore time.Time, maxReminders, limit int) ([]*models.Cart, error)
	MarkReminded(ctx context.Context, id int64) error
	ExpireIdle(ctx context.Context, before time.Time) (int64, error)
	ListForEngagement(ctx context.Context, idleBefore time.Time, limit int) ([]*models.Cart, error)
}

// StatusChange moves an order along its lifecycle.
type StatusChange struct {
	OrderID string
	To      models.OrderStatus
	Note    string
}

// ShipmentInfo is what the shipping aggregator returned for an order.
type ShipmentInfo struct {
	ShiprocketOrderID string
	ShipmentID        string
	TrackingID        string
	Courier           string
	TrackingURL       string
}

type OrderRepository interface {
	// CreateFromCart inserts the order, decrements stock and converts the cart
	// in one transaction. A repeated idempotency key returns the existing order
	// with created=false.
	CreateFromCart(ctx context.Context, order models.NewOrder) (*models.Order, bool, error)
	Get(ctx context.Context, orderID string) (*models.Order, error)
	GetByPaymentLinkID(ctx context.Context, linkID string) (*models.Order, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*models.Order, error)
	ListByPhone(ctx context.Context, phone string, limit int) ([]*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, int64, error)
	ListByStatus(ctx context.Context, status models.OrderStatus, payment models.PaymentStatus, updatedBefore time.Time, limit int) ([]*models.Order, error)
	Stats(ctx context.Context, todayStart time.Time) (*models.OrderStats, error)
	SetPaymentLink(ctx context.Context, orderID, linkID, url string) error
	// MarkPaid applies a payment exactly once per order; applied=false when
	// the order was already paid.
	MarkPaid(ctx context.Context, payment models.PaymentResult) (*models.Order, bool, error)
	UpdateStatus(ctx context.Context, change StatusChange) (*models.Order, error)
	SetShipment(ctx context.Context, orderID string, info ShipmentInfo) error
	MarkRefunded(ctx context.Context, orderID string, amount int64) (*models.Order, error)
	Events(ctx context.Context, orderID string) ([]*models.OrderEvent, error)
}

type ProductRepository interface {
	Get(ctx context.Context, productID string) (*models.Product, error)
	GetByRetailerID(ctx context.Context, retailerID string) (*models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int64, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*models.Product, error)
	NewArrivals(ctx context.Context, limit int) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	SetStock(ctx context.Context, productID string, stock int) error
	SoftDelete(ctx context.Context, productID string) error
}

type BroadcastRepository interface {
	Create(ctx context.Context, broadcast *models.Broadcast) error
	Get(ctx context.Context, id string) (*models.Broadcast, error)
	List(ctx context.Context, status models.BroadcastStatus, limit, offset int) ([]*models.Broadcast, int64, error)
	Schedule(ctx context.Context, id string, at time.Time) error
	// Start claims a draft or scheduled broadcast for sending; false when
	// another caller already claimed it or it was cancelled.
	Start(ctx context.Context, id string, phones []string) (bool, error)
	RecordResult(ctx context.Context, id, phone, messageID, errMsg string) error
	Finish(ctx context.Context, id string, status models.BroadcastStatus) error
	Cancel(ctx context.Context, id string) (bool, error)
	Status(ctx context.Context, id string) (models.BroadcastStatus, error)
	DueScheduled(ctx context.Context, now time.Time, limit int) ([]*models.Broadcast, error)
	Recipients(ctx context.Context, id string, status models.RecipientStatus, limit, offset int) ([]*models.BroadcastRecipient, error)
}

type QuickReplyRepository interface {
	ListActive(ctx context.Context) ([]*models.QuickReply, error)
	List(ctx context.Context) ([]*models.QuickReply, error)
	Get(ctx context.Context, id int64) (*models.QuickReply, error)
	Create(ctx context.Context, reply *models.QuickReply) error
	Update(ctx context.Context, reply *models.QuickReply) error
	Delete(ctx context.Context, id int64) error
	IncrementUse(ctx context.Context, id int64) error
}

type AdminRepository interface {
	ListLabels(ctx context.Context) ([]*models.Label, error)
	CreateLabel(ctx context.Context, label *models.Label) error
	DeleteLabel(ctx context.Context, id int64) error
	ListTemplates(ctx context.Context) ([]*models.Template, error)
	CreateTemplate(ctx context.Context, tpl *models.Template) error
	ListAgents(ctx context.Context) ([]*models.Agent, error)
	CreateAgent(ctx context.Context, agent *models.Agent) error
	ListSettings(ctx context.Context) ([]*models.Setting, error)
	GetSetting(ctx context.Context, key string) (string, error)
	UpsertSetting(ctx context.Context, key, value string) (*models.Setting, error)
}

type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	// ClaimDue returns pending reminders due at now and counts the attempt.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*models.Reminder, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, errMsg string, maxAttempts int) error
	CancelByReference(ctx context.Context, reminderType models.ReminderType, reference string) error
}

type AnalyticsRepository interface {
	RecordEvent(ctx context.Context, event *models.AnalyticsEvent) error
	LogError(ctx context.Context, entry *models.ErrorLog) error
	PruneEvents(ctx context.Context, before time.Time) (int64, error)
	TopActions(ctx context.Context, since time.Time, limit int) ([]models.ActionCount, error)
	BuildDailyReport(ctx context.Context, day time.Time) (*models.DailyReport, error)
	SaveDailyReport(ctx context.Context, report *models.DailyReport) error
	RecentReports(ctx context.Context, limit int) ([]models.DailyReport, error)
}
