package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db         *sqlx.DB
	customer   CustomerRepository
	chat       ChatRepository
	message    MessageRepository
	state      StateRepository
	cart       CartRepository
	order      OrderRepository
	product    ProductRepository
	broadcast  BroadcastRepository
	quickReply QuickReplyRepository
	admin      AdminRepository
	reminder   ReminderRepository
	analytics  AnalyticsRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:         db,
		customer:   NewCustomerRepository(db),
		chat:       NewChatRepository(db),
		message:    NewMessageRepository(db),
		state:      NewStateRepository(db),
		cart:       NewCartRepository(db),
		order:      NewOrderRepository(db),
		product:    NewProductRepository(db),
		broadcast:  NewBroadcastRepository(db),
		quickReply: NewQuickReplyRepository(db),
		admin:      NewAdminRepository(db),
		reminder:   NewReminderRepository(db),
		analytics:  NewAnalyticsRepository(db),
	}
}

func (r *repositoryImpl) Customer() CustomerRepository     { return r.customer }
func (r *repositoryImpl) Chat() ChatRepository             { return r.chat }
func (r *repositoryImpl) Message() MessageRepository       { return r.message }
func (r *repositoryImpl) State() StateRepository           { return r.state }
func (r *repositoryImpl) Cart() CartRepository             { return r.cart }
func (r *repositoryImpl) Order() OrderRepository           { return r.order }
func (r *repositoryImpl) Product() ProductRepository       { return r.product }
func (r *repositoryImpl) Broadcast() BroadcastRepository   { return r.broadcast }
func (r *repositoryImpl) QuickReply() QuickReplyRepository { return r.quickReply }
func (r *repositoryImpl) Admin() AdminRepository           { return r.admin }
func (r *repositoryImpl) Reminder() ReminderRepository     { return r.reminder }
func (r *repositoryImpl) Analytics() AnalyticsRepository   { return r.analytics }

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
