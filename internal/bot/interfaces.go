package bot

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_bot.go -package=mocks

import (
	"context"
	"time"

	"github.com/kaapav/kaapav-bot/internal/kv"
	"github.com/kaapav/kaapav-bot/internal/payment"
	"github.com/kaapav/kaapav-bot/internal/shipping"
)

// KV is the shared redis state used by the routers, satisfied by *kv.Store.
type KV interface {
	Allow(ctx context.Context, bucket string, limit int, window time.Duration) (bool, time.Duration, error)
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	RecordClick(ctx context.Context, phone, action string) (string, error)
	RecentClicks(ctx context.Context, phone string, n int) ([]string, error)
	CommonNext(ctx context.Context, action string, n int) ([]string, error)
	TouchSession(ctx context.Context, phone string) (*kv.Session, error)
}

// Responder answers free text, satisfied by *ai.Responder.
type Responder interface {
	Configured() bool
	Reply(ctx context.Context, text, language string) (string, bool, error)
}

// Payments creates payment links, satisfied by *payment.Client.
type Payments interface {
	Configured() bool
	CreatePaymentLink(ctx context.Context, req payment.LinkRequest) (*payment.PaymentLink, error)
}

// Shipping answers delivery questions, satisfied by *shipping.Client.
type Shipping interface {
	Configured() bool
	Serviceability(ctx context.Context, pincode string, cod bool) (*shipping.Serviceability, error)
	Track(ctx context.Context, awb string) (*shipping.Tracking, error)
}
