// Package bot routes inbound WhatsApp traffic through menus, the text and
// button routers and the order flow.
package bot

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/telemetry"
)

// Deps are the collaborators shared by every bot component.
type Deps struct {
	Repo     repository.Repository
	Gateway  messenger.Gateway
	KV       KV
	AI       Responder
	Payments Payments
	Shipping Shipping
	// Queue runs fire-and-forget work; nil runs it inline.
	Queue  *telemetry.Queue
	Shop   config.ShopConfig
	Logger *zap.Logger
	Now    func() time.Time
}

// Inbound identifies the sender of the message being handled.
type Inbound struct {
	Phone     string
	Name      string
	Language  string
	MessageID string
	// RowID is the stored message row, 0 when it was not persisted.
	RowID    int64
	Customer *models.Customer
}

func (in *Inbound) texts() *Texts {
	return textsFor(in.Language)
}

// core holds what the routers, the order flow and the dispatcher share.
type core struct {
	Deps
	state *StateStore
}

func newCore(deps Deps) *core {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &core{
		Deps:  deps,
		state: NewStateStore(deps.Repo.State(), deps.Now, deps.Logger),
	}
}

// async runs fn on the side queue. Failures are logged only.
func (c *core) async(name string, fn func(ctx context.Context) error) {
	if c.Queue == nil {
		if err := fn(context.Background()); err != nil {
			c.Logger.Warn("Background task failed", zap.String("task", name), zap.Error(err))
		}
		return
	}
	c.Queue.Submit(name, fn)
}

// Bot wires the components together.
type Bot struct {
	core       *core
	Dispatcher *Dispatcher
	Text       *TextRouter
	Buttons    *ButtonRouter
	Orders     *OrderFlow
}

func New(deps Deps) *Bot {
	c := newCore(deps)
	orders := &OrderFlow{core: c}
	buttons := &ButtonRouter{core: c, orders: orders}
	text := &TextRouter{core: c, buttons: buttons}
	orders.buttons = buttons

	return &Bot{
		core:       c,
		Dispatcher: &Dispatcher{core: c, text: text, buttons: buttons, orders: orders},
		Text:       text,
		Buttons:    buttons,
		Orders:     orders,
	}
}

// State exposes the conversation state store.
func (b *Bot) State() *StateStore {
	return b.core.state
}
