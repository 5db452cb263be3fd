package bot_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/bot"
	botmocks "github.com/kaapav/kaapav-bot/internal/bot/mocks"
	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/kv"
	msgmocks "github.com/kaapav/kaapav-bot/internal/messenger/mocks"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/repository/mocks"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

const testPhone = "919876543210"

// memStates is an in-memory StateRepository.
type memStates struct {
	mu     sync.Mutex
	states map[string]*models.ConversationState
}

func newMemStates() *memStates {
	return &memStates{states: map[string]*models.ConversationState{}}
}

func (m *memStates) Get(_ context.Context, phone string) (*models.ConversationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[phone]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	cp.FlowData = models.JSONMap{}
	for k, v := range s.FlowData {
		cp.FlowData[k] = v
	}
	return &cp, nil
}

func (m *memStates) Upsert(_ context.Context, state *models.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *state
	m.states[state.Phone] = &cp
	return nil
}

func (m *memStates) Delete(_ context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, phone)
	return nil
}

func (m *memStates) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for phone, s := range m.states {
		if s.Expired(now) {
			delete(m.states, phone)
			n++
		}
	}
	return n, nil
}

func (m *memStates) raw(phone string) *models.ConversationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[phone]
}

// memCarts keeps one active cart per phone and bumps its version on save.
type memCarts struct {
	mu     sync.Mutex
	nextID int64
	carts  map[string]*models.Cart
}

func newMemCarts() *memCarts {
	return &memCarts{carts: map[string]*models.Cart{}}
}

func (m *memCarts) GetActive(_ context.Context, phone string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[phone]
	if !ok || c.Status != models.CartStatusActive {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCarts) SaveActive(_ context.Context, phone string, items models.CartItems, coupon string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[phone]
	if !ok || c.Status != models.CartStatusActive {
		m.nextID++
		c = &models.Cart{ID: m.nextID, Phone: phone, Status: models.CartStatusActive}
		m.carts[phone] = c
	}
	c.Items = items
	c.CouponCode = coupon
	c.Total = items.Subtotal()
	c.ItemCount = items.Count()
	c.Version++
	cp := *c
	return &cp, nil
}

func (m *memCarts) SetStatus(_ context.Context, id int64, status models.CartStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.carts {
		if c.ID == id {
			c.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memCarts) ListIdle(context.Context, time.Time, int, int) ([]*models.Cart, error) {
	return nil, nil
}

func (m *memCarts) MarkReminded(context.Context, int64) error { return nil }

func (m *memCarts) ExpireIdle(context.Context, time.Time) (int64, error) { return 0, nil }

func (m *memCarts) ListForEngagement(context.Context, time.Time, int) ([]*models.Cart, error) {
	return nil, nil
}

type fixture struct {
	ctrl       *gomock.Controller
	deps       bot.Deps
	repo       *mocks.MockRepository
	customers  *mocks.MockCustomerRepository
	chats      *mocks.MockChatRepository
	messages   *mocks.MockMessageRepository
	orders     *mocks.MockOrderRepository
	products   *mocks.MockProductRepository
	quick      *mocks.MockQuickReplyRepository
	reminders  *mocks.MockReminderRepository
	analytics  *mocks.MockAnalyticsRepository
	states     *memStates
	carts      *memCarts
	gateway    *msgmocks.MockGateway
	kv         *botmocks.MockKV
	now        time.Time
	bot        *bot.Bot
	customer   *models.Customer
	newCreated bool
	limited    bool
}

// newFixture wires a bot whose storage, gateway and cache are mocked. The
// cache behaves as empty and allows clicks unless limited is set.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		repo:      mocks.NewMockRepository(ctrl),
		customers: mocks.NewMockCustomerRepository(ctrl),
		chats:     mocks.NewMockChatRepository(ctrl),
		messages:  mocks.NewMockMessageRepository(ctrl),
		orders:    mocks.NewMockOrderRepository(ctrl),
		products:  mocks.NewMockProductRepository(ctrl),
		quick:     mocks.NewMockQuickReplyRepository(ctrl),
		reminders: mocks.NewMockReminderRepository(ctrl),
		analytics: mocks.NewMockAnalyticsRepository(ctrl),
		states:    newMemStates(),
		carts:     newMemCarts(),
		gateway:   msgmocks.NewMockGateway(ctrl),
		kv:        botmocks.NewMockKV(ctrl),
		now:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		customer:  &models.Customer{Phone: testPhone, Language: "en"},
	}

	f.repo.EXPECT().Customer().Return(f.customers).AnyTimes()
	f.repo.EXPECT().Chat().Return(f.chats).AnyTimes()
	f.repo.EXPECT().Message().Return(f.messages).AnyTimes()
	f.repo.EXPECT().Order().Return(f.orders).AnyTimes()
	f.repo.EXPECT().Product().Return(f.products).AnyTimes()
	f.repo.EXPECT().QuickReply().Return(f.quick).AnyTimes()
	f.repo.EXPECT().Reminder().Return(f.reminders).AnyTimes()
	f.repo.EXPECT().Analytics().Return(f.analytics).AnyTimes()
	f.repo.EXPECT().State().Return(f.states).AnyTimes()
	f.repo.EXPECT().Cart().Return(f.carts).AnyTimes()

	f.kv.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, int, time.Duration) (bool, time.Duration, error) {
			if f.limited {
				return false, 30 * time.Second, nil
			}
			return true, 0, nil
		}).AnyTimes()
	f.kv.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	f.kv.EXPECT().SetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kv.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kv.EXPECT().TouchSession(gomock.Any(), gomock.Any()).Return(&kv.Session{}, nil).AnyTimes()
	f.kv.EXPECT().RecordClick(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()

	f.analytics.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gateway.EXPECT().MarkRead(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.deps = bot.Deps{
		Repo:    f.repo,
		Gateway: f.gateway,
		KV:      f.kv,
		Shop:    config.ShopConfig{Name: "KAAPAV", WebsiteURL: "https://kaapav.com", UPIID: "kaapav@upi"},
		Logger:  zap.NewNop(),
		Now:     func() time.Time { return f.now },
	}
	f.bot = bot.New(f.deps)
	return f
}

// rebuild recreates the bot after edit changes its dependencies.
func (f *fixture) rebuild(edit func(d *bot.Deps)) {
	edit(&f.deps)
	f.bot = bot.New(f.deps)
}

// expectInbound accepts the persistence done for every inbound message.
func (f *fixture) expectInbound() {
	f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	f.chats.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.customers.EXPECT().Touch(gomock.Any(), testPhone, gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*models.Customer, bool, error) {
			created := f.newCreated
			f.newCreated = false
			return f.customer, created, nil
		}).AnyTimes()
}

func (f *fixture) noQuickReplies() {
	f.quick.EXPECT().ListActive(gomock.Any()).Return(nil, nil).AnyTimes()
}

func (f *fixture) process(msg models.InboundMessage) {
	msg.From = testPhone
	if msg.ID == "" {
		msg.ID = "wamid.test"
	}
	msg.Timestamp = "1773144000"
	f.bot.Dispatcher.Process(context.Background(), &models.WebhookPayload{
		Object: "whatsapp_business_account",
		Entry: []models.WebhookEntry{{
			ID: "waba",
			Changes: []models.WebhookChange{{
				Field: "messages",
				Value: models.WebhookValue{
					MessagingProduct: "whatsapp",
					Messages:         []models.InboundMessage{msg},
				},
			}},
		}},
	})
}

func textMessage(body string) models.InboundMessage {
	return models.InboundMessage{Type: "text", Text: &models.TextBody{Body: body}}
}

func buttonMessage(id string) models.InboundMessage {
	reply := &models.InteractiveReply{Type: "button_reply"}
	reply.ButtonReply = &struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}{ID: id, Title: id}
	return models.InboundMessage{Type: "interactive", Interactive: reply}
}

func buttonIDs(buttons []whatsapp.Button) []string {
	ids := make([]string, len(buttons))
	for i, b := range buttons {
		ids[i] = b.ID
	}
	return ids
}
