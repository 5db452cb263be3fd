package bot_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kaapav/kaapav-bot/internal/bot"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

func TestDispatcher_GreetingFromNewCustomer(t *testing.T) {
	f := newFixture(t)
	f.newCreated = true
	f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.NewMessage) (int64, error) {
			assert.Equal(t, testPhone, m.Phone)
			assert.Equal(t, models.DirectionIncoming, m.Direction)
			assert.Equal(t, "hi", m.Content)
			return 7, nil
		})
	f.chats.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.customers.EXPECT().Touch(gomock.Any(), testPhone, "").Return(f.customer, true, nil)

	var sent []whatsapp.Button
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body string, buttons []whatsapp.Button) error {
			assert.Contains(t, body, "KAAPAV")
			sent = buttons
			return nil
		})

	f.process(textMessage("hi"))

	assert.Equal(t, []string{"JEWELLERY_MENU", "CHAT_MENU", "OFFERS_MENU"}, buttonIDs(sent))
}

func TestDispatcher_UnknownOrderID(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.noQuickReplies()
	f.orders.EXPECT().Get(gomock.Any(), "KAA-123456").Return(nil, repository.ErrNotFound).Times(1)

	var body string
	var sent []whatsapp.Button
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, b string, buttons []whatsapp.Button) error {
			body, sent = b, buttons
			return nil
		})

	f.process(textMessage("KAA-123456"))

	assert.Contains(t, body, "not found")
	assert.Contains(t, buttonIDs(sent), "CHAT_NOW")
	assert.Contains(t, buttonIDs(sent), "TRACK_ORDER")
}

func TestDispatcher_OtherCustomersOrderLooksMissing(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.noQuickReplies()
	f.orders.EXPECT().Get(gomock.Any(), "KAA-222222").
		Return(&models.Order{OrderID: "KAA-222222", Phone: "919000000001"}, nil)

	var body string
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, b string, _ []whatsapp.Button) error {
			body = b
			return nil
		})

	f.process(textMessage("status of kaa 222222?"))

	assert.Contains(t, body, "not found")
}

func TestDispatcher_CheckoutFlow(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return(nil, nil).AnyTimes()
	f.products.EXPECT().Get(gomock.Any(), "P1").Return(&models.Product{
		ProductID: "P1",
		Name:      "Kundan Jhumka",
		Price:     300,
		Stock:     5,
		IsActive:  true,
	}, nil)
	f.customers.EXPECT().SetAddress(gomock.Any(), testPhone, gomock.Any(), gomock.Any(), "560001").Return(nil)
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gateway.EXPECT().Text(gomock.Any(), testPhone, gomock.Any()).Return(nil).AnyTimes()

	f.process(buttonMessage("QTY_P1_1"))
	cart, err := f.carts.GetActive(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, int64(300), cart.Items.Subtotal())

	f.process(buttonMessage("CHECKOUT"))
	require.NotNil(t, f.states.raw(testPhone))
	assert.Equal(t, bot.StepAddress, f.states.raw(testPhone).CurrentStep)

	f.process(textMessage("12 MG Road, Indiranagar, Bengaluru 560001"))
	require.NotNil(t, f.states.raw(testPhone))
	assert.Equal(t, bot.StepConfirm, f.states.raw(testPhone).CurrentStep)

	var placed models.NewOrder
	f.orders.EXPECT().CreateFromCart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o models.NewOrder) (*models.Order, bool, error) {
			placed = o
			require.NoError(t, f.carts.SetStatus(context.Background(), o.CartID, models.CartStatusConverted))
			return &models.Order{
				OrderID:       o.OrderID,
				Phone:         o.Phone,
				Total:         o.Total,
				Status:        models.OrderStatusPending,
				PaymentStatus: models.PaymentStatusUnpaid,
			}, true, nil
		})
	f.reminders.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Reminder) error {
			assert.Equal(t, models.ReminderPayment, r.Type)
			assert.Equal(t, f.now.Add(60*time.Minute), r.DueAt)
			return nil
		})

	f.process(buttonMessage("CONFIRM_ORDER"))

	assert.Equal(t, int64(300), placed.Subtotal)
	assert.Equal(t, int64(49), placed.ShippingCost)
	assert.Equal(t, int64(349), placed.Total)
	assert.Equal(t, "560001", placed.ShippingPincode)
	assert.Equal(t, "Bengaluru", placed.ShippingCity)
	assert.Equal(t, cart.IdempotencyKey(), placed.IdempotencyKey)
	assert.Nil(t, f.states.raw(testPhone), "flow state is cleared once the order exists")
	_, err = f.carts.GetActive(context.Background(), testPhone)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDispatcher_PincodeStepSavesAddress(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return(nil, nil).AnyTimes()
	_, err := f.carts.SaveActive(context.Background(), testPhone, models.CartItems{{ProductID: "P1", Name: "Ring", Price: 600, Quantity: 1}}, "")
	require.NoError(t, err)
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gateway.EXPECT().Text(gomock.Any(), testPhone, gomock.Any()).Return(nil).AnyTimes()

	f.process(buttonMessage("CHECKOUT"))
	f.process(textMessage("12 MG Road, Indiranagar, Bengaluru"))
	require.NotNil(t, f.states.raw(testPhone))
	require.Equal(t, bot.StepPincode, f.states.raw(testPhone).CurrentStep)

	var savedAddress string
	f.customers.EXPECT().SetAddress(gomock.Any(), testPhone, gomock.Any(), gomock.Any(), "560038").
		DoAndReturn(func(_ context.Context, _, _, address, _ string) error {
			savedAddress = address
			return nil
		})

	f.process(textMessage("560038"))

	assert.Contains(t, savedAddress, "MG Road")
	require.NotNil(t, f.states.raw(testPhone))
	assert.Equal(t, bot.StepConfirm, f.states.raw(testPhone).CurrentStep)
}

func TestDispatcher_ConfirmTwiceReusesOrder(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.customer.Address = sql.NullString{String: "5 Park Street, Kolkata", Valid: true}
	f.customer.Pincode = sql.NullString{String: "700016", Valid: true}
	_, err := f.carts.SaveActive(context.Background(), testPhone, models.CartItems{{ProductID: "P1", Name: "Ring", Price: 600, Quantity: 1}}, "")
	require.NoError(t, err)

	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return(nil, nil).AnyTimes()
	paid := &models.Order{OrderID: "KAA-100001", Phone: testPhone, Total: 600, PaymentStatus: models.PaymentStatusPaid}
	f.orders.EXPECT().CreateFromCart(gomock.Any(), gomock.Any()).Return(paid, false, nil)

	var body string
	f.gateway.EXPECT().Text(gomock.Any(), testPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, b string) error {
			body = b
			return nil
		})

	f.process(buttonMessage("CONFIRM_ORDER"))

	assert.Contains(t, body, "KAA-100001")
}

func TestDispatcher_FailureSendsApology(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return(nil, nil)
	f.products.EXPECT().Get(gomock.Any(), "P9").Return(nil, errors.New("connection reset"))
	f.analytics.EXPECT().LogError(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.ErrorLog) error {
			assert.Equal(t, "webhook:interactive", e.Endpoint)
			assert.Contains(t, e.Message, "connection reset")
			return nil
		})

	var sent []whatsapp.Button
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, buttons []whatsapp.Button) error {
			sent = buttons
			return nil
		})

	f.process(buttonMessage("QTY_P9_1"))

	assert.Equal(t, []string{"JEWELLERY_MENU", "CHAT_MENU", "OFFERS_MENU"}, buttonIDs(sent))
}

func TestDispatcher_StatusUpdates(t *testing.T) {
	f := newFixture(t)
	f.messages.EXPECT().UpdateStatus(gomock.Any(), models.StatusUpdate{
		MessageID: "wamid.out",
		Phone:     testPhone,
		Status:    models.MessageStatus("read"),
		At:        time.Unix(1773144000, 0).UTC(),
	}).Return(nil)

	f.bot.Dispatcher.Process(context.Background(), &models.WebhookPayload{
		Object: "whatsapp_business_account",
		Entry: []models.WebhookEntry{{Changes: []models.WebhookChange{{
			Field: "messages",
			Value: models.WebhookValue{Statuses: []models.InboundStatus{{
				ID: "wamid.out", Status: "read", Timestamp: "1773144000", RecipientID: testPhone,
			}}},
		}}}},
	})
}

func TestDispatcher_IgnoresForeignObjectsAndReactions(t *testing.T) {
	f := newFixture(t)
	f.bot.Dispatcher.Process(context.Background(), &models.WebhookPayload{Object: "page"})

	f.expectInbound()
	f.process(models.InboundMessage{Type: "reaction", Reaction: &models.ReactionBody{MessageID: "wamid.1", Emoji: "❤️"}})
}

func TestShardKey(t *testing.T) {
	payload := &models.WebhookPayload{Entry: []models.WebhookEntry{{Changes: []models.WebhookChange{{
		Value: models.WebhookValue{Messages: []models.InboundMessage{{From: "9876543210"}}},
	}}}}}
	assert.Equal(t, testPhone, bot.ShardKey(payload))
	assert.Empty(t, bot.ShardKey(&models.WebhookPayload{}))
}
