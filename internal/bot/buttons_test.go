package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

func TestButtonRouter_RateLimited(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.limited = true

	var body string
	f.gateway.EXPECT().Text(gomock.Any(), testPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, b string) error {
			body = b
			return nil
		})

	f.process(buttonMessage("JEWELLERY_MENU"))

	assert.Contains(t, body, "too fast")
}

func TestButtonRouter_UnknownButtonSuggestsRecentActions(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return(nil, nil)
	f.kv.EXPECT().RecentClicks(gomock.Any(), testPhone, 4).Return([]string{"VIEW_CART"}, nil)
	f.kv.EXPECT().CommonNext(gomock.Any(), "VIEW_CART", 3).Return([]string{"CHECKOUT", "NOT_A_BUTTON", "VIEW_CART"}, nil)

	var sections []whatsapp.Section
	f.gateway.EXPECT().List(gomock.Any(), testPhone, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, s []whatsapp.Section) error {
			sections = s
			return nil
		})

	f.process(buttonMessage("OLD_CAMPAIGN_2023"))

	require.Len(t, sections, 1)
	ids := make([]string, 0, len(sections[0].Rows))
	for _, r := range sections[0].Rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"VIEW_CART", "CHECKOUT", "MAIN_MENU"}, ids)
}

func TestButtonRouter_UnknownButtonWithoutHistory(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return(nil, nil)
	f.kv.EXPECT().RecentClicks(gomock.Any(), testPhone, 4).Return(nil, nil)

	var sent []whatsapp.Button
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, buttons []whatsapp.Button) error {
			sent = buttons
			return nil
		})

	f.process(buttonMessage("OLD_CAMPAIGN_2023"))

	assert.Equal(t, []string{"JEWELLERY_MENU", "CHAT_MENU", "OFFERS_MENU"}, buttonIDs(sent))
}

func TestButtonRouter_LanguageToggle(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return(nil, nil)
	f.customers.EXPECT().SetLanguage(gomock.Any(), testPhone, "hi").Return(nil)
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).Return(nil)

	f.process(buttonMessage("btn-language"))
}

func TestButtonRouter_TrackListsRecentOrders(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	order := &models.Order{
		OrderID:       "KAA-555555",
		Phone:         testPhone,
		Total:         1299,
		Status:        models.OrderStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
	}
	f.orders.EXPECT().ListByPhone(gomock.Any(), testPhone, gomock.Any()).Return([]*models.Order{order}, nil)

	var sections []whatsapp.Section
	f.gateway.EXPECT().List(gomock.Any(), testPhone, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, s []whatsapp.Section) error {
			sections = s
			return nil
		})

	f.process(buttonMessage("TRACK_ORDER"))

	require.Len(t, sections, 1)
	require.Len(t, sections[0].Rows, 1)
	assert.Equal(t, "ORDER_KAA-555555", sections[0].Rows[0].ID)
}
