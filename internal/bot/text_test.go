package bot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kaapav/kaapav-bot/internal/bot"
	botmocks "github.com/kaapav/kaapav-bot/internal/bot/mocks"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

func TestTextRouter_QuickReplyBeatsActionKeywords(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.quick.EXPECT().ListActive(gomock.Any()).Return([]*models.QuickReply{
		{ID: 4, Keyword: "track", MatchType: models.MatchContains, Response: "Tracking links are sent on WhatsApp once your parcel ships.", IsActive: true},
	}, nil)
	f.quick.EXPECT().IncrementUse(gomock.Any(), int64(4)).Return(nil)
	f.gateway.EXPECT().Text(gomock.Any(), testPhone, "Tracking links are sent on WhatsApp once your parcel ships.").Return(nil)

	f.process(textMessage("Track my parcel please"))
}

func TestTextRouter_QuickReplyButtonsAreCanonical(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.quick.EXPECT().ListActive(gomock.Any()).Return([]*models.QuickReply{
		{ID: 9, Keyword: "^(gift|present)", MatchType: models.MatchRegex, Response: "We gift wrap for free!", Buttons: pq.StringArray{"btn-shop-now", "offers", "menu", "faq"}},
	}, nil)
	f.quick.EXPECT().IncrementUse(gomock.Any(), int64(9)).Return(nil)

	var sent []whatsapp.Button
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, "We gift wrap for free!", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, buttons []whatsapp.Button) error {
			sent = buttons
			return nil
		})

	f.process(textMessage("Gift for my sister"))

	assert.Equal(t, []string{"JEWELLERY_MENU", "OFFERS_MENU", "MAIN_MENU"}, buttonIDs(sent))
}

func TestTextRouter_QuickReplyMatchTypes(t *testing.T) {
	tests := []struct {
		name  string
		match models.MatchType
		key   string
		text  string
		want  bool
	}{
		{name: "exact", match: models.MatchExact, key: "COD", text: "cod", want: true},
		{name: "exact needs whole text", match: models.MatchExact, key: "cod", text: "cod available", want: false},
		{name: "starts", match: models.MatchStarts, key: "price", text: "price of rings", want: true},
		{name: "ends", match: models.MatchEnds, key: "available?", text: "is cod available?", want: true},
		{name: "word", match: models.MatchWord, key: "cod", text: "is cod there", want: true},
		{name: "word not inside other words", match: models.MatchWord, key: "cod", text: "barcode", want: false},
		{name: "bad regex never matches", match: models.MatchRegex, key: "([", text: "([", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectInbound()
			f.quick.EXPECT().ListActive(gomock.Any()).Return([]*models.QuickReply{
				{ID: 1, Keyword: tt.key, MatchType: tt.match, Response: "quick"},
			}, nil)
			if tt.want {
				f.quick.EXPECT().IncrementUse(gomock.Any(), int64(1)).Return(nil)
				f.gateway.EXPECT().Text(gomock.Any(), testPhone, "quick").Return(nil)
			} else {
				f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).Return(nil)
			}

			f.process(textMessage(tt.text))
		})
	}
}

func TestTextRouter_EarringsBeforeRings(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.noQuickReplies()
	f.products.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.ProductFilter) ([]*models.Product, int64, error) {
			assert.Equal(t, "earrings", filter.Category)
			return nil, 0, nil
		})
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).Return(nil)

	f.process(textMessage("show me earrings"))
}

func TestTextRouter_AIReplyIsStored(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.noQuickReplies()

	ai := botmocks.NewMockResponder(f.ctrl)
	ai.EXPECT().Configured().Return(true)
	ai.EXPECT().Reply(gomock.Any(), "can i wear it in the shower", "en").Return("Our plating lasts longer if kept dry.", true, nil)
	f.rebuild(func(d *bot.Deps) { d.AI = ai })

	f.messages.EXPECT().SetAIResponse(gomock.Any(), int64(1), "Our plating lasts longer if kept dry.").Return(nil)
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, "Our plating lasts longer if kept dry.", gomock.Any()).Return(nil)

	f.process(textMessage("can i wear it in the shower"))
}

func TestTextRouter_AIFailureFallsBackToMenu(t *testing.T) {
	f := newFixture(t)
	f.expectInbound()
	f.noQuickReplies()

	ai := botmocks.NewMockResponder(f.ctrl)
	ai.EXPECT().Configured().Return(true)
	ai.EXPECT().Reply(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, errors.New("timeout"))
	f.rebuild(func(d *bot.Deps) { d.AI = ai })

	var sent []whatsapp.Button
	f.gateway.EXPECT().Buttons(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, buttons []whatsapp.Button) error {
			sent = buttons
			return nil
		})

	f.process(textMessage("can i wear it in the shower"))

	assert.Len(t, sent, 3)
}
