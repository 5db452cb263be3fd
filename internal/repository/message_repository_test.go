package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

func TestMessageRepository_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)
	ctx := ctxT(t)

	tests := []struct {
		name       string
		msg        models.NewMessage
		wantStatus models.MessageStatus
		wantSentAt bool
	}{
		{
			name: "incoming defaults to received",
			msg: models.NewMessage{
				Phone:     "919876543210",
				Direction: models.DirectionIncoming,
				Type:      models.MessageTypeText,
				Content:   "hi",
				MessageID: "wamid.in.1",
			},
			wantStatus: models.MessageStatusReceived,
		},
		{
			name: "outgoing defaults to pending",
			msg: models.NewMessage{
				Phone:     "919876543210",
				Direction: models.DirectionOutgoing,
				Type:      models.MessageTypeText,
				Content:   "hello",
			},
			wantStatus: models.MessageStatusPending,
		},
		{
			name: "sent outgoing carries sent_at",
			msg: models.NewMessage{
				Phone:     "919876543210",
				Direction: models.DirectionOutgoing,
				Type:      models.MessageTypeInteractive,
				Content:   "menu",
				Status:    models.MessageStatusSent,
				MessageID: "wamid.out.1",
				Payload:   models.JSONMap{"buttons": []any{"MAIN_MENU"}},
			},
			wantStatus: models.MessageStatusSent,
			wantSentAt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			id, err := repo.Create(ctx, tt.msg)
			require.NoError(t, err)
			assert.Positive(t, id)

			list, err := repo.ListByPhone(ctx, tt.msg.Phone, 10, 0)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, tt.wantStatus, list[0].Status)
			assert.Equal(t, tt.wantSentAt, list[0].SentAt.Valid)
			assert.Equal(t, tt.msg.Content, list[0].Content)
		})
	}
}

func TestMessageRepository_UpdateStatus_ForwardOnly(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)
	ctx := ctxT(t)

	_, err := repo.Create(ctx, models.NewMessage{
		Phone:     "919876543210",
		Direction: models.DirectionOutgoing,
		Type:      models.MessageTypeText,
		Content:   "order confirmed",
		Status:    models.MessageStatusSent,
		MessageID: "wamid.abc",
	})
	require.NoError(t, err)

	steps := []struct {
		status models.MessageStatus
		want   models.MessageStatus
	}{
		{models.MessageStatusRead, models.MessageStatusRead},
		{models.MessageStatusDelivered, models.MessageStatusRead},
		{models.MessageStatusSent, models.MessageStatusRead},
	}

	for _, s := range steps {
		require.NoError(t, repo.UpdateStatus(ctx, models.StatusUpdate{MessageID: "wamid.abc", Status: s.status, At: time.Now()}))

		list, err := repo.ListByPhone(ctx, "919876543210", 1, 0)
		require.NoError(t, err)
		assert.Equal(t, s.want, list[0].Status, "after %s", s.status)
	}
}

func TestMessageRepository_UpdateStatus_Failed(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)
	ctx := ctxT(t)

	_, err := repo.Create(ctx, models.NewMessage{
		Phone:     "919876543210",
		Direction: models.DirectionOutgoing,
		Type:      models.MessageTypeText,
		Status:    models.MessageStatusSent,
		MessageID: "wamid.fail",
	})
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, models.StatusUpdate{
		MessageID: "wamid.fail",
		Status:    models.MessageStatusFailed,
		Error:     "131026: receiver incapable",
	})
	require.NoError(t, err)

	list, err := repo.ListByPhone(ctx, "919876543210", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusFailed, list[0].Status)
	assert.Equal(t, "131026: receiver incapable", list[0].Error.String)
}

func TestMessageRepository_CountSinceAndAIResponse(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)
	ctx := ctxT(t)
	since := time.Now().Add(-time.Minute)

	inID, err := repo.Create(ctx, models.NewMessage{Phone: "919876543210", Direction: models.DirectionIncoming, Type: models.MessageTypeText, Content: "price?"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.NewMessage{Phone: "919876543210", Direction: models.DirectionOutgoing, Type: models.MessageTypeText, Content: "₹499"})
	require.NoError(t, err)

	in, out, err := repo.CountSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, int64(1), in)
	assert.Equal(t, int64(1), out)

	require.NoError(t, repo.SetAIResponse(ctx, inID, "Our earrings start at ₹299"))
	assert.ErrorIs(t, repo.SetAIResponse(ctx, 9999, "x"), repository.ErrNotFound)
}
