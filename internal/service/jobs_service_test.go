package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/service"
	"github.com/kaapav/kaapav-bot/internal/service/mocks"
)

func newJobsService(f *fixture, broadcasts service.BroadcastService, adminPhone string) service.JobsService {
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{ReminderBatch: 10, AdminPhone: adminPhone},
		Shop:      config.ShopConfig{Name: "KAAPAV"},
	}
	return service.NewJobsService(cfg, f.repo, f.gateway, broadcasts, zap.NewNop(), clock)
}

func TestJobsService_SweepReminders(t *testing.T) {
	f := newFixture(t)

	reminders := []*models.Reminder{
		{ID: 1, Phone: "919800000001", Type: models.ReminderCallback, Message: "We will call you at 5pm"},
		{ID: 2, Phone: "919800000002", Type: models.ReminderPayment, Message: "Complete your payment",
			Reference: sql.NullString{String: "KAA-000002", Valid: true}},
		{ID: 3, Phone: "919800000003", Type: models.ReminderPayment, Message: "Complete your payment",
			Reference: sql.NullString{String: "KAA-000003", Valid: true}},
		{ID: 4, Phone: "919800000004", Type: models.ReminderCallback, Message: "ping"},
	}
	f.reminders.EXPECT().ClaimDue(gomock.Any(), fixedNow, 10).Return(reminders, nil)

	f.gateway.EXPECT().Text(gomock.Any(), "919800000001", "We will call you at 5pm").Return(nil)
	f.reminders.EXPECT().MarkSent(gomock.Any(), int64(1)).Return(nil)

	f.orders.EXPECT().Get(gomock.Any(), "KAA-000002").Return(&models.Order{
		OrderID:       "KAA-000002",
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		PaymentLink:   sql.NullString{String: "https://rzp.io/i/two", Valid: true},
	}, nil)
	f.gateway.EXPECT().CTAURL(gomock.Any(), "919800000002", "Complete your payment", gomock.Any(), "https://rzp.io/i/two").Return(nil)
	f.reminders.EXPECT().MarkSent(gomock.Any(), int64(2)).Return(nil)

	// paid in the meantime
	f.orders.EXPECT().Get(gomock.Any(), "KAA-000003").Return(&models.Order{
		OrderID:       "KAA-000003",
		Status:        models.OrderStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
	}, nil)
	f.reminders.EXPECT().CancelByReference(gomock.Any(), models.ReminderPayment, "KAA-000003").Return(nil)

	f.gateway.EXPECT().Text(gomock.Any(), "919800000004", "ping").Return(errors.New("window closed"))
	f.reminders.EXPECT().MarkFailed(gomock.Any(), int64(4), "window closed", 3).Return(nil)

	require.NoError(t, newJobsService(f, nil, "").SweepReminders(context.Background()))
}

func TestJobsService_CartReminders(t *testing.T) {
	f := newFixture(t)
	carts := []*models.Cart{
		{ID: 1, Phone: "919800000001", Items: models.CartItems{{ProductID: "P1", Name: "Ring", Price: 999, Quantity: 2}}},
		{ID: 2, Phone: "919800000002", Items: models.CartItems{{ProductID: "P2", Name: "Anklet", Price: 499, Quantity: 1}}},
	}
	f.carts.EXPECT().ListIdle(gomock.Any(), fixedNow.Add(-time.Hour), 2, 10).Return(carts, nil)
	f.gateway.EXPECT().Buttons(gomock.Any(), "919800000001", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string, _ any) error {
			assert.Contains(t, body, "2 item(s)")
			return nil
		})
	f.carts.EXPECT().MarkReminded(gomock.Any(), int64(1)).Return(nil)
	f.gateway.EXPECT().Buttons(gomock.Any(), "919800000002", gomock.Any(), gomock.Any()).Return(errors.New("blocked"))

	require.NoError(t, newJobsService(f, nil, "").CartReminders(context.Background()))
}

func TestJobsService_DeliveryReminders(t *testing.T) {
	f := newFixture(t)
	orders := []*models.Order{
		{OrderID: "KAA-000001", Phone: "919800000001", Status: models.OrderStatusShipped,
			TrackingURL: sql.NullString{String: "https://shiprocket.co/tracking/A1", Valid: true},
			Courier:     sql.NullString{String: "Delhivery", Valid: true}},
		{OrderID: "KAA-000002", Phone: "919800000002", Status: models.OrderStatusShipped},
	}
	f.orders.EXPECT().ListByStatus(gomock.Any(), models.OrderStatusShipped, models.PaymentStatus(""), fixedNow.Add(-24*time.Hour), 10).Return(orders, nil)
	f.gateway.EXPECT().Buttons(gomock.Any(), "919800000001", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string, _ any) error {
			assert.Contains(t, body, "with Delhivery")
			assert.Contains(t, body, "https://shiprocket.co/tracking/A1")
			return nil
		})

	require.NoError(t, newJobsService(f, nil, "").DeliveryReminders(context.Background()))
}

func TestJobsService_Engagement(t *testing.T) {
	t.Run("morning", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().EngagementTargets(gomock.Any(), fixedNow.Add(-30*24*time.Hour), fixedNow.Add(-3*24*time.Hour), 10).
			Return([]*models.Customer{{Phone: "919800000001"}}, nil)
		f.gateway.EXPECT().Buttons(gomock.Any(), "919800000001", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, body string, _ any) error {
				assert.Contains(t, body, "KAAPAV")
				return nil
			})

		require.NoError(t, newJobsService(f, nil, "").MorningEngagement(context.Background()))
	})

	t.Run("evening", func(t *testing.T) {
		f := newFixture(t)
		f.carts.EXPECT().ListForEngagement(gomock.Any(), fixedNow.Add(-3*time.Hour), 10).
			Return([]*models.Cart{{ID: 5, Phone: "919800000005", Items: models.CartItems{{Price: 1500, Quantity: 1}}}}, nil)
		f.gateway.EXPECT().Buttons(gomock.Any(), "919800000005", gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, newJobsService(f, nil, "").EveningEngagement(context.Background()))
	})
}

func TestJobsService_NightlyCleanup(t *testing.T) {
	f := newFixture(t)

	f.states.EXPECT().DeleteExpired(gomock.Any(), fixedNow).Return(int64(4), nil)
	f.orders.EXPECT().ListByStatus(gomock.Any(), models.OrderStatusPending, models.PaymentStatusUnpaid, fixedNow.Add(-48*time.Hour), 500).
		Return([]*models.Order{{OrderID: "KAA-000001"}}, nil)
	f.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change repository.StatusChange) (*models.Order, error) {
			assert.Equal(t, models.OrderStatusCancelled, change.To)
			assert.NotEmpty(t, change.Note)
			return &models.Order{OrderID: change.OrderID, Phone: "919800000001", Status: models.OrderStatusCancelled}, nil
		})
	f.reminders.EXPECT().CancelByReference(gomock.Any(), models.ReminderPayment, "KAA-000001").Return(nil)
	f.gateway.EXPECT().Buttons(gomock.Any(), "919800000001", gomock.Any(), gomock.Any()).Return(nil)
	f.analytics.EXPECT().PruneEvents(gomock.Any(), fixedNow.Add(-90*24*time.Hour)).Return(int64(0), errors.New("lock timeout"))
	f.carts.EXPECT().ExpireIdle(gomock.Any(), fixedNow.Add(-7*24*time.Hour)).Return(int64(2), nil)

	err := newJobsService(f, nil, "").NightlyCleanup(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock timeout")
}

func TestJobsService_DailyReport(t *testing.T) {
	f := newFixture(t)
	yesterday := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	report := &models.DailyReport{ReportDate: yesterday, NewCustomers: 7, OrdersCreated: 3, OrdersPaid: 2, Revenue: 4998}

	f.analytics.EXPECT().BuildDailyReport(gomock.Any(), yesterday).Return(report, nil)
	f.analytics.EXPECT().SaveDailyReport(gomock.Any(), report).Return(nil)
	f.gateway.EXPECT().Text(gomock.Any(), "919999999999", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) error {
			assert.Contains(t, body, "09 May 2026")
			assert.Contains(t, body, "New customers: 7")
			return nil
		})

	require.NoError(t, newJobsService(f, nil, "919999999999").DailyReport(context.Background()))
}

func TestJobsService_RunScheduledBroadcasts(t *testing.T) {
	f := newFixture(t)
	broadcasts := mocks.NewMockBroadcastService(gomock.NewController(t))
	broadcasts.EXPECT().RunDue(gomock.Any()).Return(2, nil)

	require.NoError(t, newJobsService(f, broadcasts, "").RunScheduledBroadcasts(context.Background()))
}

func TestJobsService_Resegment(t *testing.T) {
	f := newFixture(t)
	f.customers.EXPECT().RecomputeSegments(gomock.Any(), fixedNow).Return(int64(12), nil)

	require.NoError(t, newJobsService(f, nil, "").Resegment(context.Background()))
}
