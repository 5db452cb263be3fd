package service_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	messengermocks "github.com/kaapav/kaapav-bot/internal/messenger/mocks"
	"github.com/kaapav/kaapav-bot/internal/repository/mocks"
	servicemocks "github.com/kaapav/kaapav-bot/internal/service/mocks"
)

var fixedNow = time.Date(2026, 5, 10, 6, 0, 0, 0, time.UTC)

// fixture wires a repository mock whose accessors return the per-table mocks.
type fixture struct {
	repo      *mocks.MockRepository
	customers *mocks.MockCustomerRepository
	orders    *mocks.MockOrderRepository
	reminders *mocks.MockReminderRepository
	carts     *mocks.MockCartRepository
	states    *mocks.MockStateRepository
	analytics *mocks.MockAnalyticsRepository
	broadcast *mocks.MockBroadcastRepository
	gateway   *messengermocks.MockGateway
	payments  *servicemocks.MockPaymentProvider
	shipping  *servicemocks.MockShippingProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      mocks.NewMockRepository(ctrl),
		customers: mocks.NewMockCustomerRepository(ctrl),
		orders:    mocks.NewMockOrderRepository(ctrl),
		reminders: mocks.NewMockReminderRepository(ctrl),
		carts:     mocks.NewMockCartRepository(ctrl),
		states:    mocks.NewMockStateRepository(ctrl),
		analytics: mocks.NewMockAnalyticsRepository(ctrl),
		broadcast: mocks.NewMockBroadcastRepository(ctrl),
		gateway:   messengermocks.NewMockGateway(ctrl),
		payments:  servicemocks.NewMockPaymentProvider(ctrl),
		shipping:  servicemocks.NewMockShippingProvider(ctrl),
	}
	f.repo.EXPECT().Customer().Return(f.customers).AnyTimes()
	f.repo.EXPECT().Order().Return(f.orders).AnyTimes()
	f.repo.EXPECT().Reminder().Return(f.reminders).AnyTimes()
	f.repo.EXPECT().Cart().Return(f.carts).AnyTimes()
	f.repo.EXPECT().State().Return(f.states).AnyTimes()
	f.repo.EXPECT().Analytics().Return(f.analytics).AnyTimes()
	f.repo.EXPECT().Broadcast().Return(f.broadcast).AnyTimes()
	return f
}

func clock() time.Time { return fixedNow }
