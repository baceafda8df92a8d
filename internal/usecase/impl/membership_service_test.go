package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/entity"
	domainerrors "membership/internal/domain/errors"
	"membership/internal/domain/service"
	mockService "membership/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, expected int64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), append([]any{"expected %d, got %s", expected, actual.String()}, msgAndArgs...)...)
}

func TestMembershipService_RecordOrderSpending_UpgradeScenario(t *testing.T) {
	bronze := tier("Bronze", 0, 0)
	silver := tier("Silver", 2_000_000, 0)
	fx := createTestMembershipService(t, nil, bronze, silver)

	ctx := context.Background()
	customerID := uuid.New()

	// First order opens the ledger and issues the default card.
	orderA := newOrder(customerID, 500_000)
	record, err := fx.service.RecordOrderSpending(ctx, orderA)
	require.NoError(t, err)
	require.NotNil(t, record)
	assertDecimal(t, 500_000, record.SpendThisYear)
	assertDecimal(t, 500_000, record.LifetimeSpend)

	cards := fx.store.Cards(customerID)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Active)
	assert.Equal(t, bronze.ID, cards[0].TierID)
	assertDecimal(t, 0, cards[0].LifetimeSpendAtIssue)

	// Second order crosses the Silver yearly threshold.
	orderB := newOrder(customerID, 1_600_000)
	record, err = fx.service.RecordOrderSpending(ctx, orderB)
	require.NoError(t, err)
	require.NotNil(t, record)
	assertDecimal(t, 2_100_000, record.SpendThisYear)
	assertDecimal(t, 2_100_000, record.LifetimeSpend)

	cards = fx.store.Cards(customerID)
	require.Len(t, cards, 2)
	active := activeCards(cards)
	require.Len(t, active, 1)
	assert.Equal(t, silver.ID, active[0].TierID)
	assertDecimal(t, 2_100_000, active[0].LifetimeSpendAtIssue)
	require.NotNil(t, active[0].TierSnapshot)
	assert.Equal(t, "Silver", active[0].TierSnapshot.Name)

	// Redelivery of order B changes nothing.
	record, err = fx.service.RecordOrderSpending(ctx, orderB)
	require.NoError(t, err)
	assert.Nil(t, record)

	records := fx.store.LoyaltyRecords(customerID)
	require.Len(t, records, 1)
	assertDecimal(t, 2_100_000, records[0].SpendThisYear)
	assertDecimal(t, 2_100_000, records[0].LifetimeSpend)
	assert.Len(t, fx.store.Cards(customerID), 2)
	assert.Equal(t, 2, fx.store.SnapshotCount())
}

func TestMembershipService_RecordOrderSpending_SnapshotCarriesTierAtCredit(t *testing.T) {
	bronze := tier("Bronze", 0, 0)
	silver := tier("Silver", 2_000_000, 0)
	fx := createTestMembershipService(t, nil, bronze, silver)

	ctx := context.Background()
	customerID := uuid.New()

	order := newOrder(customerID, 2_500_000)
	_, err := fx.service.RecordOrderSpending(ctx, order)
	require.NoError(t, err)

	snapshot, err := fx.service.GetOrderSpending(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, customerID, snapshot.CustomerID)
	assertDecimal(t, 2_500_000, snapshot.CreditedAmount)
	require.NotNil(t, snapshot.TierSnapshot)
	assert.Equal(t, "Bronze", snapshot.TierSnapshot.Name)
	assert.Equal(t, bronze.ID, snapshot.TierSnapshot.TierID)
}

func TestMembershipService_RecordOrderSpending_SkippedOrders(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name  string
		order *entity.Order
	}{
		{name: "nil order", order: nil},
		{name: "missing order id", order: &entity.Order{CustomerID: customerID, Total: dec(100)}},
		{name: "missing customer id", order: &entity.Order{OrderID: uuid.New(), Total: dec(100)}},
		{name: "zero total without line items", order: newOrder(customerID, 0)},
		{name: "negative total without line items", order: newOrder(customerID, -5_000)},
		{
			name: "line items summing to zero",
			order: &entity.Order{
				OrderID:    uuid.New(),
				CustomerID: customerID,
				LineItems: []entity.OrderLineItem{
					{Quantity: 0, UnitPrice: dec(100_000)},
					{Quantity: 3, UnitPrice: dec(0)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

			record, err := fx.service.RecordOrderSpending(context.Background(), tt.order)
			require.NoError(t, err)
			assert.Nil(t, record)
			assert.Zero(t, fx.store.SnapshotCount())
			assert.Empty(t, fx.store.LoyaltyRecords(customerID))
			assert.Empty(t, fx.store.Cards(customerID))
		})
	}
}

func TestMembershipService_RecordOrderSpending_AmountSources(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name     string
		order    func(fx *membershipFixture) *entity.Order
		expected int64
	}{
		{
			name: "precomputed total wins over line items",
			order: func(_ *membershipFixture) *entity.Order {
				order := newOrder(customerID, 750_000)
				order.LineItems = []entity.OrderLineItem{{Quantity: 1, UnitPrice: dec(1)}}

				return order
			},
			expected: 750_000,
		},
		{
			name: "inline line items",
			order: func(_ *membershipFixture) *entity.Order {
				order := newOrder(customerID, 0)
				order.LineItems = []entity.OrderLineItem{
					{Quantity: 2, UnitPrice: dec(150_000)},
					{Quantity: 1, UnitPrice: dec(100_000)},
				}

				return order
			},
			expected: 400_000,
		},
		{
			name: "stored line items",
			order: func(fx *membershipFixture) *entity.Order {
				order := newOrder(customerID, 0)
				fx.store.SetLineItems(order.OrderID, []entity.OrderLineItem{
					{Quantity: 3, UnitPrice: dec(50_000)},
					{Quantity: 2, UnitPrice: dec(25_000)},
				})

				return order
			},
			expected: 200_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

			record, err := fx.service.RecordOrderSpending(context.Background(), tt.order(fx))
			require.NoError(t, err)
			require.NotNil(t, record)
			assertDecimal(t, tt.expected, record.SpendThisYear)
			assertDecimal(t, tt.expected, record.LifetimeSpend)
		})
	}
}

func TestMembershipService_RecordOrderSpending_YearRollover(t *testing.T) {
	fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

	ctx := context.Background()
	customerID := uuid.New()

	_, err := fx.service.RecordOrderSpending(ctx, fulfilledOn(newOrder(customerID, 1_000_000), time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	record, err := fx.service.RecordOrderSpending(ctx, fulfilledOn(newOrder(customerID, 300_000), time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 2024, record.Year)
	assertDecimal(t, 300_000, record.SpendThisYear)
	assertDecimal(t, 1_300_000, record.LifetimeSpend)

	records := fx.store.LoyaltyRecords(customerID)
	require.Len(t, records, 2)
	assert.Equal(t, 2023, records[0].Year)
	assertDecimal(t, 1_000_000, records[0].SpendThisYear)
	assertDecimal(t, 1_000_000, records[0].LifetimeSpend)
}

func TestMembershipService_RecordOrderSpending_YearUsesConfiguredTimezone(t *testing.T) {
	cfg := newTestConfig()
	cfg.Membership.Timezone = "Asia/Ho_Chi_Minh"
	fx := createTestMembershipService(t, &fixtureOptions{config: cfg}, tier("Bronze", 0, 0))

	// 20:00 UTC on New Year's Eve is already 03:00 on January 1st at UTC+7.
	order := fulfilledOn(newOrder(uuid.New(), 100_000), time.Date(2023, time.December, 31, 20, 0, 0, 0, time.UTC))

	record, err := fx.service.RecordOrderSpending(context.Background(), order)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 2024, record.Year)
}

func TestMembershipService_RecordOrderSpending_DefaultsToNowWithoutFulfillmentDate(t *testing.T) {
	fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

	record, err := fx.service.RecordOrderSpending(context.Background(), newOrder(uuid.New(), 100_000))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, testEpoch.Year(), record.Year)
}

func TestMembershipService_RecordOrderSpending_JumpsToHighestQualifyingTier(t *testing.T) {
	bronze := tier("Bronze", 0, 0)
	silver := tier("Silver", 1_000_000, 0)
	gold := tier("Gold", 0, 5_000_000)
	fx := createTestMembershipService(t, nil, bronze, silver, gold)

	ctx := context.Background()
	customerID := uuid.New()

	_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 6_000_000))
	require.NoError(t, err)

	cards := fx.store.Cards(customerID)
	require.Len(t, cards, 2, "default card plus one upgrade, no intermediate Silver card")
	active := activeCards(cards)
	require.Len(t, active, 1)
	assert.Equal(t, gold.ID, active[0].TierID)
	assertDecimal(t, 6_000_000, active[0].LifetimeSpendAtIssue)
}

func TestMembershipService_RecordOrderSpending_LifetimeCountsFromCardIssue(t *testing.T) {
	bronze := tier("Bronze", 0, 0)
	silver := tier("Silver", 0, 1_000_000)
	gold := tier("Gold", 0, 3_000_000)
	fx := createTestMembershipService(t, nil, bronze, silver, gold)

	ctx := context.Background()
	customerID := uuid.New()

	activeTier := func() uuid.UUID {
		active := activeCards(fx.store.Cards(customerID))
		require.Len(t, active, 1)

		return active[0].TierID
	}

	_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 1_500_000))
	require.NoError(t, err)
	assert.Equal(t, silver.ID, activeTier())

	// 2,000,000 since the Silver card was issued is short of Gold.
	_, err = fx.service.RecordOrderSpending(ctx, newOrder(customerID, 2_000_000))
	require.NoError(t, err)
	assert.Equal(t, silver.ID, activeTier())

	_, err = fx.service.RecordOrderSpending(ctx, newOrder(customerID, 1_000_000))
	require.NoError(t, err)
	assert.Equal(t, gold.ID, activeTier())
}

func TestMembershipService_RecordOrderSpending_NeverDowngrades(t *testing.T) {
	bronze := tier("Bronze", 0, 0)
	silver := tier("Silver", 2_000_000, 0)
	fx := createTestMembershipService(t, nil, bronze, silver)

	ctx := context.Background()
	customerID := uuid.New()

	_, err := fx.service.RecordOrderSpending(ctx, fulfilledOn(newOrder(customerID, 2_500_000), time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	// A fresh year with little spend keeps the Silver card.
	record, err := fx.service.RecordOrderSpending(ctx, fulfilledOn(newOrder(customerID, 10_000), time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assertDecimal(t, 10_000, record.SpendThisYear)

	cards := fx.store.Cards(customerID)
	assert.Len(t, cards, 2)
	active := activeCards(cards)
	require.Len(t, active, 1)
	assert.Equal(t, silver.ID, active[0].TierID)
}

func TestMembershipService_RecordOrderSpending_EmptyCatalog(t *testing.T) {
	fx := createTestMembershipService(t, nil)

	ctx := context.Background()
	customerID := uuid.New()
	order := newOrder(customerID, 900_000)

	record, err := fx.service.RecordOrderSpending(ctx, order)
	require.NoError(t, err)
	require.NotNil(t, record)
	assertDecimal(t, 900_000, record.SpendThisYear)

	assert.Empty(t, fx.store.Cards(customerID))

	snapshot, err := fx.service.GetOrderSpending(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Nil(t, snapshot.TierSnapshot)
}

func TestMembershipService_RecordOrderSpending_RemovedTierIsNotAnUpgrade(t *testing.T) {
	bronze := tier("Bronze", 0, 0)
	silver := tier("Silver", 2_000_000, 0)
	gold := tier("Gold", 0, 5_000_000)
	fx := createTestMembershipService(t, nil, bronze, silver, gold)

	ctx := context.Background()
	customerID := uuid.New()

	_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 2_500_000))
	require.NoError(t, err)

	fx.store.RemoveTier(silver.ID)

	_, err = fx.service.RecordOrderSpending(ctx, newOrder(customerID, 100_000))
	require.NoError(t, err)

	active := activeCards(fx.store.Cards(customerID))
	require.Len(t, active, 1)
	assert.Equal(t, silver.ID, active[0].TierID)
	assert.Len(t, fx.store.Cards(customerID), 2)
}

func TestMembershipService_RecordOrderSpending_StoreFailureRollsBack(t *testing.T) {
	t.Run("ledger increment fails", func(t *testing.T) {
		fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

		ctx := context.Background()
		customerID := uuid.New()

		_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 100_000))
		require.NoError(t, err)

		boom := errors.New("disk full")
		fx.store.FailOn("LoyaltyRepository.IncrementSpend", boom)

		order := newOrder(customerID, 200_000)
		record, err := fx.service.RecordOrderSpending(ctx, order)
		require.Error(t, err)
		assert.True(t, errors.Is(err, boom))
		assert.Nil(t, record)
		assert.Equal(t, 1, fx.store.SnapshotCount(), "the reservation is rolled back")

		records := fx.store.LoyaltyRecords(customerID)
		require.Len(t, records, 1)
		assertDecimal(t, 100_000, records[0].SpendThisYear)

		// The retry credits once the store recovers.
		fx.store.FailOn("LoyaltyRepository.IncrementSpend", nil)
		record, err = fx.service.RecordOrderSpending(ctx, order)
		require.NoError(t, err)
		require.NotNil(t, record)
		assertDecimal(t, 300_000, record.SpendThisYear)
		assert.Equal(t, 2, fx.store.SnapshotCount())
	})

	t.Run("ledger open fails after the default card was issued", func(t *testing.T) {
		fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

		ctx := context.Background()
		customerID := uuid.New()

		fx.store.FailOn("LoyaltyRepository.Create", errors.New("constraint violated"))

		record, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 100_000))
		require.Error(t, err)
		assert.Nil(t, record)
		assert.Zero(t, fx.store.SnapshotCount())
		assert.Empty(t, fx.store.LoyaltyRecords(customerID))
		assert.Empty(t, fx.store.Cards(customerID))
	})

	t.Run("upgrade fails", func(t *testing.T) {
		fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0), tier("Silver", 1_000_000, 0))

		ctx := context.Background()
		customerID := uuid.New()

		_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 100_000))
		require.NoError(t, err)

		fx.store.FailOn("MembershipCardRepository.DeactivateAll", errors.New("lock timeout"))

		_, err = fx.service.RecordOrderSpending(ctx, newOrder(customerID, 1_000_000))
		require.Error(t, err)

		records := fx.store.LoyaltyRecords(customerID)
		require.Len(t, records, 1)
		assertDecimal(t, 100_000, records[0].SpendThisYear)
		assert.Equal(t, 1, fx.store.SnapshotCount())
		assert.Len(t, fx.store.Cards(customerID), 1)
	})
}

func TestMembershipService_RecordOrderSpending_ConcurrentRedelivery(t *testing.T) {
	fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0), tier("Silver", 2_000_000, 0))

	ctx := context.Background()
	customerID := uuid.New()
	order := newOrder(customerID, 700_000)

	const deliveries = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		credited int
		errs     []error
	)
	for range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()

			record, err := fx.service.RecordOrderSpending(ctx, &entity.Order{
				OrderID:    order.OrderID,
				CustomerID: order.CustomerID,
				Total:      order.Total,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
			}
			if record != nil {
				credited++
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, errs)
	assert.Equal(t, 1, credited)
	assert.Equal(t, 1, fx.store.SnapshotCount())

	records := fx.store.LoyaltyRecords(customerID)
	require.Len(t, records, 1)
	assertDecimal(t, 700_000, records[0].SpendThisYear)
	assert.Len(t, fx.store.Cards(customerID), 1)
}

func TestMembershipService_RecordOrderSpending_ConcurrentOrders(t *testing.T) {
	fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0), tier("Silver", 500_000, 0))

	ctx := context.Background()
	customerID := uuid.New()

	const orders = 10

	var wg sync.WaitGroup
	for range orders {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 100_000))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records := fx.store.LoyaltyRecords(customerID)
	require.Len(t, records, 1)
	assertDecimal(t, 1_000_000, records[0].SpendThisYear)
	assertDecimal(t, 1_000_000, records[0].LifetimeSpend)
	assert.Equal(t, orders, fx.store.SnapshotCount())
	assert.Len(t, activeCards(fx.store.Cards(customerID)), 1)
}

func TestMembershipService_RecordOrderSpending_PublishesEvents(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestMembershipService(t, &fixtureOptions{publisher: publisher}, tier("Bronze", 0, 0), tier("Silver", 2_000_000, 0))

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	ctx = deliverycontext.WithActor(ctx, deliverycontext.WorkerActor("kafka"))
	customerID := uuid.New()
	orderA := newOrder(customerID, 500_000)
	orderB := newOrder(customerID, 1_600_000)

	publisher.EXPECT().
		PublishSpendCredited(mock.Anything, mock.MatchedBy(func(event *service.SpendCreditedEvent) bool {
			return event.OrderID == orderA.OrderID && event.RequestID == "req-123" && event.Actor == "worker:kafka" && event.Amount.Equal(dec(500_000))
		})).
		Return(nil).Once()
	publisher.EXPECT().
		PublishSpendCredited(mock.Anything, mock.MatchedBy(func(event *service.SpendCreditedEvent) bool {
			return event.OrderID == orderB.OrderID && event.SpendThisYear.Equal(dec(2_100_000))
		})).
		Return(nil).Once()
	publisher.EXPECT().
		PublishCardUpgraded(mock.Anything, mock.MatchedBy(func(event *service.CardUpgradedEvent) bool {
			return event.CustomerID == customerID &&
				event.FromTier == "Bronze" &&
				event.ToTier == "Silver" &&
				event.RequestID == "req-123" &&
				event.Actor == "worker:kafka" &&
				event.LifetimeSpendAtIssue.Equal(dec(2_100_000))
		})).
		Return(nil).Once()

	_, err := fx.service.RecordOrderSpending(ctx, orderA)
	require.NoError(t, err)
	_, err = fx.service.RecordOrderSpending(ctx, orderB)
	require.NoError(t, err)

	// Redelivery publishes nothing.
	_, err = fx.service.RecordOrderSpending(ctx, orderB)
	require.NoError(t, err)
}

func TestMembershipService_RecordOrderSpending_PublishFailureKeepsCredit(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestMembershipService(t, &fixtureOptions{publisher: publisher}, tier("Bronze", 0, 0))

	publisher.EXPECT().
		PublishSpendCredited(mock.Anything, mock.Anything).
		Return(errors.New("topic not found")).Once()

	customerID := uuid.New()
	record, err := fx.service.RecordOrderSpending(context.Background(), newOrder(customerID, 100_000))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 1, fx.store.SnapshotCount())
}

func TestMembershipService_RecordOrderSpending_RecordsMetrics(t *testing.T) {
	metrics := mockService.NewMockMembershipMetrics(t)
	fx := createTestMembershipService(t, &fixtureOptions{metrics: metrics}, tier("Bronze", 0, 0), tier("Silver", 2_000_000, 0))

	metrics.EXPECT().DefaultCardIssued().Return().Once()
	metrics.EXPECT().OrderCredited().Return().Times(2)
	metrics.EXPECT().CardUpgraded().Return().Once()
	metrics.EXPECT().OrderSkipped(service.SkipReasonDuplicate).Return().Once()
	metrics.EXPECT().OrderSkipped(service.SkipReasonNonPositive).Return().Once()
	metrics.EXPECT().OrderSkipped(service.SkipReasonInvalid).Return().Once()

	ctx := context.Background()
	customerID := uuid.New()
	orderB := newOrder(customerID, 2_000_000)

	_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 100_000))
	require.NoError(t, err)
	_, err = fx.service.RecordOrderSpending(ctx, orderB)
	require.NoError(t, err)
	_, err = fx.service.RecordOrderSpending(ctx, orderB)
	require.NoError(t, err)
	_, err = fx.service.RecordOrderSpending(ctx, newOrder(customerID, 0))
	require.NoError(t, err)
	_, err = fx.service.RecordOrderSpending(ctx, nil)
	require.NoError(t, err)
}

func TestMembershipService_EvaluateMembership(t *testing.T) {
	t.Run("new customer gets the default card", func(t *testing.T) {
		bronze := tier("Bronze", 0, 0)
		fx := createTestMembershipService(t, nil, bronze, tier("Silver", 2_000_000, 0))

		card, err := fx.service.EvaluateMembership(context.Background(), uuid.New())
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, bronze.ID, card.TierID)
		assert.True(t, card.Active)
	})

	t.Run("empty catalog", func(t *testing.T) {
		fx := createTestMembershipService(t, nil)

		card, err := fx.service.EvaluateMembership(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Nil(t, card)
	})

	t.Run("tier added after credit", func(t *testing.T) {
		publisher := mockService.NewMockEventPublisher(t)
		fx := createTestMembershipService(t, &fixtureOptions{publisher: publisher}, tier("Bronze", 0, 0), tier("Silver", 2_000_000, 0))

		ctx := context.Background()
		customerID := uuid.New()

		publisher.EXPECT().PublishSpendCredited(mock.Anything, mock.Anything).Return(nil).Once()
		_, err := fx.service.RecordOrderSpending(ctx, newOrder(customerID, 1_200_000))
		require.NoError(t, err)

		plus := fx.store.AddTier(tier("Bronze Plus", 1_000_000, 0))

		publisher.EXPECT().
			PublishCardUpgraded(mock.Anything, mock.MatchedBy(func(event *service.CardUpgradedEvent) bool {
				return event.FromTier == "Bronze" && event.ToTier == "Bronze Plus"
			})).
			Return(nil).Once()

		card, err := fx.service.EvaluateMembership(ctx, customerID)
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, plus.ID, card.TierID)
		assertDecimal(t, 1_200_000, card.LifetimeSpendAtIssue)

		// A second evaluation is a no-op.
		again, err := fx.service.EvaluateMembership(ctx, customerID)
		require.NoError(t, err)
		assert.Equal(t, card.ID, again.ID)
	})
}

func TestMembershipService_GetLoyaltyRecord(t *testing.T) {
	fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

	ctx := context.Background()
	customerID := uuid.New()

	_, err := fx.service.RecordOrderSpending(ctx, fulfilledOn(newOrder(customerID, 100_000), time.Date(2022, time.July, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = fx.service.RecordOrderSpending(ctx, newOrder(customerID, 250_000))
	require.NoError(t, err)

	current, err := fx.service.GetLoyaltyRecord(ctx, customerID, nil)
	require.NoError(t, err)
	assert.Equal(t, testEpoch.Year(), current.Year)
	assertDecimal(t, 250_000, current.SpendThisYear)
	assertDecimal(t, 350_000, current.LifetimeSpend)

	year := 2022
	past, err := fx.service.GetLoyaltyRecord(ctx, customerID, &year)
	require.NoError(t, err)
	assertDecimal(t, 100_000, past.SpendThisYear)

	missing := 2019
	_, err = fx.service.GetLoyaltyRecord(ctx, customerID, &missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLoyaltyRecordNotFound))
}

func TestMembershipService_GetOrderSpending_NotFound(t *testing.T) {
	fx := createTestMembershipService(t, nil, tier("Bronze", 0, 0))

	snapshot, err := fx.service.GetOrderSpending(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrSpendSnapshotNotFound))
}
