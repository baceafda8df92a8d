package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"membership/config"
	"membership/internal/domain/entity"
	"membership/internal/domain/service"
	"membership/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var testEpoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// testClock ticks one second per reading so cards issued in one workflow
// still sort newest first.
type testClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{cur: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cur = c.cur.Add(time.Second)

	return c.cur
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Membership.Timezone = "UTC"
	cfg.Membership.CardValidityYears = 1

	return cfg
}

func dec(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func tier(name string, yearly, lifetime int64) *entity.Tier {
	return &entity.Tier{
		Name:                   name,
		YearlySpendThreshold:   dec(yearly),
		LifetimeSpendThreshold: dec(lifetime),
	}
}

type membershipFixture struct {
	store   *memory.Store
	clock   *testClock
	service *membershipService
	cards   *membershipCardService
}

type fixtureOptions struct {
	publisher service.EventPublisher
	metrics   service.MembershipMetrics
	config    *config.Config
}

// createTestMembershipService wires the workflow against an in-memory store
// seeded with the given tiers.
func createTestMembershipService(t *testing.T, opts *fixtureOptions, tiers ...*entity.Tier) *membershipFixture {
	t.Helper()

	if opts == nil {
		opts = &fixtureOptions{}
	}
	cfg := opts.config
	if cfg == nil {
		cfg = newTestConfig()
	}

	store := memory.New()
	for _, tr := range tiers {
		stored := store.AddTier(tr)
		tr.ID = stored.ID
	}

	clock := newTestClock(testEpoch)
	logger := newDiscardLogger()

	srv := newMembershipService(MembershipServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		OrderRepo:    memory.NewOrderRepository(store),
		SnapshotRepo: memory.NewSpendSnapshotRepository(store),
		LoyaltyRepo:  memory.NewLoyaltyRepository(store),
		Publisher:    opts.publisher,
		Metrics:      opts.metrics,
		Config:       cfg,
		Logger:       logger,
	}, clock.Now)

	cards := newMembershipCardService(MembershipCardServiceParams{
		CardRepo: memory.NewMembershipCardRepository(store),
		Catalog:  NewTierCatalog(memory.NewTierRepository(store)),
		Config:   cfg,
		Logger:   logger,
	}, clock.Now)

	return &membershipFixture{
		store:   store,
		clock:   clock,
		service: srv,
		cards:   cards,
	}
}

func newOrder(customerID uuid.UUID, total int64) *entity.Order {
	return &entity.Order{
		OrderID:    uuid.New(),
		CustomerID: customerID,
		Total:      dec(total),
	}
}

func fulfilledOn(order *entity.Order, at time.Time) *entity.Order {
	order.FulfilledAt = &at

	return order
}

func activeCards(cards []*entity.MembershipCard) []*entity.MembershipCard {
	var active []*entity.MembershipCard
	for _, card := range cards {
		if card.Active {
			active = append(active, card)
		}
	}

	return active
}
